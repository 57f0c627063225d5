package web_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"dispatchbase/internal/config"
	"dispatchbase/internal/models"
	"dispatchbase/internal/service"
	"dispatchbase/internal/store"
	"dispatchbase/internal/testutil"
	"dispatchbase/internal/web"

	"github.com/gofiber/fiber/v2"
)

func newApp(t *testing.T) (*fiber.App, *service.Registry) {
	t.Helper()
	svc := service.NewRegistry(testutil.OpenDB(t))
	app := web.NewApp(&config.Config{CORSOrigins: "*"}, svc)
	return app, svc
}

func get(t *testing.T, app *fiber.App, path string) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return readBody(t, resp)
}

func post(t *testing.T, app *fiber.App, path string, form url.Values) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return readBody(t, resp)
}

func readBody(t *testing.T, resp *http.Response) (int, string) {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(b)
}

// seed creates the reference rows a transport form needs and returns a valid
// submission.
func seed(t *testing.T, svc *service.Registry) url.Values {
	t.Helper()
	customerID, err := svc.Customers.Create(&models.Customer{CompanyName: "Acme Corp", City: "Fresno", State: "CA", EmailAddress: "ops@acme.com"})
	if err != nil {
		t.Fatalf("customer: %v", err)
	}
	origin, err := svc.Locations.Create(&models.Location{Name: "County Hospital", City: "Fresno", State: "CA", LocationType: models.LocationOrigin})
	if err != nil {
		t.Fatalf("origin: %v", err)
	}
	dest, err := svc.Locations.Create(&models.Location{Name: "Main Street Funeral Home", City: "Fresno", State: "CA", LocationType: models.LocationDestination})
	if err != nil {
		t.Fatalf("destination: %v", err)
	}
	if _, err := svc.Coroners.Create(&models.Coroner{CoronerName: "Dr. Lee", County: "Fresno"}); err != nil {
		t.Fatalf("coroner: %v", err)
	}
	if _, err := svc.Pouches.Create(&models.Pouch{PouchType: "Standard"}); err != nil {
		t.Fatalf("pouch: %v", err)
	}
	driver, err := svc.Users.Create(&models.User{Username: "driver1", FullName: "Sam Driver", State: "CA", Role: models.RoleDriver, IsActive: true}, "pw")
	if err != nil {
		t.Fatalf("driver: %v", err)
	}

	form := url.Values{}
	form.Set("customer_id", formatUint(customerID))
	form.Set("firm_date", "2025-01-01")
	form.Set("account_type", "Standard")
	form.Set("origin_location", formatUint(origin))
	form.Set("destination_location", formatUint(dest))
	form.Set("coroner", "Dr. Lee")
	form.Set("pouch_type", "Standard")
	form.Set("primary_transporter", formatUint(driver))
	form.Set("call_time", "2025-01-01T08:00")
	form.Set("departure_time", "2025-01-01T08:30")
	form.Set("arrival_time", "2025-01-01T09:00")
	form.Set("delivery_time", "2025-01-01T10:00")
	form.Set("first_name", "Jane")
	form.Set("last_name", "Doe")
	return form
}

func formatUint(n uint) string {
	return strconv.FormatUint(uint64(n), 10)
}

func TestRootRedirects(t *testing.T) {
	app, _ := newApp(t)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusFound || resp.Header.Get("Location") != "/transport-list" {
		t.Fatalf("redirect: %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}
}

func TestCustomerDuplicateRejected(t *testing.T) {
	app, svc := newApp(t)
	form := url.Values{
		"company_name":  {"Acme Corp"},
		"city":          {"Fresno"},
		"state":         {"CA"},
		"email_address": {"ops@acme.com"},
	}

	code, body := post(t, app, "/customer-edit?mode=add", form)
	if code != http.StatusOK || !strings.Contains(body, "Customer added successfully!") {
		t.Fatalf("first add: %d %s", code, body)
	}
	_, body = post(t, app, "/customer-edit?mode=add", form)
	if !strings.Contains(body, "A customer with this company name already exists.") {
		t.Fatalf("expected duplicate banner, got %s", body)
	}

	n, err := svc.Customers.GetCountBySearch("Acme Corp")
	if err != nil || n != 1 {
		t.Fatalf("expected one Acme Corp, got %d %v", n, err)
	}
}

func TestCustomerValidationOrder(t *testing.T) {
	app, svc := newApp(t)

	_, body := post(t, app, "/customer-edit?mode=add", url.Values{"company_name": {"Acme Corp"}})
	if !strings.Contains(body, "Please fill in all required fields.") || !strings.Contains(body, "is-invalid") {
		t.Fatalf("expected required banner, got %s", body)
	}

	_, body = post(t, app, "/customer-edit?mode=add", url.Values{
		"company_name": {"Acme Corp"}, "city": {"Fresno"}, "state": {"ZZ"}, "email_address": {"bad"},
	})
	if !strings.Contains(body, "Invalid state selected.") {
		t.Fatalf("expected state error, got %s", body)
	}

	_, body = post(t, app, "/customer-edit?mode=add", url.Values{
		"company_name": {"Acme Corp"}, "city": {"Fresno"}, "state": {"CA"}, "email_address": {"ops@acme.com"},
		"phone_number": {"555-1234"},
	})
	if !strings.Contains(body, "Invalid phone number format.") {
		t.Fatalf("expected phone error, got %s", body)
	}

	if n, _ := svc.Customers.GetCount(); n != 0 {
		t.Fatalf("invalid submissions persisted %d rows", n)
	}
}

func TestEditRequiresValidID(t *testing.T) {
	app, _ := newApp(t)
	if code, _ := get(t, app, "/customer-edit?mode=edit&id=abc"); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if code, _ := get(t, app, "/customer-edit?mode=edit"); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	code, body := get(t, app, "/pouch-edit?mode=edit&id=99")
	if code != http.StatusNotFound || !strings.Contains(body, "Pouch not found.") {
		t.Fatalf("expected 404, got %d %s", code, body)
	}
}

func TestPouchEditAndDelete(t *testing.T) {
	app, svc := newApp(t)
	id, err := svc.Pouches.Create(&models.Pouch{PouchType: "Standard"})
	if err != nil {
		t.Fatal(err)
	}
	path := "/pouch-edit?mode=edit&id=" + formatUint(id)

	_, body := get(t, app, path)
	if !strings.Contains(body, `value="Standard"`) || !strings.Contains(body, "delete_pouch") {
		t.Fatalf("edit form not prefilled: %s", body)
	}

	_, body = post(t, app, path, url.Values{"pouch_type": {strings.Repeat("x", 101)}})
	if !strings.Contains(body, "Pouch type must be 100 characters or less.") {
		t.Fatalf("expected length error: %s", body)
	}

	_, body = post(t, app, path, url.Values{"pouch_type": {"Infant"}})
	if !strings.Contains(body, "Pouch updated successfully!") {
		t.Fatalf("update: %s", body)
	}
	p, _ := svc.Pouches.FindByID(id)
	if p.PouchType != "Infant" {
		t.Fatalf("pouch not updated: %+v", p)
	}

	_, body = post(t, app, path, url.Values{"delete_pouch": {"1"}})
	if !strings.Contains(body, "Pouch deleted successfully!") || strings.Contains(body, `name="pouch_type"`) {
		t.Fatalf("delete: %s", body)
	}
	if _, err := svc.Pouches.FindByID(id); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("pouch still present: %v", err)
	}
}

func TestListPagination(t *testing.T) {
	app, svc := newApp(t)
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"} {
		if _, err := svc.Pouches.Create(&models.Pouch{PouchType: "Pouch " + name}); err != nil {
			t.Fatal(err)
		}
	}

	code, body := get(t, app, "/pouch-list?pageSize=5&page=3")
	if code != http.StatusOK || !strings.Contains(body, "Page 3 of 3 (12 total)") {
		t.Fatalf("page 3: %d %s", code, body)
	}
	_, body = get(t, app, "/pouch-list?pageSize=5&page=99")
	if !strings.Contains(body, "Page 3 of 3") {
		t.Fatalf("page clamp: %s", body)
	}
	_, body = get(t, app, "/pouch-list?search=Pouch+K")
	if !strings.Contains(body, "Pouch K") || strings.Contains(body, "Pouch L") {
		t.Fatalf("search: %s", body)
	}
}

func TestTransportEqualTimesRejected(t *testing.T) {
	app, svc := newApp(t)
	form := seed(t, svc)
	form.Set("departure_time", "2025-01-01T08:00")

	_, body := post(t, app, "/transport-edit?mode=add", form)
	if !strings.Contains(body, "Departure time must be after Call time.") {
		t.Fatalf("expected ordering error, got %s", body)
	}
	if n, _ := svc.Transports.GetCount(); n != 0 {
		t.Fatalf("transport persisted despite error: %d", n)
	}
}

func TestTransportUnparsableTimeRejected(t *testing.T) {
	app, svc := newApp(t)
	form := seed(t, svc)
	form.Set("call_time", "not-a-time")

	_, body := post(t, app, "/transport-edit?mode=add", form)
	if !strings.Contains(body, "Invalid date/time format.") || strings.Contains(body, "added successfully") {
		t.Fatalf("expected time format error, got %s", body)
	}
	if n, _ := svc.Transports.GetCount(); n != 0 {
		t.Fatalf("transport persisted with bad time: %d", n)
	}
}

func TestTransportBadReferencesRejected(t *testing.T) {
	app, svc := newApp(t)
	form := seed(t, svc)

	for field, value := range map[string]string{
		"customer_id":          "abc",
		"origin_location":      "0",
		"destination_location": "999",
		"primary_transporter":  "-3",
	} {
		bad := url.Values{}
		for k, v := range form {
			bad[k] = v
		}
		bad.Set(field, value)

		_, body := post(t, app, "/transport-edit?mode=add", bad)
		if !strings.Contains(body, "Invalid selection.") {
			t.Fatalf("%s=%s: expected selection error, got %s", field, value, body)
		}
	}
	if n, _ := svc.Transports.GetCount(); n != 0 {
		t.Fatalf("transport persisted with bad reference: %d", n)
	}
}

func TestTransportTotalRecomputed(t *testing.T) {
	app, svc := newApp(t)
	form := seed(t, svc)
	form.Set("removal_charge", "100.00")
	form.Set("pouch_charge", "10.50")
	form.Set("transport_fees", "0")
	form.Set("total_charge", "999.99")

	_, body := post(t, app, "/transport-edit?mode=add", form)
	if !strings.Contains(body, "Transport added successfully!") {
		t.Fatalf("add: %s", body)
	}

	rows, err := svc.Transports.GetAll()
	if err != nil || len(rows) != 1 {
		t.Fatalf("rows: %v %v", rows, err)
	}
	if rows[0].TotalCharge != 110.5 {
		t.Fatalf("total charge %v", rows[0].TotalCharge)
	}
}

func TestTransportChargeValidation(t *testing.T) {
	app, svc := newApp(t)
	form := seed(t, svc)
	form.Set("wait_charge", "-5")

	_, body := post(t, app, "/transport-edit?mode=add", form)
	if !strings.Contains(body, "Value must be zero or greater.") {
		t.Fatalf("expected charge error: %s", body)
	}
	if n, _ := svc.Transports.GetCount(); n != 0 {
		t.Fatalf("transport persisted: %d", n)
	}
}

func TestDecedentEditLeavesTransportAlone(t *testing.T) {
	app, svc := newApp(t)
	form := seed(t, svc)
	form.Set("removal_charge", "100")
	if _, body := post(t, app, "/transport-edit?mode=add", form); !strings.Contains(body, "added successfully") {
		t.Fatalf("add: %s", body)
	}
	rows, _ := svc.Transports.GetAll()
	id := rows[0].TransportID
	before, _ := svc.Transports.Find(id)

	path := "/decedent-edit?transport_id=" + formatUint(id)
	_, body := post(t, app, path, url.Values{"first_name": {"Janet"}, "last_name": {"Smith"}})
	if !strings.Contains(body, "Decedent updated successfully!") {
		t.Fatalf("decedent update: %s", body)
	}

	after, err := svc.Transports.Find(id)
	if err != nil {
		t.Fatal(err)
	}
	if after.Decedent.FirstName != "Janet" || after.Decedent.LastName != "Smith" {
		t.Fatalf("decedent: %+v", after.Decedent)
	}
	if after.Decedent.DecedentID != before.Decedent.DecedentID {
		t.Fatalf("decedent row replaced")
	}
	if after.Charges.TotalCharge != before.Charges.TotalCharge || after.Transport.CoronerName != before.Transport.CoronerName {
		t.Fatalf("transport or charges changed")
	}

	if code, _ := get(t, app, "/decedent-edit?transport_id=999"); code != http.StatusNotFound {
		t.Fatalf("missing decedent: %d", code)
	}
}

func TestTransportDeleteRemovesAggregate(t *testing.T) {
	app, svc := newApp(t)
	form := seed(t, svc)
	post(t, app, "/transport-edit?mode=add", form)
	rows, _ := svc.Transports.GetAll()
	id := rows[0].TransportID

	_, body := post(t, app, "/transport-edit?mode=edit&id="+formatUint(id), url.Values{"delete_transport": {"1"}})
	if !strings.Contains(body, "Transport deleted successfully!") {
		t.Fatalf("delete: %s", body)
	}
	if _, err := svc.Transports.FindByID(id); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("transport remains: %v", err)
	}
	if _, err := svc.Decedents.FindByTransportID(id); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("decedent remains: %v", err)
	}
	if _, err := store.NewChargesStore(svc.Customers.DB()).FindByTransportID(id); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("charges remain: %v", err)
	}
}

func TestRatesJSON(t *testing.T) {
	app, svc := newApp(t)

	code, body := get(t, app, "/rates-edit?action=get_rates&customer_id=abc")
	if code != http.StatusBadRequest || !strings.Contains(body, "Invalid customer_id") {
		t.Fatalf("invalid id: %d %s", code, body)
	}
	code, body = get(t, app, "/rates-edit?action=get_rates&customer_id=1")
	if code != http.StatusNotFound || !strings.Contains(body, "No rates found") {
		t.Fatalf("missing rates: %d %s", code, body)
	}

	cid, _ := svc.Customers.Create(&models.Customer{CompanyName: "Acme Corp", City: "Fresno", State: "CA"})
	form := url.Values{
		"customer_id":     {formatUint(cid)},
		"basic_fee":       {"150"},
		"included_miles":  {"25"},
		"extra_mile_rate": {"2.5"},
		"assistant_fee":   {"50"},
		"effective_date":  {"2025-01-01"},
	}
	_, body = post(t, app, "/rates-edit", form)
	if !strings.Contains(body, "Rates saved successfully!") {
		t.Fatalf("save: %s", body)
	}

	_, body = get(t, app, "/rates-edit?action=get_rates&customer_id="+formatUint(cid))
	var got struct {
		Data models.Rate `json:"data"`
	}
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("decode %s: %v", body, err)
	}
	if got.Data.BasicFee != 150 || got.Data.IncludedMiles != 25 {
		t.Fatalf("rates: %+v", got.Data)
	}
}

func TestRatesValidation(t *testing.T) {
	app, _ := newApp(t)
	_, body := post(t, app, "/rates-edit", url.Values{
		"basic_fee": {"-1"}, "included_miles": {"25"}, "extra_mile_rate": {"2"}, "assistant_fee": {"1"}, "effective_date": {"2025-01-01"},
	})
	if !strings.Contains(body, "Basic fee must be a non-negative number.") {
		t.Fatalf("expected basic fee error: %s", body)
	}
}

func TestExportTransports(t *testing.T) {
	app, svc := newApp(t)
	post(t, app, "/transport-edit?mode=add", seed(t, svc))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/transport-list/export", nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/vnd.openxmlformats") {
		t.Fatalf("content type %q", resp.Header.Get("Content-Type"))
	}
	if !strings.Contains(resp.Header.Get("Content-Disposition"), ".xlsx") {
		t.Fatalf("disposition %q", resp.Header.Get("Content-Disposition"))
	}
}

func TestAuditListShowsChanges(t *testing.T) {
	app, svc := newApp(t)
	if _, err := svc.Pouches.Create(&models.Pouch{PouchType: "Standard"}); err != nil {
		t.Fatal(err)
	}
	code, body := get(t, app, "/audit-list")
	if code != http.StatusOK || !strings.Contains(body, "pouch create #1") {
		t.Fatalf("audit list: %d %s", code, body)
	}
}

func TestCSRFRequiredWhenEnabled(t *testing.T) {
	svc := service.NewRegistry(testutil.OpenDB(t))
	app := web.NewApp(&config.Config{CORSOrigins: "*", CSRFEnabled: true}, svc)

	code, body := post(t, app, "/pouch-edit?mode=add", url.Values{"pouch_type": {"Standard"}})
	if code != http.StatusForbidden || !strings.Contains(body, "Invalid request (CSRF token mismatch).") {
		t.Fatalf("expected csrf rejection, got %d %s", code, body)
	}
	if n, _ := svc.Pouches.GetCount(); n != 0 {
		t.Fatalf("pouch persisted without token")
	}
}
