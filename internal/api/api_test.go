package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dispatchbase/internal/api"
	"dispatchbase/internal/config"
	"dispatchbase/internal/models"
	"dispatchbase/internal/service"
	"dispatchbase/internal/store"
	"dispatchbase/internal/testutil"
	"dispatchbase/internal/web"

	"github.com/gofiber/fiber/v2"
)

const secret = "0123456789abcdef0123456789abcdef"

func newApp(t *testing.T) (*fiber.App, *service.Registry) {
	t.Helper()
	cfg := &config.Config{JWTSecret: secret, CORSOrigins: "*"}
	svc := service.NewRegistry(testutil.OpenDB(t))
	app := web.NewApp(cfg, svc)
	api.Register(app, cfg, svc)
	return app, svc
}

func do(t *testing.T, app *fiber.App, method, path, token, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b
}

func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	code, body := do(t, app, http.MethodPost, "/api/auth/login", "",
		`{"username":"`+username+`","password":"`+password+`"}`)
	if code != http.StatusOK {
		t.Fatalf("login %s: %d %s", username, code, body)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &out); err != nil || out.Token == "" {
		t.Fatalf("token: %s %v", body, err)
	}
	return out.Token
}

func adminToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	code, body := do(t, app, http.MethodPost, "/api/auth/register-admin", "",
		`{"username":"admin","full_name":"Office Admin","password":"s3cret"}`)
	if code != http.StatusCreated {
		t.Fatalf("register: %d %s", code, body)
	}
	return login(t, app, "admin", "s3cret")
}

func addTransport(t *testing.T, svc *service.Registry) uint {
	t.Helper()
	call := time.Date(2025, 1, 1, 8, 0, 0, 0, time.Local)
	dep, arr, del := call.Add(30*time.Minute), call.Add(time.Hour), call.Add(2*time.Hour)
	agg := &store.TransportAggregate{
		Transport: models.Transport{
			CustomerID: 1, FirmDate: "2025-01-01", AccountType: "Standard", OriginLocation: 1, DestinationLocation: 2,
			CoronerName: "Dr. Lee", PouchType: "Standard", CallTime: &call, DepartureTime: &dep, ArrivalTime: &arr, DeliveryTime: &del,
		},
		Decedent: models.Decedent{FirstName: "Jane", LastName: "Doe"},
		Charges:  models.TransportCharge{RemovalCharge: 100, PouchCharge: 10.5},
	}
	if err := svc.Transports.Save(agg); err != nil {
		t.Fatalf("save transport: %v", err)
	}
	return agg.Transport.TransportID
}

func TestTransportsRequireToken(t *testing.T) {
	app, _ := newApp(t)
	code, body := do(t, app, http.MethodGet, "/api/transports", "", "")
	if code != http.StatusUnauthorized || !strings.Contains(string(body), `"error"`) {
		t.Fatalf("expected 401 json, got %d %s", code, body)
	}
}

func TestListAndGetTransport(t *testing.T) {
	app, svc := newApp(t)
	token := adminToken(t, app)
	id := addTransport(t, svc)

	code, body := do(t, app, http.MethodGet, "/api/transports?pageSize=500&search=jane", token, "")
	if code != http.StatusOK {
		t.Fatalf("list: %d %s", code, body)
	}
	var list api.TransportListResponse
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if list.Total != 1 || len(list.Data) != 1 || list.PageSize != 100 || list.Data[0].TotalCharge != 110.5 {
		t.Fatalf("unexpected list: %+v", list)
	}

	code, body = do(t, app, http.MethodGet, "/api/transports/"+jsonNumber(id), token, "")
	if code != http.StatusOK {
		t.Fatalf("get: %d %s", code, body)
	}
	var agg store.TransportAggregate
	if err := json.Unmarshal(body, &agg); err != nil {
		t.Fatalf("decode aggregate: %v", err)
	}
	if agg.Decedent.FirstName != "Jane" || agg.Charges.TotalCharge != 110.5 {
		t.Fatalf("unexpected aggregate: %+v", agg)
	}

	if code, _ := do(t, app, http.MethodGet, "/api/transports/999", token, ""); code != http.StatusNotFound {
		t.Fatalf("missing transport: %d", code)
	}
}

func TestExportRestrictedByRole(t *testing.T) {
	app, svc := newApp(t)
	admin := adminToken(t, app)
	if _, err := svc.Users.Create(&models.User{Username: "driver1", FullName: "Sam Driver", Role: models.RoleDriver, IsActive: true}, "pw"); err != nil {
		t.Fatal(err)
	}
	driver := login(t, app, "driver1", "pw")

	if code, _ := do(t, app, http.MethodGet, "/api/transports/export", driver, ""); code != http.StatusForbidden {
		t.Fatalf("driver export: %d", code)
	}
	if code, _ := do(t, app, http.MethodGet, "/api/audit-logs", driver, ""); code != http.StatusForbidden {
		t.Fatalf("driver audit: %d", code)
	}
	if code, _ := do(t, app, http.MethodGet, "/api/transports/export", admin, ""); code != http.StatusOK {
		t.Fatalf("admin export: %d", code)
	}
}

func TestRatesEndpoint(t *testing.T) {
	app, svc := newApp(t)
	token := adminToken(t, app)

	if code, _ := do(t, app, http.MethodGet, "/api/rates", token, ""); code != http.StatusNotFound {
		t.Fatalf("no rates: %d", code)
	}
	if code, _ := do(t, app, http.MethodGet, "/api/rates?customer_id=x", token, ""); code != http.StatusBadRequest {
		t.Fatalf("bad customer id: %d", code)
	}

	if err := svc.Rates.Save(&models.Rate{BasicFee: 150, IncludedMiles: 25, ExtraMileRate: 2.5, AssistantFee: 50, EffectiveDate: "2025-01-01"}); err != nil {
		t.Fatal(err)
	}
	code, body := do(t, app, http.MethodGet, "/api/rates", token, "")
	if code != http.StatusOK || !strings.Contains(string(body), `"basic_fee":150`) {
		t.Fatalf("rates: %d %s", code, body)
	}
}

func TestAuditLogsEndpoint(t *testing.T) {
	app, svc := newApp(t)
	token := adminToken(t, app)
	id := addTransport(t, svc)

	code, body := do(t, app, http.MethodGet, "/api/audit-logs?entity_type=transport&entity_id="+jsonNumber(id), token, "")
	if code != http.StatusOK {
		t.Fatalf("audit: %d %s", code, body)
	}
	var out struct {
		Data []models.AuditLog `json:"data"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Data) != 1 || out.Data[0].Action != models.AuditActionCreate {
		t.Fatalf("audit entries: %+v", out.Data)
	}
}

func jsonNumber(n uint) string {
	b, _ := json.Marshal(n)
	return string(b)
}
