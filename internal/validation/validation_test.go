package validation

import (
	"testing"
)

func TestPatternValidators(t *testing.T) {
	cases := []struct {
		name string
		fn   func(string) bool
		in   string
		want bool
	}{
		{"email ok", IsValidEmail, "ops@example.com", true},
		{"email display name", IsValidEmail, "Ops <ops@example.com>", false},
		{"email no domain dot", IsValidEmail, "ops@localhost", false},
		{"email empty", IsValidEmail, "", false},
		{"phone ok", IsValidPhone, "(555)123-4567", true},
		{"phone spaced", IsValidPhone, "(555) 123-4567", false},
		{"name ok", IsValidName, "Mary-Jo O'Neil", true},
		{"name digits", IsValidName, "R2D2", false},
		{"name empty", IsValidName, "", false},
		{"plate ok", IsValidLicensePlate, "ABC1234", true},
		{"plate short", IsValidLicensePlate, "A", false},
		{"plate dash", IsValidLicensePlate, "ABC-123", false},
		{"vin ok", IsValidVIN, "1HGCM82633A004352", true},
		{"vin lowercase", IsValidVIN, "1hgcm82633a004352", true},
		{"vin with O", IsValidVIN, "1HGCM82633A00435O", false},
		{"vin short", IsValidVIN, "1HGCM82633", false},
		{"year ok", IsValidYear, "2020", true},
		{"year old", IsValidYear, "1899", false},
		{"date ok", IsValidDate, "2025-02-28", true},
		{"date impossible", IsValidDate, "2025-02-30", false},
		{"date format", IsValidDate, "02/28/2025", false},
	}
	for _, tc := range cases {
		if got := tc.fn(tc.in); got != tc.want {
			t.Fatalf("%s: %q got %v want %v", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestValidateTransportTimesEqualTimesRejected(t *testing.T) {
	errs := ValidateTransportTimes("2025-01-01T08:00", "2025-01-01T08:00", "2025-01-01T09:00", "2025-01-01T10:00")
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}
	if errs[FieldDepartureTime] != "Departure time must be after Call time." {
		t.Fatalf("unexpected message: %q", errs[FieldDepartureTime])
	}
}

func TestValidateTransportTimesEachPair(t *testing.T) {
	errs := ValidateTransportTimes("2025-01-01 10:00:00", "2025-01-01 09:00:00", "2025-01-01 08:00:00", "2025-01-01 08:00:00")
	want := map[string]string{
		FieldDepartureTime: "Departure time must be after Call time.",
		FieldArrivalTime:   "Arrival time must be after Departure time.",
		FieldDeliveryTime:  "Delivery time must be after Arrival time.",
	}
	for k, v := range want {
		if errs[k] != v {
			t.Fatalf("%s: got %q want %q", k, errs[k], v)
		}
	}
}

func TestValidateTransportTimesSkipsUnparsable(t *testing.T) {
	errs := ValidateTransportTimes("", "not a time", "2025-01-01T09:00", "2025-01-01T10:00")
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if errs := ValidateTransportTimes("2025-01-01T08:00", "2025-01-01T08:30", "2025-01-01T09:00", "2025-01-01T10:00"); len(errs) != 0 {
		t.Fatalf("increasing times rejected: %v", errs)
	}
}

func TestValidateTransportChargesFields(t *testing.T) {
	errs := ValidateTransportChargesFields(map[string]string{
		"removal_charge": "abc",
		"pouch_charge":   "-1",
		"wait_charge":    "12,50",
		"mileage_fees":   "",
		"other_charge_1": "NaN",
	})
	if errs["removal_charge"] != "Invalid number format." {
		t.Fatalf("removal_charge: %q", errs["removal_charge"])
	}
	if errs["pouch_charge"] != "Value must be zero or greater." {
		t.Fatalf("pouch_charge: %q", errs["pouch_charge"])
	}
	if errs["other_charge_1"] != "Invalid number format." {
		t.Fatalf("other_charge_1: %q", errs["other_charge_1"])
	}
	if _, ok := errs["wait_charge"]; ok {
		t.Fatalf("comma decimal rejected")
	}
	if _, ok := errs["mileage_fees"]; ok {
		t.Fatalf("empty value rejected")
	}
	if msg := ChargeMessage(errs); msg != "Invalid number format. Value must be zero or greater. Invalid number format." {
		t.Fatalf("charge message: %q", msg)
	}
}

func TestComputeTotalCharge(t *testing.T) {
	input := map[string]string{
		"removal_charge": "100.00",
		"pouch_charge":   "10.50",
		"transport_fees": "0",
		"wait_charge":    "0",
		"mileage_fees":   "0",
		"other_charge_1": "0",
		"other_charge_2": "0",
		"other_charge_3": "0",
		"other_charge_4": "0",
		"total_charge":   "9999",
	}
	if got := ComputeTotalCharge(input); got != 110.5 {
		t.Fatalf("total: got %v want 110.5", got)
	}

	input = map[string]string{"removal_charge": "0,1", "pouch_charge": "0.2"}
	if got := ComputeTotalCharge(input); got != 0.3 {
		t.Fatalf("total: got %v want 0.3", got)
	}
}

func TestMileageTotal(t *testing.T) {
	if got := MileageTotal(12.5, 2.25); got != 28.13 {
		t.Fatalf("mileage total: %v", got)
	}
}

func TestValidateTransportFields(t *testing.T) {
	res := ValidateTransportFields(map[string]string{
		"customer_id":    "1",
		"call_time":      "2025-01-01T08:00",
		"departure_time": "2025-01-01T08:00",
	})
	if res.Message != MsgRequiredFields {
		t.Fatalf("message: %q", res.Message)
	}
	if res.Fields["customer_id"] {
		t.Fatalf("customer_id flagged though present")
	}
	for _, f := range []string{"firm_date", "coroner", "primary_transporter", "arrival_time", "delivery_time"} {
		if !res.Fields[f] {
			t.Fatalf("%s not flagged", f)
		}
	}
	if !res.Fields[FieldDepartureTime] || res.Times[FieldDepartureTime] == "" {
		t.Fatalf("departure ordering not reported: %+v", res)
	}
	if res.OK() {
		t.Fatalf("expected not ok")
	}
}

func TestValidateTransportFieldsOrderingOnly(t *testing.T) {
	fields := map[string]string{
		"customer_id": "1", "firm_date": "2025-01-01", "account_type": "Standard",
		"origin_location": "1", "destination_location": "2", "coroner": "Smith",
		"pouch_type": "Standard", "primary_transporter": "3",
		"call_time": "2025-01-01T08:00", "departure_time": "2025-01-01T07:00",
		"arrival_time": "2025-01-01T09:00", "delivery_time": "2025-01-01T10:00",
	}
	res := ValidateTransportFields(fields)
	if res.Message != "" {
		t.Fatalf("unexpected required message: %q", res.Message)
	}
	if res.OK() || res.TimeMessage() != "Departure time must be after Call time." {
		t.Fatalf("ordering error lost: %+v", res)
	}
}

func TestValidateTransportFieldsFormats(t *testing.T) {
	fields := map[string]string{
		"customer_id": "abc", "firm_date": "2025-13-40", "account_type": "Standard",
		"origin_location": "1", "destination_location": "2", "coroner": "Smith",
		"pouch_type": "Standard", "primary_transporter": "3", "assistant_transporter": "0",
		"call_time": "not-a-time", "departure_time": "2025-01-01T07:00",
		"arrival_time": "2025-01-01T09:00", "delivery_time": "2025-01-01T10:00",
	}
	res := ValidateTransportFields(fields)
	if res.Message != "" {
		t.Fatalf("unexpected required message: %q", res.Message)
	}
	want := map[string]string{
		"customer_id":           MsgInvalidSelect,
		"assistant_transporter": MsgInvalidSelect,
		"firm_date":             MsgInvalidDate,
		FieldCallTime:           MsgInvalidDateTime,
	}
	for f, msg := range want {
		if res.Formats[f] != msg || !res.Fields[f] {
			t.Fatalf("%s: got %q", f, res.Formats[f])
		}
	}
	if len(res.Formats) != len(want) {
		t.Fatalf("unexpected formats: %+v", res.Formats)
	}
	if res.OK() {
		t.Fatalf("expected not ok")
	}
	if got := res.FormatMessage(); got != "Invalid selection. Invalid date format. Invalid date/time format." {
		t.Fatalf("format message: %q", got)
	}
}

func TestIsValidID(t *testing.T) {
	for s, want := range map[string]bool{"1": true, " 42 ": true, "0": false, "-1": false, "1.5": false, "abc": false, "": false} {
		if got := IsValidID(s); got != want {
			t.Fatalf("IsValidID(%q) = %v", s, got)
		}
	}
}

func TestValidateRatesFields(t *testing.T) {
	ok := RatesInput{BasicFee: "150", IncludedMiles: "25", ExtraMileRate: "2.5", AssistantFee: "50", EffectiveDate: "2025-01-01"}
	if msg, _ := ValidateRatesFields(ok); msg != "" {
		t.Fatalf("valid rates rejected: %s", msg)
	}

	bad := ok
	bad.IncludedMiles = "2.5"
	if _, field := ValidateRatesFields(bad); field != "included_miles" {
		t.Fatalf("fractional miles accepted, field %q", field)
	}

	bad = ok
	bad.BasicFee = "-1"
	if msg, _ := ValidateRatesFields(bad); msg != "Basic fee must be a non-negative number." {
		t.Fatalf("negative fee: %q", msg)
	}

	bad = ok
	bad.EffectiveDate = ""
	if msg, _ := ValidateRatesFields(bad); msg != MsgRequiredFields {
		t.Fatalf("missing date: %q", msg)
	}
}

func TestValidateVehicleFields(t *testing.T) {
	errs := ValidateVehicleFields(map[string]string{
		"vehicle_type": "Van", "color": "White", "make": "Ford", "model": "Transit",
		"license_plate": "AB-12", "year": "1850", "vin": "1HGCM82633A004352",
	})
	if _, ok := errs["license_plate"]; !ok {
		t.Fatalf("bad plate accepted")
	}
	if errs["year"] != "Enter a valid year (e.g., 2020)." {
		t.Fatalf("year: %q", errs["year"])
	}
	if _, ok := errs["vin"]; ok {
		t.Fatalf("valid vin rejected")
	}
}

func TestStateCodes(t *testing.T) {
	codes := StateCodes()
	if len(codes) != 51 || codes[0] != "AK" {
		t.Fatalf("state codes: %d first %s", len(codes), codes[0])
	}
	if !IsValidState("CA") || IsValidState("ZZ") {
		t.Fatalf("state lookup")
	}
}
