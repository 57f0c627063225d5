package validation

import "strings"

const MsgFillField = "Please fill out this field."

// ValidateVehicleFields checks the required vehicle inputs and their formats.
// Keys are the form field names.
func ValidateVehicleFields(data map[string]string) map[string]string {
	errs := map[string]string{}
	for _, f := range []string{"vehicle_type", "color", "make", "model"} {
		if strings.TrimSpace(data[f]) == "" {
			errs[f] = MsgFillField
		}
	}

	switch plate := data["license_plate"]; {
	case plate == "":
		errs["license_plate"] = MsgFillField
	case !IsValidLicensePlate(plate):
		errs["license_plate"] = "License plate must be 2-15 letters or numbers (no spaces or symbols)."
	}

	switch year := data["year"]; {
	case year == "":
		errs["year"] = MsgFillField
	case !IsValidYear(year):
		errs["year"] = "Enter a valid year (e.g., 2020)."
	}

	switch vin := data["vin"]; {
	case vin == "":
		errs["vin"] = MsgFillField
	case !IsValidVIN(vin):
		errs["vin"] = "VIN must be 17 characters (letters and numbers, no I/O/Q)."
	}
	return errs
}
