package web

import (
	"strconv"
	"strings"

	"dispatchbase/internal/models"
	"dispatchbase/internal/service"
	"dispatchbase/internal/validation"
)

var vehicleSpecs = []fieldSpec{
	{name: "vehicle_type", label: "Vehicle Type", kind: "text", required: true},
	{name: "color", label: "Color", kind: "text", required: true},
	{name: "license_plate", label: "License Plate", kind: "text", required: true},
	{name: "year", label: "Year", kind: "number", required: true},
	{name: "make", label: "Make", kind: "text", required: true},
	{name: "model", label: "Model", kind: "text", required: true},
	{name: "vin", label: "VIN", kind: "text", required: true},
	{name: "refrigeration_unit", label: "Refrigeration Unit", kind: "checkbox"},
	{name: "fuel_type", label: "Fuel Type", kind: "select", options: staticOptions(models.FuelTypes...)},
	{name: "odometer_reading", label: "Odometer Reading", kind: "number"},
	{name: "trailer_compatible", label: "Trailer Compatible", kind: "checkbox"},
	{name: "current_status", label: "Current Status", kind: "select", options: staticOptions(models.VehicleStatuses...)},
	{name: "registration_expiry", label: "Registration Expiry", kind: "date"},
	{name: "insurance_provider", label: "Insurance Provider", kind: "text"},
	{name: "insurance_policy_number", label: "Insurance Policy Number", kind: "text"},
	{name: "insurance_expiry", label: "Insurance Expiry", kind: "date"},
	{name: "notes", label: "Notes", kind: "textarea"},
}

func validateVehicle(v values, _ string) (string, map[string]string) {
	invalid := validation.ValidateVehicleFields(v)
	if odo := v["odometer_reading"]; odo != "" {
		if n, err := strconv.Atoi(odo); err != nil || n < 0 {
			invalid["odometer_reading"] = "Odometer reading must be a non-negative integer."
		}
	}
	for _, f := range []string{"registration_expiry", "insurance_expiry"} {
		if v[f] != "" && !validation.IsValidDate(v[f]) {
			invalid[f] = "Enter a valid date (YYYY-MM-DD)."
		}
	}
	if len(invalid) > 0 {
		return msgCorrectFields, invalid
	}
	return "", nil
}

func vehicleForm(svc *service.Registry) *formPage {
	p := &formPage{
		entity:    "vehicle",
		title:     "Vehicle",
		listLink:  "/vehicle-list",
		duplicate: "A vehicle with this VIN already exists.",
		specs:     vehicleSpecs,
		defaults:  func() values { return values{"current_status": "in_service"} },
		validate:  validateVehicle,
	}
	bindService[models.Vehicle](p, svc.Vehicles,
		func(v values) models.Vehicle {
			year, _ := strconv.Atoi(v["year"])
			m := models.Vehicle{
				VehicleType:           v["vehicle_type"],
				Color:                 v["color"],
				LicensePlate:          strings.ToUpper(v["license_plate"]),
				YearOfManufacture:     year,
				Make:                  v["make"],
				Model:                 v["model"],
				VIN:                   strings.ToUpper(v["vin"]),
				RefrigerationUnit:     v["refrigeration_unit"] == "1",
				FuelType:              v["fuel_type"],
				TrailerCompatible:     v["trailer_compatible"] == "1",
				CurrentStatus:         v["current_status"],
				RegistrationExpiry:    v["registration_expiry"],
				InsuranceProvider:     v["insurance_provider"],
				InsurancePolicyNumber: v["insurance_policy_number"],
				InsuranceExpiry:       v["insurance_expiry"],
				Notes:                 v["notes"],
			}
			if odo, err := strconv.Atoi(v["odometer_reading"]); err == nil {
				m.OdometerReading = &odo
			}
			return m
		},
		func(m *models.Vehicle) values {
			v := values{
				"vehicle_type":            m.VehicleType,
				"color":                   m.Color,
				"license_plate":           m.LicensePlate,
				"year":                    strconv.Itoa(m.YearOfManufacture),
				"make":                    m.Make,
				"model":                   m.Model,
				"vin":                     m.VIN,
				"refrigeration_unit":      checkbox(m.RefrigerationUnit),
				"fuel_type":               m.FuelType,
				"trailer_compatible":      checkbox(m.TrailerCompatible),
				"current_status":          m.CurrentStatus,
				"registration_expiry":     m.RegistrationExpiry,
				"insurance_provider":      m.InsuranceProvider,
				"insurance_policy_number": m.InsurancePolicyNumber,
				"insurance_expiry":        m.InsuranceExpiry,
				"notes":                   m.Notes,
			}
			if m.OdometerReading != nil {
				v["odometer_reading"] = strconv.Itoa(*m.OdometerReading)
			}
			return v
		},
	)
	return p
}

func vehicleList(svc *service.Registry) *listPage {
	p := &listPage{
		title:    "Vehicles",
		singular: "Vehicle",
		editLink: "/vehicle-edit",
		headers:  []string{"Type", "Make", "Model", "Year", "Plate", "VIN", "Status"},
	}
	bindSource[models.Vehicle](p, svc.Vehicles, func(m models.Vehicle) listRow {
		return listRow{
			Cells: []string{m.VehicleType, m.Make, m.Model, strconv.Itoa(m.YearOfManufacture), m.LicensePlate, m.VIN, m.CurrentStatus},
			Links: editLinks("/vehicle-edit", m.VehicleID),
		}
	})
	return p
}
