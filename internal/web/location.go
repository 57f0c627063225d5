package web

import (
	"dispatchbase/internal/models"
	"dispatchbase/internal/service"
	"dispatchbase/internal/validation"
)

const msgCorrectFields = "Please correct the highlighted fields."

func locationTypeOptions() ([]option, error) {
	opts := make([]option, len(models.LocationTypes))
	for i, t := range models.LocationTypes {
		opts[i] = option{Value: string(t), Label: string(t)}
	}
	return opts, nil
}

var locationSpecs = []fieldSpec{
	{name: "name", label: "Name", kind: "text", required: true},
	{name: "address", label: "Address", kind: "text"},
	{name: "city", label: "City", kind: "text", required: true},
	{name: "state", label: "State", kind: "select", required: true, options: stateOptions},
	{name: "zip_code", label: "Zip Code", kind: "text"},
	{name: "phone_number", label: "Phone Number", kind: "tel", placeholder: "(555)555-5555"},
	{name: "location_type", label: "Location Type", kind: "select", required: true, options: locationTypeOptions},
}

func validateLocation(v values, _ string) (string, map[string]string) {
	invalid := missingRequired(locationSpecs, v, validation.MsgFillField)
	if _, ok := invalid["state"]; !ok && !validation.IsValidState(v["state"]) {
		invalid["state"] = "Invalid state selected."
	}
	if _, ok := invalid["location_type"]; !ok && !models.LocationType(v["location_type"]).Valid() {
		invalid["location_type"] = "Invalid location type."
	}
	if v["phone_number"] != "" && !validation.IsValidPhone(v["phone_number"]) {
		invalid["phone_number"] = "Invalid phone number format."
	}
	if len(invalid) > 0 {
		return msgCorrectFields, invalid
	}
	return "", nil
}

func locationForm(svc *service.Registry) *formPage {
	p := &formPage{
		entity:    "location",
		title:     "Location",
		listLink:  "/location-list",
		duplicate: "A location with this name already exists.",
		specs:     locationSpecs,
		defaults:  func() values { return values{} },
		validate:  validateLocation,
	}
	bindService[models.Location](p, svc.Locations,
		func(v values) models.Location {
			return models.Location{
				Name:         v["name"],
				Address:      v["address"],
				City:         v["city"],
				State:        v["state"],
				ZipCode:      v["zip_code"],
				PhoneNumber:  v["phone_number"],
				LocationType: models.LocationType(v["location_type"]),
			}
		},
		func(l *models.Location) values {
			return values{
				"name":          l.Name,
				"address":       l.Address,
				"city":          l.City,
				"state":         l.State,
				"zip_code":      l.ZipCode,
				"phone_number":  l.PhoneNumber,
				"location_type": string(l.LocationType),
			}
		},
	)
	return p
}

func locationList(svc *service.Registry) *listPage {
	p := &listPage{
		title:    "Locations",
		singular: "Location",
		editLink: "/location-edit",
		headers:  []string{"Name", "City", "State", "Phone", "Type"},
	}
	bindSource[models.Location](p, svc.Locations, func(l models.Location) listRow {
		return listRow{
			Cells: []string{l.Name, l.City, l.State, l.PhoneNumber, string(l.LocationType)},
			Links: editLinks("/location-edit", l.ID),
		}
	})
	return p
}
