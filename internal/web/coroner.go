package web

import (
	"dispatchbase/internal/models"
	"dispatchbase/internal/service"
	"dispatchbase/internal/validation"
)

var coronerSpecs = []fieldSpec{
	{name: "coroner_name", label: "Coroner Name", kind: "text", required: true},
	{name: "county", label: "County", kind: "text", required: true},
	{name: "phone_number", label: "Phone Number", kind: "tel", placeholder: "(555)555-5555"},
	{name: "email_address", label: "Email Address", kind: "email"},
	{name: "address_1", label: "Address 1", kind: "text"},
	{name: "address_2", label: "Address 2", kind: "text"},
	{name: "city", label: "City", kind: "text"},
	{name: "state", label: "State", kind: "select", options: stateOptions},
	{name: "zip", label: "Zip", kind: "text"},
}

func validateCoroner(v values, _ string) (string, map[string]string) {
	if invalid := missingRequired(coronerSpecs, v, validation.MsgFillField); len(invalid) > 0 {
		return validation.MsgRequiredFields, invalid
	}
	if v["email_address"] != "" && !validation.IsValidEmail(v["email_address"]) {
		return "Invalid email format.", map[string]string{"email_address": "Invalid email format."}
	}
	if v["phone_number"] != "" && !validation.IsValidPhone(v["phone_number"]) {
		return "Invalid phone number format.", map[string]string{"phone_number": "Invalid phone number format."}
	}
	if v["state"] != "" && !validation.IsValidState(v["state"]) {
		return "Invalid state selected.", map[string]string{"state": "Invalid state selected."}
	}
	return "", nil
}

func coronerForm(svc *service.Registry) *formPage {
	p := &formPage{
		entity:    "coroner",
		title:     "Coroner",
		listLink:  "/coroner-list",
		duplicate: "A coroner with this name already exists.",
		specs:     coronerSpecs,
		defaults:  func() values { return values{} },
		validate:  validateCoroner,
	}
	bindService[models.Coroner](p, svc.Coroners,
		func(v values) models.Coroner {
			return models.Coroner{
				CoronerName:  v["coroner_name"],
				County:       v["county"],
				PhoneNumber:  v["phone_number"],
				EmailAddress: v["email_address"],
				Address1:     v["address_1"],
				Address2:     v["address_2"],
				City:         v["city"],
				State:        v["state"],
				Zip:          v["zip"],
			}
		},
		func(c *models.Coroner) values {
			return values{
				"coroner_name":  c.CoronerName,
				"county":        c.County,
				"phone_number":  c.PhoneNumber,
				"email_address": c.EmailAddress,
				"address_1":     c.Address1,
				"address_2":     c.Address2,
				"city":          c.City,
				"state":         c.State,
				"zip":           c.Zip,
			}
		},
	)
	return p
}

func coronerList(svc *service.Registry) *listPage {
	p := &listPage{
		title:    "Coroners",
		singular: "Coroner",
		editLink: "/coroner-edit",
		headers:  []string{"Name", "County", "Phone", "Email", "City"},
	}
	bindSource[models.Coroner](p, svc.Coroners, func(c models.Coroner) listRow {
		return listRow{
			Cells: []string{svc.Coroners.FormatDisplayName(c), c.County, c.PhoneNumber, c.EmailAddress, c.City},
			Links: editLinks("/coroner-edit", c.ID),
		}
	})
	return p
}
