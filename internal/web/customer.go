package web

import (
	"dispatchbase/internal/models"
	"dispatchbase/internal/service"
	"dispatchbase/internal/validation"
)

var customerSpecs = []fieldSpec{
	{name: "company_name", label: "Company Name", kind: "text", required: true},
	{name: "phone_number", label: "Phone Number", kind: "tel", placeholder: "(555)555-5555"},
	{name: "address_1", label: "Address 1", kind: "text"},
	{name: "address_2", label: "Address 2", kind: "text"},
	{name: "city", label: "City", kind: "text", required: true},
	{name: "state", label: "State", kind: "select", required: true, options: stateOptions},
	{name: "zip", label: "Zip", kind: "text"},
	{name: "email_address", label: "Email Address", kind: "email", required: true},
}

func validateCustomer(v values, _ string) (string, map[string]string) {
	if invalid := missingRequired(customerSpecs, v, validation.MsgFillField); len(invalid) > 0 {
		return validation.MsgRequiredFields, invalid
	}
	if !validation.IsValidState(v["state"]) {
		return "Invalid state selected.", map[string]string{"state": "Invalid state selected."}
	}
	if !validation.IsValidEmail(v["email_address"]) {
		return "Invalid email address.", map[string]string{"email_address": "Invalid email address."}
	}
	if v["phone_number"] != "" && !validation.IsValidPhone(v["phone_number"]) {
		return "Invalid phone number format.", map[string]string{"phone_number": "Invalid phone number format."}
	}
	return "", nil
}

func customerForm(svc *service.Registry) *formPage {
	p := &formPage{
		entity:    "customer",
		title:     "Customer",
		listLink:  "/customer-list",
		duplicate: "A customer with this company name already exists.",
		specs:     customerSpecs,
		defaults:  func() values { return values{} },
		validate:  validateCustomer,
	}
	bindService[models.Customer](p, svc.Customers,
		func(v values) models.Customer {
			return models.Customer{
				CompanyName:  v["company_name"],
				PhoneNumber:  v["phone_number"],
				Address1:     v["address_1"],
				Address2:     v["address_2"],
				City:         v["city"],
				State:        v["state"],
				Zip:          v["zip"],
				EmailAddress: v["email_address"],
			}
		},
		func(c *models.Customer) values {
			return values{
				"company_name":  c.CompanyName,
				"phone_number":  c.PhoneNumber,
				"address_1":     c.Address1,
				"address_2":     c.Address2,
				"city":          c.City,
				"state":         c.State,
				"zip":           c.Zip,
				"email_address": c.EmailAddress,
			}
		},
	)
	return p
}

func customerList(svc *service.Registry) *listPage {
	p := &listPage{
		title:    "Firms",
		singular: "Customer",
		editLink: "/customer-edit",
		headers:  []string{"Company", "Phone", "City", "State", "Email"},
	}
	bindSource[models.Customer](p, svc.Customers, func(c models.Customer) listRow {
		return listRow{
			Cells: []string{svc.Customers.FormatDisplayName(c), c.PhoneNumber, c.City, c.State, c.EmailAddress},
			Links: editLinks("/customer-edit", c.ID),
		}
	})
	return p
}
