package web

import (
	"fmt"

	"dispatchbase/internal/models"
	"dispatchbase/internal/service"
	"dispatchbase/internal/validation"
)

var decedentSpecs = []fieldSpec{
	{name: "first_name", label: "First Name", kind: "text", required: true},
	{name: "middle_name", label: "Middle Name", kind: "text"},
	{name: "last_name", label: "Last Name", kind: "text", required: true},
	{name: "ethnicity", label: "Ethnicity", kind: "select", options: staticOptions(models.Ethnicities...)},
	{name: "gender", label: "Gender", kind: "select", options: staticOptions(models.Genders...)},
}

func validateDecedent(v values, _ string) (string, map[string]string) {
	if invalid := missingRequired(decedentSpecs, v, validation.MsgFillField); len(invalid) > 0 {
		return validation.MsgRequiredFields, invalid
	}
	invalid := map[string]string{}
	for _, f := range []string{"first_name", "middle_name", "last_name"} {
		if v[f] != "" && !validation.IsValidName(v[f]) {
			invalid[f] = msgInvalidDecedentName
		}
	}
	if len(invalid) > 0 {
		return msgInvalidDecedentName, invalid
	}
	return "", nil
}

// decedentForm edits the decedent of one transport, addressed by
// ?transport_id=N. The transport and its charges are left untouched.
func decedentForm(svc *service.Registry) *formPage {
	decedents := svc.Decedents
	return &formPage{
		entity:   "decedent",
		title:    "Decedent",
		listLink: "/transport-list",
		specs:    decedentSpecs,
		defaults: func() values { return values{} },
		idParam:  "transport_id",
		editOnly: true,
		validate: validateDecedent,
		load: func(transportID uint) (values, error) {
			d, err := decedents.FindByTransportID(transportID)
			if err != nil {
				return nil, err
			}
			return values{
				"first_name":  d.FirstName,
				"middle_name": d.MiddleName,
				"last_name":   d.LastName,
				"ethnicity":   d.Ethnicity,
				"gender":      d.Gender,
			}, nil
		},
		update: func(transportID uint, v values) error {
			d := models.Decedent{
				FirstName:  v["first_name"],
				MiddleName: v["middle_name"],
				LastName:   v["last_name"],
				Ethnicity:  v["ethnicity"],
				Gender:     v["gender"],
			}
			_, err := decedents.UpdateByTransportID(transportID, &d)
			return err
		},
	}
}

func decedentLink(transportID uint) string {
	return fmt.Sprintf("/decedent-edit?transport_id=%d", transportID)
}
