package web

import (
	"unicode/utf8"

	"dispatchbase/internal/models"
	"dispatchbase/internal/service"
	"dispatchbase/internal/validation"
)

const maxPouchTypeLen = 100

var pouchSpecs = []fieldSpec{
	{name: "pouch_type", label: "Pouch Type", kind: "text", required: true},
}

func validatePouch(v values, _ string) (string, map[string]string) {
	if invalid := missingRequired(pouchSpecs, v, validation.MsgFillField); len(invalid) > 0 {
		return validation.MsgRequiredFields, invalid
	}
	if utf8.RuneCountInString(v["pouch_type"]) > maxPouchTypeLen {
		msg := "Pouch type must be 100 characters or less."
		return msg, map[string]string{"pouch_type": msg}
	}
	return "", nil
}

func pouchForm(svc *service.Registry) *formPage {
	p := &formPage{
		entity:    "pouch",
		title:     "Pouch",
		listLink:  "/pouch-list",
		duplicate: "A pouch with this type already exists.",
		specs:     pouchSpecs,
		defaults:  func() values { return values{} },
		validate:  validatePouch,
	}
	bindService[models.Pouch](p, svc.Pouches,
		func(v values) models.Pouch { return models.Pouch{PouchType: v["pouch_type"]} },
		func(m *models.Pouch) values { return values{"pouch_type": m.PouchType} },
	)
	return p
}

func pouchList(svc *service.Registry) *listPage {
	p := &listPage{
		title:    "Pouches",
		singular: "Pouch",
		editLink: "/pouch-edit",
		headers:  []string{"Pouch Type"},
	}
	bindSource[models.Pouch](p, svc.Pouches, func(m models.Pouch) listRow {
		return listRow{Cells: []string{m.PouchType}, Links: editLinks("/pouch-edit", m.ID)}
	})
	return p
}
