package web

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatchbase/internal/models"
	"dispatchbase/internal/service"
	"dispatchbase/internal/store"
	"dispatchbase/internal/validation"

	"github.com/sirupsen/logrus"
)

const datetimeLocal = "2006-01-02T15:04"

const msgInvalidDecedentName = "Names may contain only letters, spaces, hyphens and apostrophes."

var chargeLabels = map[string]string{
	"removal_charge": "Removal Charge",
	"pouch_charge":   "Pouch Charge",
	"transport_fees": "Transport Fees",
	"wait_charge":    "Wait Charge",
	"mileage_fees":   "Mileage Fees",
	"other_charge_1": "Other Charge 1",
	"other_charge_2": "Other Charge 2",
	"other_charge_3": "Other Charge 3",
	"other_charge_4": "Other Charge 4",
}

func transportSpecs(svc *service.Registry) []fieldSpec {
	specs := []fieldSpec{
		{name: "customer_id", label: "Firm", kind: "select", required: true, section: "Transport", options: customerOptions(svc)},
		{name: "firm_date", label: "Date", kind: "date", required: true},
		{name: "account_type", label: "Account Type", kind: "select", required: true, options: staticOptions(models.AccountTypes...)},
		{name: "origin_location", label: "Origin", kind: "select", required: true, options: locationOptions(svc, models.LocationType.ServesOrigin)},
		{name: "destination_location", label: "Destination", kind: "select", required: true, options: locationOptions(svc, models.LocationType.ServesDestination)},
		{name: "coroner", label: "Coroner", kind: "select", required: true, options: coronerOptions(svc)},
		{name: "pouch_type", label: "Pouch Type", kind: "select", required: true, options: pouchOptions(svc)},
		{name: "transit_permit_number", label: "Transit Permit Number", kind: "text"},
		{name: "tag_number", label: "Tag Number", kind: "text"},
		{name: validation.FieldCallTime, label: "Call Time", kind: "datetime-local", required: true},
		{name: validation.FieldDepartureTime, label: "Departure Time", kind: "datetime-local", required: true},
		{name: validation.FieldArrivalTime, label: "Arrival Time", kind: "datetime-local", required: true},
		{name: validation.FieldDeliveryTime, label: "Delivery Time", kind: "datetime-local", required: true},
		{name: "primary_transporter", label: "Primary Transporter", kind: "select", required: true, options: driverOptions(svc)},
		{name: "assistant_transporter", label: "Assistant Transporter", kind: "select", options: driverOptions(svc)},
		{name: "mileage", label: "Mileage", kind: "number", step: "0.1"},
		{name: "mileage_rate", label: "Mileage Rate", kind: "number", step: "0.01"},
		{name: "mileage_total_charge", label: "Mileage Total", kind: "number", step: "0.01", readOnly: true},

		{name: "first_name", label: "First Name", kind: "text", required: true, section: "Decedent"},
		{name: "middle_name", label: "Middle Name", kind: "text"},
		{name: "last_name", label: "Last Name", kind: "text", required: true},
		{name: "ethnicity", label: "Ethnicity", kind: "select", options: staticOptions(models.Ethnicities...)},
		{name: "gender", label: "Gender", kind: "select", options: staticOptions(models.Genders...)},
	}
	for i, f := range validation.ChargeFields {
		s := fieldSpec{name: f, label: chargeLabels[f], kind: "number", step: "0.01", placeholder: "0.00"}
		if i == 0 {
			s.section = "Charges"
		}
		specs = append(specs, s)
		if strings.HasPrefix(f, "other_charge_") {
			specs = append(specs, fieldSpec{name: f + "_description", label: chargeLabels[f] + " Description", kind: "text"})
		}
	}
	return append(specs, fieldSpec{name: "total_charge", label: "Total Charge", kind: "number", step: "0.01", readOnly: true})
}

// validateTransport marks every bad input. The banner is the first of: the
// required-fields message, the id/date/time format messages, the time
// ordering messages, the charge messages, any remaining field message.
func validateTransport(v values, _ string) (string, map[string]string) {
	res := validation.ValidateTransportFields(v)
	invalid := map[string]string{}
	for f := range res.Fields {
		invalid[f] = validation.MsgFillField
	}
	for f, msg := range res.Formats {
		invalid[f] = msg
	}
	for f, msg := range res.Times {
		invalid[f] = msg
	}

	charges := validation.ValidateTransportChargesFields(v)
	for f, msg := range charges {
		invalid[f] = msg
	}

	var other string
	for _, f := range []string{"mileage", "mileage_rate"} {
		if n, ok := validation.ParseAmount(v[f]); !ok || n < 0 {
			invalid[f] = "Invalid number format."
			other = invalid[f]
		}
	}

	missingName := false
	for _, f := range []string{"first_name", "middle_name", "last_name"} {
		switch {
		case v[f] == "" && f != "middle_name":
			invalid[f] = validation.MsgFillField
			missingName = true
		case v[f] != "" && !validation.IsValidName(v[f]):
			invalid[f] = msgInvalidDecedentName
			other = msgInvalidDecedentName
		}
	}

	switch {
	case res.Message != "" || missingName:
		return validation.MsgRequiredFields, invalid
	case len(res.Formats) > 0:
		return res.FormatMessage(), invalid
	case len(res.Times) > 0:
		return res.TimeMessage(), invalid
	case len(charges) > 0:
		return validation.ChargeMessage(charges), invalid
	case other != "":
		return other, invalid
	}
	return "", nil
}

// missingReferences flags selected ids that name no existing row.
func missingReferences(svc *service.Registry, v values) map[string]string {
	lookups := []struct {
		field string
		find  func(uint) error
	}{
		{"customer_id", func(id uint) error { _, err := svc.Customers.FindByID(id); return err }},
		{"origin_location", func(id uint) error { _, err := svc.Locations.FindByID(id); return err }},
		{"destination_location", func(id uint) error { _, err := svc.Locations.FindByID(id); return err }},
		{"primary_transporter", func(id uint) error { _, err := svc.Users.FindByID(id); return err }},
		{"assistant_transporter", func(id uint) error { _, err := svc.Users.FindByID(id); return err }},
	}

	invalid := map[string]string{}
	for _, l := range lookups {
		if v[l.field] == "" {
			continue
		}
		err := l.find(parseUint(v[l.field]))
		switch {
		case errors.Is(err, store.ErrNotFound):
			invalid[l.field] = validation.MsgInvalidSelect
		case err != nil:
			logrus.WithError(err).WithField("field", l.field).Warn("reference lookup failed")
		}
	}
	return invalid
}

func parseTime(s string) *time.Time {
	t, ok := validation.ParseTimestamp(s)
	if !ok {
		return nil
	}
	return &t
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.In(time.Local).Format(datetimeLocal)
}

func parseFloatPtr(s string) *float64 {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	f, ok := validation.ParseAmount(s)
	if !ok {
		return nil
	}
	return &f
}

func amount(s string) float64 {
	f, _ := validation.ParseAmount(s)
	return f
}

// aggregateFromValues maps the form onto a transport aggregate. The submitted
// total is ignored; the store recomputes it.
func aggregateFromValues(id uint, v values) *store.TransportAggregate {
	return &store.TransportAggregate{
		Transport: models.Transport{
			TransportID:          id,
			CustomerID:           parseUint(v["customer_id"]),
			FirmDate:             v["firm_date"],
			AccountType:          v["account_type"],
			OriginLocation:       parseUint(v["origin_location"]),
			DestinationLocation:  parseUint(v["destination_location"]),
			CoronerName:          v["coroner"],
			PouchType:            v["pouch_type"],
			TransitPermitNumber:  v["transit_permit_number"],
			TagNumber:            v["tag_number"],
			CallTime:             parseTime(v[validation.FieldCallTime]),
			DepartureTime:        parseTime(v[validation.FieldDepartureTime]),
			ArrivalTime:          parseTime(v[validation.FieldArrivalTime]),
			DeliveryTime:         parseTime(v[validation.FieldDeliveryTime]),
			PrimaryTransporter:   parseUintPtr(v["primary_transporter"]),
			AssistantTransporter: parseUintPtr(v["assistant_transporter"]),
			Mileage:              parseFloatPtr(v["mileage"]),
			MileageRate:          parseFloatPtr(v["mileage_rate"]),
		},
		Decedent: models.Decedent{
			FirstName:  v["first_name"],
			MiddleName: v["middle_name"],
			LastName:   v["last_name"],
			Ethnicity:  v["ethnicity"],
			Gender:     v["gender"],
		},
		Charges: models.TransportCharge{
			RemovalCharge:           amount(v["removal_charge"]),
			PouchCharge:             amount(v["pouch_charge"]),
			TransportFees:           amount(v["transport_fees"]),
			WaitCharge:              amount(v["wait_charge"]),
			MileageFees:             amount(v["mileage_fees"]),
			OtherCharge1:            amount(v["other_charge_1"]),
			OtherCharge1Description: v["other_charge_1_description"],
			OtherCharge2:            amount(v["other_charge_2"]),
			OtherCharge2Description: v["other_charge_2_description"],
			OtherCharge3:            amount(v["other_charge_3"]),
			OtherCharge3Description: v["other_charge_3_description"],
			OtherCharge4:            amount(v["other_charge_4"]),
			OtherCharge4Description: v["other_charge_4_description"],
		},
	}
}

func aggregateValues(agg *store.TransportAggregate) values {
	t, d, c := agg.Transport, agg.Decedent, agg.Charges
	v := values{
		"customer_id":                formatUint(t.CustomerID),
		"firm_date":                  t.FirmDate,
		"account_type":               t.AccountType,
		"origin_location":            formatUint(t.OriginLocation),
		"destination_location":       formatUint(t.DestinationLocation),
		"coroner":                    t.CoronerName,
		"pouch_type":                 t.PouchType,
		"transit_permit_number":      t.TransitPermitNumber,
		"tag_number":                 t.TagNumber,
		"primary_transporter":        formatUintPtr(t.PrimaryTransporter),
		"assistant_transporter":      formatUintPtr(t.AssistantTransporter),
		"mileage":                    formatFloatPtr(t.Mileage),
		"mileage_rate":               formatFloatPtr(t.MileageRate),
		"mileage_total_charge":       formatFloatPtr(t.MileageTotalCharge),
		"first_name":                 d.FirstName,
		"middle_name":                d.MiddleName,
		"last_name":                  d.LastName,
		"ethnicity":                  d.Ethnicity,
		"gender":                     d.Gender,
		"other_charge_1_description": c.OtherCharge1Description,
		"other_charge_2_description": c.OtherCharge2Description,
		"other_charge_3_description": c.OtherCharge3Description,
		"other_charge_4_description": c.OtherCharge4Description,
		"total_charge":               formatMoney(c.TotalCharge),
	}
	v[validation.FieldCallTime] = formatTime(t.CallTime)
	v[validation.FieldDepartureTime] = formatTime(t.DepartureTime)
	v[validation.FieldArrivalTime] = formatTime(t.ArrivalTime)
	v[validation.FieldDeliveryTime] = formatTime(t.DeliveryTime)
	for f, amt := range c.Components() {
		v[f] = formatMoney(amt)
	}
	return v
}

func transportForm(svc *service.Registry) *formPage {
	transports := svc.Transports
	return &formPage{
		entity:   "transport",
		title:    "Transport",
		listLink: "/transport-list",
		specs:    transportSpecs(svc),
		defaults: func() values {
			return values{"account_type": models.AccountTypes[0], "firm_date": time.Now().Format("2006-01-02")}
		},
		validate: func(v values, mode string) (string, map[string]string) {
			if msg, invalid := validateTransport(v, mode); msg != "" {
				return msg, invalid
			}
			if invalid := missingReferences(svc, v); len(invalid) > 0 {
				return validation.MsgInvalidSelect, invalid
			}
			return "", nil
		},
		load: func(id uint) (values, error) {
			agg, err := transports.Find(id)
			if err != nil {
				return nil, err
			}
			return aggregateValues(agg), nil
		},
		create: func(v values) error {
			return transports.Save(aggregateFromValues(0, v))
		},
		update: func(id uint, v values) error {
			return transports.Save(aggregateFromValues(id, v))
		},
		remove: func(id uint) error {
			n, err := transports.Delete(id)
			if err == nil && n == 0 {
				return store.ErrNotFound
			}
			return err
		},
	}
}

func transportList(svc *service.Registry) *listPage {
	p := &listPage{
		title:      "Transports",
		singular:   "Transport",
		editLink:   "/transport-edit",
		exportLink: "/transport-list/export",
		headers:    []string{"#", "Date", "Firm", "Decedent", "Origin", "Destination", "Coroner", "Tag", "Total"},
	}
	bindSource[store.TransportRow](p, svc.Transports, func(r store.TransportRow) listRow {
		return listRow{
			Cells: []string{
				formatUint(r.TransportID),
				r.FirmDate,
				r.CustomerName,
				strings.TrimSpace(r.DecedentFirstName + " " + r.DecedentLastName),
				r.OriginName,
				r.DestinationName,
				r.CoronerName,
				r.TagNumber,
				fmt.Sprintf("%.2f", r.TotalCharge),
			},
			Links: editLinks("/transport-edit", r.TransportID,
				link{Href: decedentLink(r.TransportID), Label: "Decedent"}),
		}
	})
	return p
}
