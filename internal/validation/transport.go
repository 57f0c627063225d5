package validation

import (
	"strconv"
	"strings"
)

const (
	MsgRequiredFields  = "Please fill in all required fields."
	MsgInvalidSelect   = "Invalid selection."
	MsgInvalidDate     = "Invalid date format."
	MsgInvalidDateTime = "Invalid date/time format."
)

// TransportRequiredFields must be non-empty on every transport submit, in
// addition to the four timestamps.
var TransportRequiredFields = []string{
	"customer_id",
	"firm_date",
	"account_type",
	"origin_location",
	"destination_location",
	"coroner",
	"pouch_type",
	"primary_transporter",
}

var timeFields = []string{FieldCallTime, FieldDepartureTime, FieldArrivalTime, FieldDeliveryTime}

// TransportReferenceFields hold row ids picked from selects.
var TransportReferenceFields = []string{
	"customer_id",
	"origin_location",
	"destination_location",
	"primary_transporter",
	"assistant_transporter",
}

// TransportErrors is the outcome of ValidateTransportFields.
type TransportErrors struct {
	// Message is MsgRequiredFields when something required is empty.
	Message string
	// Fields flags every invalid input, including out-of-order times.
	Fields map[string]bool
	// Formats holds values that are present but cannot be stored: ids that
	// are not positive integers and unparsable dates or times.
	Formats map[string]string
	// Times holds the ordering messages keyed by the later field.
	Times map[string]string
}

// OK reports whether the submission can be persisted as far as required fields
// and time ordering go.
func (e TransportErrors) OK() bool {
	return e.Message == "" && len(e.Formats) == 0 && len(e.Times) == 0
}

// FormatMessage joins the distinct format messages in form order.
func (e TransportErrors) FormatMessage() string {
	order := append(append(append([]string{}, TransportReferenceFields...), "firm_date"), timeFields...)
	var msgs []string
	seen := map[string]bool{}
	for _, f := range order {
		if m, ok := e.Formats[f]; ok && !seen[m] {
			seen[m] = true
			msgs = append(msgs, m)
		}
	}
	return strings.Join(msgs, " ")
}

// IsValidID accepts a positive base-10 integer.
func IsValidID(s string) bool {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	return err == nil && n > 0
}

// TimeMessage joins the ordering messages in chronological field order.
func (e TransportErrors) TimeMessage() string {
	var msgs []string
	for _, f := range timeFields {
		if m, ok := e.Times[f]; ok {
			msgs = append(msgs, m)
		}
	}
	return strings.Join(msgs, " ")
}

func ValidateTransportFields(fields map[string]string) TransportErrors {
	res := TransportErrors{Fields: map[string]bool{}, Formats: map[string]string{}}

	missing := false
	for _, req := range TransportRequiredFields {
		if strings.TrimSpace(fields[req]) == "" {
			res.Fields[req] = true
			missing = true
		}
	}
	for _, t := range timeFields {
		if strings.TrimSpace(fields[t]) == "" {
			res.Fields[t] = true
			missing = true
		}
	}

	for _, f := range TransportReferenceFields {
		if v := strings.TrimSpace(fields[f]); v != "" && !IsValidID(v) {
			res.Formats[f] = MsgInvalidSelect
		}
	}
	if v := strings.TrimSpace(fields["firm_date"]); v != "" && !IsValidDate(v) {
		res.Formats["firm_date"] = MsgInvalidDate
	}
	for _, t := range timeFields {
		if v := strings.TrimSpace(fields[t]); v != "" {
			if _, ok := ParseTimestamp(v); !ok {
				res.Formats[t] = MsgInvalidDateTime
			}
		}
	}
	for key := range res.Formats {
		res.Fields[key] = true
	}

	res.Times = ValidateTransportTimes(
		fields[FieldCallTime],
		fields[FieldDepartureTime],
		fields[FieldArrivalTime],
		fields[FieldDeliveryTime],
	)
	for key := range res.Times {
		res.Fields[key] = true
	}

	if missing {
		res.Message = MsgRequiredFields
	}
	return res
}

// ChargeMessage joins charge errors in field order.
func ChargeMessage(errs map[string]string) string {
	var msgs []string
	for _, f := range ChargeFields {
		if m, ok := errs[f]; ok {
			msgs = append(msgs, m)
		}
	}
	return strings.Join(msgs, " ")
}
