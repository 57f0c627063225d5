package validation

import (
	"strings"
	"time"
)

// Form field names of the four transport timestamps, in chronological order.
const (
	FieldCallTime      = "call_time"
	FieldDepartureTime = "departure_time"
	FieldArrivalTime   = "arrival_time"
	FieldDeliveryTime  = "delivery_time"
)

var timestampLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
	"2006-01-02",
}

// ParseTimestamp parses the formats produced by datetime-local inputs and by
// the database. Values are interpreted in local time.
func ParseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

type timeStep struct {
	earlier, later string
	message        string
}

var timeSteps = []timeStep{
	{FieldCallTime, FieldDepartureTime, "Departure time must be after Call time."},
	{FieldDepartureTime, FieldArrivalTime, "Arrival time must be after Departure time."},
	{FieldArrivalTime, FieldDeliveryTime, "Delivery time must be after Arrival time."},
}

// ValidateTransportTimes checks call < departure < arrival < delivery. Each
// violation is keyed by the later field of the pair. Missing or unparsable
// values are skipped; required-ness is checked elsewhere.
func ValidateTransportTimes(call, departure, arrival, delivery string) map[string]string {
	values := map[string]string{
		FieldCallTime:      call,
		FieldDepartureTime: departure,
		FieldArrivalTime:   arrival,
		FieldDeliveryTime:  delivery,
	}

	errs := map[string]string{}
	for _, step := range timeSteps {
		earlier, ok := ParseTimestamp(values[step.earlier])
		if !ok {
			continue
		}
		later, ok := ParseTimestamp(values[step.later])
		if !ok {
			continue
		}
		if !later.After(earlier) {
			errs[step.later] = step.message
		}
	}
	return errs
}
