package validation

import (
	"math"
	"strconv"
	"strings"
)

// RatesInput is the trimmed rates form.
type RatesInput struct {
	BasicFee      string
	IncludedMiles string
	ExtraMileRate string
	AssistantFee  string
	EffectiveDate string
}

// ValidateRatesFields returns the first problem found and the field it belongs
// to, or two empty strings.
func ValidateRatesFields(in RatesInput) (message, field string) {
	if in.BasicFee == "" || in.IncludedMiles == "" || in.ExtraMileRate == "" || in.AssistantFee == "" || in.EffectiveDate == "" {
		return MsgRequiredFields, ""
	}
	if !nonNegativeNumber(in.BasicFee) {
		return "Basic fee must be a non-negative number.", "basic_fee"
	}
	if !digitsOnly(in.IncludedMiles) {
		return "Included miles must be a non-negative integer.", "included_miles"
	}
	if !nonNegativeNumber(in.ExtraMileRate) {
		return "Extra mile rate must be a non-negative number.", "extra_mile_rate"
	}
	if !nonNegativeNumber(in.AssistantFee) {
		return "Assistant fee must be a non-negative number.", "assistant_fee"
	}
	if !IsValidDate(in.EffectiveDate) {
		return "Effective date must be a valid date (Y-m-d).", "effective_date"
	}
	return "", ""
}

func nonNegativeNumber(s string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil && f >= 0 && !math.IsInf(f, 0)
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
