package validation

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ChargeFields are the nine billed components of a transport.
var ChargeFields = []string{
	"removal_charge",
	"pouch_charge",
	"transport_fees",
	"wait_charge",
	"mileage_fees",
	"other_charge_1",
	"other_charge_2",
	"other_charge_3",
	"other_charge_4",
}

const (
	msgInvalidNumber = "Invalid number format."
	msgNegative      = "Value must be zero or greater."
)

// ParseAmount parses a money or quantity input. Empty means zero and a comma is
// read as the decimal separator.
func ParseAmount(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ValidateTransportChargesFields returns a message per charge field that is not
// a number or is negative.
func ValidateTransportChargesFields(input map[string]string) map[string]string {
	errs := map[string]string{}
	for _, field := range ChargeFields {
		f, ok := ParseAmount(input[field])
		switch {
		case !ok:
			errs[field] = msgInvalidNumber
		case f < 0:
			errs[field] = msgNegative
		}
	}
	return errs
}

// ComputeTotalCharge sums the nine charge fields. Unparsable values count as 0;
// callers validate first.
func ComputeTotalCharge(input map[string]string) float64 {
	total := decimal.Zero
	for _, field := range ChargeFields {
		f, _ := ParseAmount(input[field])
		total = total.Add(decimal.NewFromFloat(f))
	}
	return total.InexactFloat64()
}

// SumCharges sums already-parsed amounts with decimal arithmetic.
func SumCharges(amounts ...float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	return total.InexactFloat64()
}

// MileageTotal returns mileage times rate rounded to cents.
func MileageTotal(mileage, rate float64) float64 {
	return decimal.NewFromFloat(mileage).Mul(decimal.NewFromFloat(rate)).Round(2).InexactFloat64()
}
