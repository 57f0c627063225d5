package validation

import (
	"net/mail"
	"regexp"
	"strings"
)

var (
	phonePattern = regexp.MustCompile(`^\(\d{3}\)\d{3}-\d{4}$`)
	namePattern  = regexp.MustCompile(`^[a-zA-Z'\-\s]{1,50}$`)
	platePattern = regexp.MustCompile(`^[A-Za-z0-9]{2,15}$`)
	vinPattern   = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)
	yearPattern  = regexp.MustCompile(`^(19|20)\d{2}$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// IsValidEmail accepts a bare address such as "ops@example.com".
func IsValidEmail(email string) bool {
	if email == "" || strings.ContainsAny(email, " <>") {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	at := strings.LastIndex(addr.Address, "@")
	return addr.Address == email && at > 0 && strings.Contains(addr.Address[at:], ".")
}

// IsValidPhone accepts "(###)###-####".
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// IsValidName accepts letters, spaces, hyphens and apostrophes, 1 to 50 chars.
func IsValidName(name string) bool {
	return namePattern.MatchString(name)
}

func IsValidLicensePlate(plate string) bool {
	return platePattern.MatchString(plate)
}

// IsValidVIN accepts 17 characters excluding I, O and Q, in either case.
func IsValidVIN(vin string) bool {
	return vinPattern.MatchString(strings.ToUpper(vin))
}

func IsValidYear(year string) bool {
	return yearPattern.MatchString(year)
}

// IsValidDate accepts a calendar date in YYYY-MM-DD form.
func IsValidDate(date string) bool {
	if !datePattern.MatchString(date) {
		return false
	}
	_, err := parseDate(date)
	return err == nil
}
