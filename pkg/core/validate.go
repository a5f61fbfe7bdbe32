package core

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultCountryCode prefixes 10-digit national numbers during phone
// normalization.
const DefaultCountryCode = "38"

// MaxAgeYears bounds how far in the past a birthday may lie.
const MaxAgeYears = 150

// Accepted date layouts. Both represent the same calendar date identically.
const (
	DateLayoutDotted = "02.01.2006" // DD.MM.YYYY
	DateLayoutISO    = "2006-01-02" // YYYY-MM-DD
)

var dateLayouts = []string{DateLayoutDotted, DateLayoutISO}

var (
	phoneStrip = regexp.MustCompile(`[\s\-()]`)
	digitsOnly = regexp.MustCompile(`^[0-9]+$`)

	validate = validator.New()
)

// ValidateName trims the name and rejects empty input.
func ValidateName(s string) (string, error) {
	name := strings.TrimSpace(s)
	if name == "" {
		return "", &FieldError{Base: ErrInvalidName, Field: "name", Value: s, Reason: "must not be empty"}
	}
	return name, nil
}

// NormalizePhone strips separators and returns the canonical international
// form "+<cc><10 national digits>". It accepts a 10-digit national number
// or a number already carrying the country code, with or without a leading
// '+'. Normalization is idempotent.
func NormalizePhone(s, countryCode string) (string, error) {
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}

	cleaned := phoneStrip.ReplaceAllString(strings.TrimSpace(s), "")
	cleaned = strings.TrimPrefix(cleaned, "+")
	if cleaned == "" || !digitsOnly.MatchString(cleaned) {
		return "", &FieldError{Base: ErrInvalidPhone, Field: "phone", Value: s, Reason: "expected digits with optional separators"}
	}

	switch {
	case len(cleaned) == 10:
		return "+" + countryCode + cleaned, nil
	case len(cleaned) == 10+len(countryCode) && strings.HasPrefix(cleaned, countryCode):
		return "+" + cleaned, nil
	}

	return "", &FieldError{Base: ErrInvalidPhone, Field: "phone", Value: s, Reason: "expected 10 national digits, e.g. 0501234567"}
}

// ValidateEmail checks the address format and returns it trimmed and
// lowercased.
func ValidateEmail(s string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(s))
	if err := validate.Var(email, "required,email"); err != nil {
		return "", &FieldError{Base: ErrInvalidEmail, Field: "email", Value: s, Reason: "expected format user@domain.com"}
	}
	return email, nil
}

// ParseDate parses DD.MM.YYYY or YYYY-MM-DD into a UTC midnight time.
// Impossible calendar dates (e.g. 31.02.2021) are rejected by time.Parse.
func ParseDate(s string) (time.Time, error) {
	value := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &FieldError{Base: ErrInvalidDate, Field: "date", Value: s, Reason: "expected DD.MM.YYYY or YYYY-MM-DD"}
}

// ParseBirthday parses a date and rejects values in the future or more
// than MaxAgeYears in the past.
func ParseBirthday(s string, now time.Time) (time.Time, error) {
	t, err := ParseDate(s)
	if err != nil {
		return time.Time{}, err
	}
	if t.After(now) {
		return time.Time{}, &FieldError{Base: ErrInvalidDate, Field: "birthday", Value: s, Reason: "must not be in the future"}
	}
	if t.Before(time.Date(now.Year()-MaxAgeYears, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		return time.Time{}, &FieldError{Base: ErrInvalidDate, Field: "birthday", Value: s, Reason: "must not be more than " + strconv.Itoa(MaxAgeYears) + " years ago"}
	}
	return t, nil
}

// FormatDate renders a date in the default display layout (DD.MM.YYYY).
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayoutDotted)
}
