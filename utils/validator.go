package utils

import (
	"regexp"
	"time"
	"unicode"
)

var (
	nameRe     = regexp.MustCompile(`^[a-zA-Z ]{3,64}$`)
	foodNameRe = regexp.MustCompile(`^[a-zA-Z0-9 ]{2,100}$`)
	emailRe    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[a-zA-Z]{2,}$`)
)

func IsName(name string) bool { return nameRe.MatchString(name) }

func IsFoodName(name string) bool { return foodNameRe.MatchString(name) }

func IsEmail(email string) bool { return emailRe.MatchString(email) }

// IsPassword requires 6-15 chars with at least one upper, one lower, one
// digit and one special character, and no whitespace.
func IsPassword(password string) bool {
	if len(password) < 6 || len(password) > 15 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsSpace(r):
			return false
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	return upper && lower && digit && special
}

func IsRole(role string) bool { return role == "admin" || role == "general" }

// ParseDate parses a YYYY-MM-DD calendar date at midnight UTC, the form
// every bucket is keyed on.
func ParseDate(date string) (time.Time, bool) {
	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsValidDateTime reports whether date ("YYYY-MM-DD") plus time ("HH:MM")
// is well formed and not in the future.
func IsValidDateTime(date, clock string) bool {
	d, ok := ParseDate(date)
	if !ok {
		return false
	}
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return false
	}
	at := time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
	return !at.After(time.Now().UTC())
}
