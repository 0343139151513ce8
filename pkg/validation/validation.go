// Package validation holds the primitive shape checks shared by every
// workflow: name, phone, email, password, date and time formats. The phone
// pattern accepts Russian mobile numbers written as +7/7/8 plus ten digits,
// with the usual grouping variants.
package validation

import (
	"regexp"
	"strings"
	"time"
)

const (
	// MinPasswordLen is the minimum accepted password length.
	MinPasswordLen = 6

	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"
)

var (
	phoneRe = regexp.MustCompile(`^((\+7|7|8)([0-9]){10})$|^((\+7|7|8)(\s|\()([0-9]){3}(\s|\))([0-9]){3}(\s|-)?([0-9]){2}(\s|-)?([0-9]){2})$`)
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	timeRe  = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)
)

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsFullName requires at least a surname and a given name.
func IsFullName(s string) bool {
	if IsBlank(s) {
		return false
	}
	return len(strings.Fields(s)) >= 2
}

// IsPhone validates a Russian mobile number.
func IsPhone(s string) bool {
	return phoneRe.MatchString(s)
}

// IsEmail applies a conservative RFC-like pattern.
func IsEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsPassword checks the minimum length only.
func IsPassword(s string) bool {
	return len(s) >= MinPasswordLen
}

// IsDate reports whether s is a real calendar date in YYYY-MM-DD form.
func IsDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return false
	}
	return t.Format(DateLayout) == s
}

// IsTime reports whether s is a clock time in HH:MM or HH:MM:SS form.
func IsTime(s string) bool {
	return timeRe.MatchString(s)
}

// IsSex reports whether s is one of the two single-character sex codes.
func IsSex(s string) bool {
	return s == "M" || s == "F"
}
