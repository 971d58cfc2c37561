package validator

import (
	"regexp"
	"strings"
	"time"
)

var (
	timeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	nameRegex = regexp.MustCompile(`^[a-zA-Z0-9\s\-'\.]+$`)
)

// IsValidTime checks a zero-padded 24-hour HH:MM string
func IsValidTime(t string) bool {
	return timeRegex.MatchString(t)
}

// IsValidDate checks an ISO YYYY-MM-DD calendar date string
func IsValidDate(d string) bool {
	if !dateRegex.MatchString(d) {
		return false
	}
	_, err := time.Parse("2006-01-02", d)
	return err == nil
}

// IsValidName checks a display name for pets
func IsValidName(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	return nameRegex.MatchString(name) && len(name) <= 50
}
