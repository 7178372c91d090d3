package util

import (
	"regexp"
	"strings"
	"time"
)

// NormalizeEmail is applied to every email before storage or lookup so
// that registration and login agree on casing.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidateEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

func ValidateUsername(username string) bool {
	return len(username) >= 3 && len(username) <= 30
}

func ValidatePassword(password string) bool {
	return len(password) >= 8
}

// ParseEntryDate accepts the date formats clients send for income and
// expense entries: plain calendar dates or full RFC3339 timestamps.
func ParseEntryDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
