package util

import (
	"regexp"
	"strings"
)

// phoneRegex accepts exactly 10 digits starting with 0, the local mobile
// format the frontend collects.
var phoneRegex = regexp.MustCompile(`^0\d{9}$`)

const MinPasswordLength = 6

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsValidPhone reports whether phone matches the required format.
func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// IsValidPasswordLength checks the minimum password length rule.
func IsValidPasswordLength(password string) bool {
	return len(password) >= MinPasswordLength
}
