package handlers

import "strings"

// Validation limits mirror the registration schema: username and password
// 3-20 characters, emails per RFC length.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 20
	MinPasswordLength = 3
	MaxPasswordLength = 20
	MaxEmailLength    = 254
	MaxTitleLength    = 255
	MaxDescription    = 1024
)

// SanitizeEmail trims and lowercases email; returns empty if over max length.
func SanitizeEmail(email string) string {
	s := strings.TrimSpace(strings.ToLower(email))
	if len(s) > MaxEmailLength {
		return ""
	}
	return s
}

// SanitizeUsername trims whitespace; returns empty when out of bounds.
func SanitizeUsername(username string) string {
	s := strings.TrimSpace(username)
	if len(s) < MinUsernameLength || len(s) > MaxUsernameLength {
		return ""
	}
	return s
}

// SanitizePassword trims whitespace; returns empty when out of bounds.
func SanitizePassword(password string) string {
	s := strings.TrimSpace(password)
	if len(s) < MinPasswordLength || len(s) > MaxPasswordLength {
		return ""
	}
	return s
}
