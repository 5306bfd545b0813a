package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeEmail(t *testing.T) {
	assert.Equal(t, "alice@x.com", SanitizeEmail("  Alice@X.com "))
	assert.Empty(t, SanitizeEmail(strings.Repeat("a", MaxEmailLength)+"@x.com"))
}

func TestSanitizeUsername(t *testing.T) {
	assert.Equal(t, "alice", SanitizeUsername(" alice "))
	assert.Empty(t, SanitizeUsername("ab"))
	assert.Empty(t, SanitizeUsername(strings.Repeat("a", MaxUsernameLength+1)))
}

func TestSanitizePassword(t *testing.T) {
	assert.Equal(t, "pw3", SanitizePassword("pw3"))
	assert.Empty(t, SanitizePassword("pw"))
	assert.Empty(t, SanitizePassword(strings.Repeat("x", MaxPasswordLength+1)))
}
