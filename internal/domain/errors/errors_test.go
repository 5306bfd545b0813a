package errors

import "testing"

func TestSentinelErrors(t *testing.T) {
	if ErrInvalidCredentials == nil {
		t.Error("ErrInvalidCredentials should not be nil")
	}
	if ErrAlreadyRegistered == nil {
		t.Error("ErrAlreadyRegistered should not be nil")
	}
	if ErrTokenExpired == nil {
		t.Error("ErrTokenExpired should not be nil")
	}
	if ErrTokenInvalid == ErrTokenExpired {
		t.Error("token sentinels must be distinct")
	}
}
