package errors

import "errors"

// Sentinel errors for handlers to map to HTTP status.
//
// ErrInvalidCredentials is returned for both an unknown username and a wrong
// password so a caller cannot enumerate accounts by response shape.
var (
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrAlreadyRegistered     = errors.New("user already registered")
	ErrUserNotFound          = errors.New("user not found")
	ErrTaskNotFound          = errors.New("task not found")
	ErrTokenMalformed        = errors.New("malformed token")
	ErrTokenInvalid          = errors.New("invalid token")
	ErrTokenExpired          = errors.New("token expired")
	ErrInsufficientPrivilege = errors.New("insufficient privilege")
)
