package domain

// User is a registered account. PasswordHash is a bcrypt hash and must never
// be serialized into API responses.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
}
