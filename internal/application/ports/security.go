package ports

import "time"

// PasswordHasher hashes and verifies passwords (bcrypt).
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches hash. A malformed stored hash
	// reports false rather than erroring.
	Verify(password, hash string) bool
}

// TokenClaims is the decoded content of an access token.
type TokenClaims struct {
	UserID    int64
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenCodec signs and verifies bearer tokens (RS256).
// Decode failures map onto the domain token sentinels: ErrTokenMalformed for
// unparseable input, ErrTokenExpired past exp, ErrTokenInvalid for a bad
// signature or disallowed signing method.
type TokenCodec interface {
	Issue(userID int64, username string) (string, error)
	Decode(token string) (*TokenClaims, error)
}
