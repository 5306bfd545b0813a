package auth

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Maksim-Borisov7/TaskApp/internal/application/ports"
	domerrors "github.com/Maksim-Borisov7/TaskApp/internal/domain/errors"
)

// DefaultAccessExpiry is the token lifetime when none is configured.
const DefaultAccessExpiry = 15 * time.Minute

// TokenCodec implements ports.TokenCodec with RS256. The private key signs,
// the public key verifies; only the verifying half is needed to decode.
type TokenCodec struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	expiry     time.Duration
	now        func() time.Time
}

type accessClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

func NewTokenCodec(privateKey *rsa.PrivateKey, expiry time.Duration) *TokenCodec {
	if expiry <= 0 {
		expiry = DefaultAccessExpiry
	}
	return &TokenCodec{
		privateKey: privateKey,
		publicKey:  &privateKey.PublicKey,
		expiry:     expiry,
		now:        time.Now,
	}
}

// WithTimeSource overrides the clock, for tests.
func (t *TokenCodec) WithTimeSource(now func() time.Time) *TokenCodec {
	t.now = now
	return t
}

func (t *TokenCodec) Issue(userID int64, username string) (string, error) {
	now := t.now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.expiry)),
		},
		Username: username,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(t.privateKey)
}

// Decode verifies the signature and expiry. Tokens signed with any non-RSA
// method (including "none") are rejected before signature verification.
func (t *TokenCodec) Decode(tokenString string) (*ports.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.publicKey, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, domerrors.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domerrors.ErrTokenExpired
		default:
			return nil, domerrors.ErrTokenInvalid
		}
	}
	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return nil, domerrors.ErrTokenInvalid
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, domerrors.ErrTokenInvalid
	}
	out := &ports.TokenClaims{
		UserID:   userID,
		Username: claims.Username,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// Ensure TokenCodec implements ports.TokenCodec.
var _ ports.TokenCodec = (*TokenCodec)(nil)
