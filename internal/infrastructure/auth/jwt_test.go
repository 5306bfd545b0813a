package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domerrors "github.com/Maksim-Borisov7/TaskApp/internal/domain/errors"
)

func testKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return key
}

func TestIssueAndDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	codec := NewTokenCodec(testKey(t), 15*time.Minute).WithTimeSource(func() time.Time { return now })

	tok, err := codec.Issue(42, "alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := codec.Decode(tok)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Errorf("Username = %q, want alice", claims.Username)
	}
	if !claims.IssuedAt.Equal(now) {
		t.Errorf("IssuedAt = %v, want %v", claims.IssuedAt, now)
	}
	if !claims.ExpiresAt.Equal(now.Add(15 * time.Minute)) {
		t.Errorf("ExpiresAt = %v, want %v", claims.ExpiresAt, now.Add(15*time.Minute))
	}
}

func TestDecode_Expired(t *testing.T) {
	t.Parallel()

	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	key := testKey(t)
	codec := NewTokenCodec(key, time.Minute).WithTimeSource(func() time.Time { return issued })
	tok, err := codec.Issue(1, "u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// One second before expiry the token is still good.
	early := NewTokenCodec(key, time.Minute).WithTimeSource(func() time.Time { return issued.Add(59 * time.Second) })
	if _, err := early.Decode(tok); err != nil {
		t.Fatalf("decode 1s before expiry: %v", err)
	}

	late := NewTokenCodec(key, time.Minute).WithTimeSource(func() time.Time { return issued.Add(2 * time.Minute) })
	_, err = late.Decode(tok)
	if !errors.Is(err, domerrors.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestDecode_WrongKey(t *testing.T) {
	t.Parallel()

	signer := NewTokenCodec(testKey(t), time.Hour)
	verifier := NewTokenCodec(testKey(t), time.Hour)

	tok, err := signer.Issue(7, "bob")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	_, err = verifier.Decode(tok)
	if !errors.Is(err, domerrors.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec(testKey(t), time.Hour)
	_, err := codec.Decode("not.a.jwt")
	if !errors.Is(err, domerrors.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestDecode_RejectsNonRSAMethod(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec(testKey(t), time.Hour)

	hsToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := hsToken.SignedString([]byte("shared-secret"))
	if err != nil {
		t.Fatalf("sign HS256: %v", err)
	}
	if _, err := codec.Decode(signed); !errors.Is(err, domerrors.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for HS256 token, got %v", err)
	}

	noneToken := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "42"})
	unsigned, err := noneToken.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := codec.Decode(unsigned); !errors.Is(err, domerrors.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for alg=none token, got %v", err)
	}
}

func TestDecode_NonNumericSubject(t *testing.T) {
	t.Parallel()

	key := testKey(t)
	codec := NewTokenCodec(key, time.Hour)

	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := tok.SignedString(key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := codec.Decode(signed); !errors.Is(err, domerrors.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
