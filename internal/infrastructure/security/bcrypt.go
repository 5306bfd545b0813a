package security

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost balances login latency against brute-force resistance.
const DefaultBcryptCost = 12

// BcryptHasher implements ports.PasswordHasher using bcrypt. Each hash embeds
// a fresh random salt, so hashing the same password twice yields different
// outputs that both verify.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify fails closed: a stored hash that bcrypt cannot parse reports a
// mismatch. The underlying comparison is constant time.
func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
