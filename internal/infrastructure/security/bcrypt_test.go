package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(4) // min cost keeps the test fast

	hash, err := h.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, h.Verify("secret123", hash))
	assert.False(t, h.Verify("secret124", hash))
}

func TestBcryptHasher_SaltRandomness(t *testing.T) {
	h := NewBcryptHasher(4)

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("same-password", first))
	assert.True(t, h.Verify("same-password", second))
}

func TestBcryptHasher_MalformedHashFailsClosed(t *testing.T) {
	h := NewBcryptHasher(4)

	assert.False(t, h.Verify("anything", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("anything", ""))
}

func TestNewBcryptHasher_CostOutOfRange(t *testing.T) {
	h := NewBcryptHasher(99)
	assert.Equal(t, DefaultBcryptCost, h.cost)

	h = NewBcryptHasher(0)
	assert.Equal(t, DefaultBcryptCost, h.cost)
}
