package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hashed)

	assert.NoError(t, CheckPasswordHash(hashed, "admin123"))
	assert.Error(t, CheckPasswordHash(hashed, "salah"))
	assert.Error(t, CheckPasswordHash("bukan-hash-bcrypt", "admin123"))
}

func TestHashPasswordSalted(t *testing.T) {
	a, err := HashPassword("admin123")
	require.NoError(t, err)
	b, err := HashPassword("admin123")
	require.NoError(t, err)
	// salt acak: hash sama dua kali tidak boleh identik
	assert.NotEqual(t, a, b)
}
