package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("pw123456")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "pw123456", hash)

	assert.True(t, CompareHashAndPassword(hash, "pw123456"))
	assert.False(t, CompareHashAndPassword(hash, "pw1234567"))
}

func TestCompareHashAndPassword_InvalidHash(t *testing.T) {
	assert.False(t, CompareHashAndPassword("not-a-bcrypt-hash", "pw123456"))
}
