package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordProducesVerifiableHash(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.True(t, CheckPassword("secret123", hash))
	assert.False(t, CheckPassword("wrongpass", hash))
}

func TestHashPasswordEmbedsFreshSalt(t *testing.T) {
	first, err := HashPassword("secret123")
	require.NoError(t, err)
	second, err := HashPassword("secret123")
	require.NoError(t, err)

	// Different salts mean different outputs; both still verify
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("secret123", first))
	assert.True(t, CheckPassword("secret123", second))
}

func TestHashPasswordUsesBcryptFormat(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	// Self-describing output: algorithm and cost embedded in the string
	assert.True(t, strings.HasPrefix(hash, "$2a$10$"), "unexpected hash prefix: %s", hash)
}

func TestCheckPasswordMalformedHashIsFailureNotError(t *testing.T) {
	assert.False(t, CheckPassword("secret123", "not-a-bcrypt-hash"))
	assert.False(t, CheckPassword("secret123", ""))
}
