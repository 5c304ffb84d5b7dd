package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_DigestsDiffer(t *testing.T) {
	// bcrypt salts every digest, so equal inputs must produce different outputs.
	first, err := HashPassword("Prueba@123", 10)
	require.NoError(t, err)

	second, err := HashPassword("Prueba@123", 10)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCheckPassword_Match(t *testing.T) {
	digest, err := HashPassword("Prueba@123", 10)
	require.NoError(t, err)

	assert.True(t, CheckPassword("Prueba@123", digest))
}

func TestCheckPassword_Mismatch(t *testing.T) {
	digest, err := HashPassword("Prueba@123", 10)
	require.NoError(t, err)

	assert.False(t, CheckPassword("otra-contrasena", digest))
}

func TestCheckPassword_NotADigest(t *testing.T) {
	assert.False(t, CheckPassword("Prueba@123", "plaintext-not-a-digest"))
}

func TestHashPassword_InvalidCost(t *testing.T) {
	_, err := HashPassword("Prueba@123", 99)
	assert.Error(t, err)
}
