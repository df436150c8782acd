package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia123", hash)

	assert.NoError(t, ComparePassword(hash, "rahasia123"))
	assert.Error(t, ComparePassword(hash, "salah"))
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	h1, err := HashPassword("samepass")
	require.NoError(t, err)
	h2, err := HashPassword("samepass")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}
