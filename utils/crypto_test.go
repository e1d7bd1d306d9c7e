package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Ludex/utils"
)

func TestHashPassword(t *testing.T) {
	digest, err := utils.HashPassword("s3cret-passw0rd")
	require.NoError(t, err)
	assert.Len(t, digest, 60)

	assert.True(t, utils.CheckPassword("s3cret-passw0rd", digest))
	assert.False(t, utils.CheckPassword("wrong", digest))

	// Fresh salt per call: same password, different digest
	other, err := utils.HashPassword("s3cret-passw0rd")
	require.NoError(t, err)
	assert.NotEqual(t, digest, other)
}

func TestHashEmail(t *testing.T) {
	digest := utils.HashEmail("Someone@Example.COM")
	assert.Len(t, digest, 64)

	// Deterministic over the normalized address
	assert.Equal(t, digest, utils.HashEmail("  someone@example.com "))
	assert.NotEqual(t, digest, utils.HashEmail("other@example.com"))

	assert.True(t, utils.VerifyEmail("someone@example.com", digest))
	assert.False(t, utils.VerifyEmail("other@example.com", digest))
}
