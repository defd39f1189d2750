package utils

import (
	"strings"
	"testing"

	"resto-admin/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	ok, err := VerifyPassword(hash, "s3cret-pass")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword(hash, "wrong-pass")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPasswordBadHash(t *testing.T) {
	_, err := VerifyPassword("not-an-argon2-hash", "anything")
	assert.Error(t, err)
}

func TestHashPasswordCostOverrides(t *testing.T) {
	prev := config.AppConfig
	config.AppConfig = &config.Config{ArgonMemoryKiB: 8192, ArgonTimeCost: 1}
	defer func() { config.AppConfig = prev }()

	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	// the encoded form carries the parameters the hash was produced with
	assert.True(t, strings.Contains(hash, "m=8192,t=1"), "hash %q", hash)

	ok, err := VerifyPassword(hash, "s3cret-pass")
	require.NoError(t, err)
	assert.True(t, ok)
}
