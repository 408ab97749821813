package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, VerifyPassword(hash, "s3cret"))
	assert.False(t, VerifyPassword(hash, "wrong"))
	assert.False(t, VerifyPassword("not-a-hash", "s3cret"))
}

func TestHashRefreshRawIsStable(t *testing.T) {
	a := HashRefreshRaw("token")
	b := HashRefreshRaw("token")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64) // sha256 hex
	assert.NotEqual(t, a, HashRefreshRaw("other"))
}

func TestNewRefreshTokenIsRandom(t *testing.T) {
	t1, err := NewRefreshToken(7)
	require.NoError(t, err)
	t2, err := NewRefreshToken(7)
	require.NoError(t, err)

	assert.Len(t, t1.Raw, 96)
	assert.NotEqual(t, t1.Raw, t2.Raw)
	assert.WithinDuration(t, time.Now().UTC().Add(7*24*time.Hour), t1.Exp, time.Minute)
}
