package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRevocation(t *testing.T) {
	repo := NewTokenRepository(newTestDB(t))

	revoked, err := repo.IsRevoked("jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, repo.Revoke("jti-1", time.Now().Add(time.Hour)))

	revoked, err = repo.IsRevoked("jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestTokenPurgeExpired(t *testing.T) {
	repo := NewTokenRepository(newTestDB(t))

	require.NoError(t, repo.Revoke("old", time.Now().Add(-time.Hour)))
	require.NoError(t, repo.Revoke("fresh", time.Now().Add(time.Hour)))
	require.NoError(t, repo.PurgeExpired())

	revoked, err := repo.IsRevoked("old")
	require.NoError(t, err)
	assert.False(t, revoked)

	revoked, err = repo.IsRevoked("fresh")
	require.NoError(t, err)
	assert.True(t, revoked)
}
