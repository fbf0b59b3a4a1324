package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevocationStore_RevokeAndExpire(t *testing.T) {
	ctx := context.Background()
	s := NewRevocationStore()
	t.Cleanup(s.Close)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Revoke(ctx, "jti-1", now.Add(time.Hour)))

	revoked, err := s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = s.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)

	now = now.Add(2 * time.Hour)
	revoked, err = s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked, "entry outlived the token it blocks")

	s.cleanup()
	assert.Equal(t, 0, s.Len())
}

func TestRevocationStore_CloseIsIdempotent(t *testing.T) {
	s := NewRevocationStore()
	s.Close()
	s.Close()
}
