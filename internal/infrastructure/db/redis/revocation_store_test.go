package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRevocationStore(t *testing.T) (*miniredis.Miniredis, *RevocationStore) {
	mr := miniredis.RunT(t)
	client, err := Connect(context.Background(), Config{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewRevocationStore(client)
}

func TestRevocationStore_RevokeSetsTTL(t *testing.T) {
	mr, s := setupRevocationStore(t)
	ctx := context.Background()

	now := time.Now()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Revoke(ctx, "jti-1", now.Add(30*time.Minute)))

	revoked, err := s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.Equal(t, 30*time.Minute, mr.TTL("revoked:jti-1"))

	mr.FastForward(31 * time.Minute)
	revoked, err = s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevocationStore_AlreadyExpiredIsNoop(t *testing.T) {
	mr, s := setupRevocationStore(t)
	ctx := context.Background()

	require.NoError(t, s.Revoke(ctx, "jti-old", time.Now().Add(-time.Minute)))
	assert.False(t, mr.Exists("revoked:jti-old"))
}

func TestRevocationStore_UnreachableServer(t *testing.T) {
	mr, s := setupRevocationStore(t)
	mr.Close()

	_, err := s.IsRevoked(context.Background(), "jti-1")
	assert.Error(t, err)
}

func TestConnect_FailsWithoutServer(t *testing.T) {
	_, err := Connect(context.Background(), Config{Addr: "127.0.0.1:1", Timeout: 200 * time.Millisecond})
	assert.Error(t, err)
}
