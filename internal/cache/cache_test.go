package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/rahi/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	srv := miniredis.RunT(t)
	client, err := NewClient(context.Background(), Options{Addr: srv.Addr(), PoolSize: 2})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return srv, client
}

func TestNewClient_Unreachable(t *testing.T) {
	_, err := NewClient(context.Background(), Options{Addr: "127.0.0.1:1"})
	require.Error(t, err)
}

func TestOTPLimiter_Redis(t *testing.T) {
	srv, client := newRedis(t)
	l := NewOTPLimiter(client, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, l.Allow(ctx, "b1"))
		require.NoError(t, l.Fail(ctx, "b1"))
	}
	assert.ErrorIs(t, l.Allow(ctx, "b1"), domain.ErrTooManyOTPAttempts)
	assert.NoError(t, l.Allow(ctx, "b2"))

	srv.FastForward(2 * time.Minute)
	assert.NoError(t, l.Allow(ctx, "b1"))

	require.NoError(t, l.Fail(ctx, "b1"))
	require.NoError(t, l.Reset(ctx, "b1"))
	assert.False(t, srv.Exists(otpKey("b1")))
}

func TestOTPLimiter_RedisDown(t *testing.T) {
	srv, err := miniredis.Run()
	require.NoError(t, err)
	client, err := NewClient(context.Background(), Options{Addr: srv.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	l := NewOTPLimiter(client, 3, time.Minute)
	srv.Close()

	err = l.Allow(context.Background(), "b1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrTooManyOTPAttempts)
}

func TestMemoryOTPLimiter(t *testing.T) {
	l := NewMemoryOTPLimiter(2, time.Minute)
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, l.Fail(ctx, "b1"))
	require.NoError(t, l.Allow(ctx, "b1"))
	require.NoError(t, l.Fail(ctx, "b1"))
	assert.ErrorIs(t, l.Allow(ctx, "b1"), domain.ErrTooManyOTPAttempts)

	now = now.Add(2 * time.Minute)
	assert.NoError(t, l.Allow(ctx, "b1"))

	require.NoError(t, l.Fail(ctx, "b1"))
	require.NoError(t, l.Fail(ctx, "b1"))
	require.NoError(t, l.Reset(ctx, "b1"))
	assert.NoError(t, l.Allow(ctx, "b1"))
}

type idempotencyStore interface {
	Reserve(ctx context.Context, key string) (bool, error)
	Get(ctx context.Context, key string) (*StoredResponse, error)
	Save(ctx context.Context, key string, resp *StoredResponse) error
	Release(ctx context.Context, key string) error
}

func TestIdempotencyStores(t *testing.T) {
	_, client := newRedis(t)
	stores := map[string]idempotencyStore{
		"redis":  NewIdempotencyStore(client, time.Hour),
		"memory": NewMemoryIdempotencyStore(time.Hour),
	}

	for name, s := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := s.Get(ctx, "k1")
			assert.ErrorIs(t, err, ErrNotFound)

			ok, err := s.Reserve(ctx, "k1")
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = s.Reserve(ctx, "k1")
			require.NoError(t, err)
			assert.False(t, ok)

			_, err = s.Get(ctx, "k1")
			assert.ErrorIs(t, err, ErrInFlight)

			want := &StoredResponse{Status: 201, ContentType: "application/json", Body: []byte(`{"id":"b1"}`)}
			require.NoError(t, s.Save(ctx, "k1", want))

			got, err := s.Get(ctx, "k1")
			require.NoError(t, err)
			assert.Equal(t, want, got)

			ok, err = s.Reserve(ctx, "k2")
			require.NoError(t, err)
			require.True(t, ok)
			require.NoError(t, s.Release(ctx, "k2"))
			ok, err = s.Reserve(ctx, "k2")
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestMemoryIdempotencyStore_Expiry(t *testing.T) {
	s := NewMemoryIdempotencyStore(time.Minute)
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "k", &StoredResponse{Status: 200}))
	now = now.Add(2 * time.Minute)

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
	ok, err := s.Reserve(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
}
