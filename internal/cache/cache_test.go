package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCacheGet(t *testing.T) {
	ctx := context.Background()

	t.Run("configured", func(t *testing.T) {
		f := &FakeCache{
			GetFn: func(_ context.Context, key string) *redis.StringCmd {
				require.Equal(t, "k", key)
				return redis.NewStringResult("v", nil)
			},
		}
		val, err := f.Get(ctx, "k").Result()
		require.NoError(t, err)
		require.Equal(t, "v", val)
	})

	t.Run("unset panics", func(t *testing.T) {
		require.Panics(t, func() { (&FakeCache{}).Get(ctx, "k") })
	})
}

func TestFakeCacheSet(t *testing.T) {
	ctx := context.Background()

	t.Run("configured", func(t *testing.T) {
		f := &FakeCache{
			SetFn: func(_ context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
				require.Equal(t, "k", key)
				require.Equal(t, "v", value)
				require.Equal(t, time.Minute, ttl)
				return redis.NewStatusResult("OK", nil)
			},
		}
		require.NoError(t, f.Set(ctx, "k", "v", time.Minute).Err())
	})

	t.Run("unset panics", func(t *testing.T) {
		require.Panics(t, func() { (&FakeCache{}).Set(ctx, "k", "v", 0) })
	})
}

func TestFakeCacheDel(t *testing.T) {
	ctx := context.Background()

	t.Run("configured", func(t *testing.T) {
		f := &FakeCache{
			DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
				require.Equal(t, []string{"a", "b"}, keys)
				return redis.NewIntResult(2, nil)
			},
		}
		n, err := f.Del(ctx, "a", "b").Result()
		require.NoError(t, err)
		require.EqualValues(t, 2, n)
	})

	t.Run("unset panics", func(t *testing.T) {
		require.Panics(t, func() { (&FakeCache{}).Del(ctx, "k") })
	})
}

func TestFakeCacheClose(t *testing.T) {
	t.Run("configured", func(t *testing.T) {
		f := &FakeCache{
			CloseFn: func() error { return errors.New("close failed") },
		}
		require.Error(t, f.Close())
	})

	t.Run("unset is noop", func(t *testing.T) {
		require.NoError(t, (&FakeCache{}).Close())
	})
}
