package ratelimit

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adtrackr/profit-sync-api/internal/domain"
)

func newRedisLimiter(t *testing.T, requestsPerMinute int) *RedisLimiter {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisLimiter(client, requestsPerMinute)
}

func TestRedisLimiter_Allow(t *testing.T) {
	ctx := context.Background()

	t.Run("libera até o limite da janela e nega depois", func(t *testing.T) {
		limiter := newRedisLimiter(t, 3)

		for i := 0; i < 3; i++ {
			allowed, err := limiter.Allow(ctx, domain.PlatformTikTok)
			require.NoError(t, err)
			assert.True(t, allowed)
		}

		allowed, err := limiter.Allow(ctx, domain.PlatformTikTok)
		require.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("contagem é independente por plataforma", func(t *testing.T) {
		limiter := newRedisLimiter(t, 1)

		allowed, err := limiter.Allow(ctx, domain.PlatformTikTok)
		require.NoError(t, err)
		assert.True(t, allowed)

		allowed, err = limiter.Allow(ctx, domain.PlatformTikTok)
		require.NoError(t, err)
		assert.False(t, allowed)

		// O estouro do TikTok não consome a janela do Meta
		allowed, err = limiter.Allow(ctx, domain.PlatformMeta)
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("falha do Redis libera a chamada", func(t *testing.T) {
		server := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: server.Addr()})
		limiter := NewRedisLimiter(client, 1)

		server.Close()

		allowed, err := limiter.Allow(ctx, domain.PlatformTikTok)
		require.NoError(t, err)
		assert.True(t, allowed)
	})
}

func TestNoopLimiter(t *testing.T) {
	limiter := NoopLimiter{}

	for i := 0; i < 10; i++ {
		allowed, err := limiter.Allow(context.Background(), domain.PlatformMeta)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}
