package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/adtrackr/profit-sync-api/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Limiter limita as chamadas de fetch por plataforma. O estado fica no
// Redis para que o job agendado e os gatilhos manuais de instâncias
// diferentes compartilhem a mesma contagem.
type Limiter interface {
	Allow(ctx context.Context, platform domain.Platform) (bool, error)
}

// NoopLimiter libera tudo; usado quando o Redis está desabilitado
type NoopLimiter struct{}

func (NoopLimiter) Allow(_ context.Context, _ domain.Platform) (bool, error) {
	return true, nil
}

// RedisLimiter implementa janela fixa de um minuto via INCR + EXPIRE
type RedisLimiter struct {
	client            *redis.Client
	requestsPerMinute int
}

func NewRedisLimiter(client *redis.Client, requestsPerMinute int) *RedisLimiter {
	return &RedisLimiter{
		client:            client,
		requestsPerMinute: requestsPerMinute,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, platform domain.Platform) (bool, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", platform, time.Now().UTC().Format("200601021504"))

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		// Falha do Redis não pode parar a sincronização; libera e avisa
		logrus.WithError(err).Warn("ratelimit: falha ao consultar o Redis, liberando chamada")
		return true, nil
	}

	if count == 1 {
		if err := l.client.Expire(ctx, key, 2*time.Minute).Err(); err != nil {
			logrus.WithError(err).Warn("ratelimit: falha ao definir expiração da janela")
		}
	}

	return count <= int64(l.requestsPerMinute), nil
}
