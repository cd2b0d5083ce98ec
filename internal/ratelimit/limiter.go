package ratelimit

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/ff-catalog-indexer/internal/adapter"
	"github.com/feral-file/ff-catalog-indexer/internal/config"
	"github.com/feral-file/ff-catalog-indexer/internal/logger"
)

// RedisKeyPrefix namespaces the distributed limiter keys
const RedisKeyPrefix = "ff:catalog:limiter:"

// Limiter paces requests to a single provider. Each provider adapter owns
// its own instance so providers never share pacing state.
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit.go -package=mocks -mock_names=Limiter=MockLimiter
type Limiter interface {
	// Wait blocks until the provider may be called or ctx is done
	Wait(ctx context.Context) error

	// Provider returns the provider name the limiter paces
	Provider() string
}

type providerLimiter struct {
	name        string
	local       *rate.Limiter
	distributed adapter.RedisRateLimiter
	limit       redis_rate.Limit
	clock       adapter.Clock
}

// New creates a limiter for one provider. The local token bucket enforces
// both requests_per_second and min_interval; when a redis limiter is given
// and per_minute is set, a cluster-wide GCRA ceiling is enforced as well.
func New(provider string, cfg config.ProviderRateLimit, distributed adapter.RedisRateLimiter, clock adapter.Clock) Limiter {
	l := &providerLimiter{
		name:  provider,
		local: rate.NewLimiter(localLimit(cfg), localBurst(cfg)),
		clock: clock,
	}
	if distributed != nil && cfg.PerMinute > 0 {
		l.distributed = distributed
		l.limit = redis_rate.PerMinute(cfg.PerMinute)
	}
	return l
}

// localLimit picks the stricter of requests_per_second and min_interval
func localLimit(cfg config.ProviderRateLimit) rate.Limit {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	if cfg.MinInterval > 0 {
		if every := rate.Every(cfg.MinInterval); every < limit {
			limit = every
		}
	}
	return limit
}

// localBurst is forced to 1 when a minimum interval is set, so two calls are
// never closer than that interval
func localBurst(cfg config.ProviderRateLimit) int {
	if cfg.MinInterval > 0 || cfg.Burst <= 0 {
		return 1
	}
	return cfg.Burst
}

func (l *providerLimiter) Provider() string {
	return l.name
}

func (l *providerLimiter) Wait(ctx context.Context) error {
	if err := l.local.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait for %s: %w", l.name, err)
	}

	if l.distributed == nil {
		return nil
	}

	key := RedisKeyPrefix + l.name
	for {
		res, err := l.distributed.Allow(ctx, key, l.limit)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			// The local bucket already paced this call
			logger.Warn("Distributed rate limiter unavailable, using local limit only",
				zap.String("provider", l.name),
				zap.Error(err),
			)
			return nil
		}
		if res.Allowed > 0 {
			return nil
		}

		// Jitter spreads competing workers over 50-150% of the retry hint
		delay := time.Duration(float64(res.RetryAfter) * (0.5 + rand.Float64())) //nolint:gosec,G404
		logger.Debug("Provider budget exhausted, waiting",
			zap.String("provider", l.name),
			zap.Duration("retry_after", delay),
		)
		if err := l.clock.SleepContext(ctx, delay); err != nil {
			return err
		}
	}
}

// Do waits on the limiter then calls fn. A nil limiter calls fn directly.
func Do[T any](ctx context.Context, l Limiter, fn func(ctx context.Context) (T, error)) (T, error) {
	if l != nil {
		if err := l.Wait(ctx); err != nil {
			var zero T
			return zero, err
		}
	}
	return fn(ctx)
}
