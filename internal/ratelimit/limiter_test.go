package ratelimit_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-catalog-indexer/internal/adapter"
	"github.com/feral-file/ff-catalog-indexer/internal/config"
	"github.com/feral-file/ff-catalog-indexer/internal/mocks"
	"github.com/feral-file/ff-catalog-indexer/internal/ratelimit"
)

func TestLimiter_EnforcesMinInterval(t *testing.T) {
	l := ratelimit.New("opensea", config.ProviderRateLimit{
		RequestsPerSecond: 100,
		Burst:             10,
		MinInterval:       30 * time.Millisecond,
	}, nil, adapter.NewClock())

	ctx := context.Background()
	start := time.Now()
	for range 4 {
		require.NoError(t, l.Wait(ctx))
	}
	// first call is immediate, the next three wait one interval each
	assert.GreaterOrEqual(t, time.Since(start), 85*time.Millisecond)
	assert.Equal(t, "opensea", l.Provider())
}

func TestLimiter_ProvidersAreIndependent(t *testing.T) {
	cfg := config.ProviderRateLimit{MinInterval: 100 * time.Millisecond}
	slow := ratelimit.New("opensea", cfg, nil, adapter.NewClock())
	other := ratelimit.New("objkt", cfg, nil, adapter.NewClock())

	ctx := context.Background()
	require.NoError(t, slow.Wait(ctx))

	start := time.Now()
	require.NoError(t, other.Wait(ctx))
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestLimiter_ConcurrentCallersShareBudget(t *testing.T) {
	l := ratelimit.New("objkt", config.ProviderRateLimit{MinInterval: 20 * time.Millisecond}, nil, adapter.NewClock())

	start := time.Now()
	var wg sync.WaitGroup
	for range 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, l.Wait(context.Background()))
		}()
	}
	wg.Wait()
	assert.GreaterOrEqual(t, time.Since(start), 35*time.Millisecond)
}

func TestLimiter_ContextCanceled(t *testing.T) {
	l := ratelimit.New("opensea", config.ProviderRateLimit{MinInterval: time.Hour}, nil, adapter.NewClock())

	require.NoError(t, l.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, l.Wait(ctx))
}

func TestLimiter_DistributedCeiling(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(rl *mocks.MockRedisRateLimiter, clock *mocks.MockClock)
		expectErr bool
	}{
		{
			name: "allowed immediately",
			setup: func(rl *mocks.MockRedisRateLimiter, clock *mocks.MockClock) {
				rl.EXPECT().
					Allow(gomock.Any(), ratelimit.RedisKeyPrefix+"opensea", redis_rate.PerMinute(60)).
					Return(&redis_rate.Result{Allowed: 1}, nil)
			},
		},
		{
			name: "waits for retry hint then succeeds",
			setup: func(rl *mocks.MockRedisRateLimiter, clock *mocks.MockClock) {
				gomock.InOrder(
					rl.EXPECT().
						Allow(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(&redis_rate.Result{Allowed: 0, RetryAfter: time.Second}, nil),
					clock.EXPECT().
						SleepContext(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, d time.Duration) error {
							assert.GreaterOrEqual(t, d, 500*time.Millisecond)
							assert.LessOrEqual(t, d, 1500*time.Millisecond)
							return nil
						}),
					rl.EXPECT().
						Allow(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(&redis_rate.Result{Allowed: 1}, nil),
				)
			},
		},
		{
			name: "redis failure degrades to local limit",
			setup: func(rl *mocks.MockRedisRateLimiter, clock *mocks.MockClock) {
				rl.EXPECT().
					Allow(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
		},
		{
			name: "canceled while waiting",
			setup: func(rl *mocks.MockRedisRateLimiter, clock *mocks.MockClock) {
				rl.EXPECT().
					Allow(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&redis_rate.Result{Allowed: 0, RetryAfter: time.Second}, nil)
				clock.EXPECT().
					SleepContext(gomock.Any(), gomock.Any()).
					Return(context.Canceled)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			rl := mocks.NewMockRedisRateLimiter(ctrl)
			clock := mocks.NewMockClock(ctrl)
			tt.setup(rl, clock)

			l := ratelimit.New("opensea", config.ProviderRateLimit{RequestsPerSecond: 1000, PerMinute: 60}, rl, clock)
			err := l.Wait(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDo(t *testing.T) {
	got, err := ratelimit.Do(context.Background(), nil, func(ctx context.Context) (string, error) {
		return "direct", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "direct", got)

	l := ratelimit.New("objkt", config.ProviderRateLimit{RequestsPerSecond: 1000}, nil, adapter.NewClock())
	n, err := ratelimit.Do(context.Background(), l, func(ctx context.Context) (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}
