package providers

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ff-catalog-indexer/internal/adapter"
	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/logger"
)

// RetryPolicy bounds the retries of a single page
type RetryPolicy struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultRetryPolicy retries a page three times
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 3, InitialInterval: time.Second, MaxInterval: 15 * time.Second}
}

// FetchPage calls FetchWalletTokens, retrying transient failures with
// exponential backoff. Permanent failures are returned immediately.
func FetchPage(ctx context.Context, a Adapter, policy RetryPolicy, address string, observationType domain.ObservationType, pageSize int, cursor string) (*Page, error) {
	var page *Page

	operation := func() error {
		p, err := a.FetchWalletTokens(ctx, address, observationType, pageSize, cursor)
		if err != nil {
			if !adapter.IsRetryable(err) || ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		page = p
		return nil
	}

	b := backoff.NewExponentialBackOff()
	if policy.InitialInterval > 0 {
		b.InitialInterval = policy.InitialInterval
	}
	if policy.MaxInterval > 0 {
		b.MaxInterval = policy.MaxInterval
	}
	b.MaxElapsedTime = 0

	retries := policy.MaxRetries
	if retries < 0 {
		retries = 0
	}

	notify := func(err error, wait time.Duration) {
		logger.WarnCtx(ctx, "Provider page failed, retrying",
			zap.String("provider", string(a.Source())),
			zap.String("address", address),
			zap.String("observationType", string(observationType)),
			zap.String("cursor", cursor),
			zap.Duration("wait", wait),
			zap.Error(err))
	}

	err := backoff.RetryNotify(operation,
		backoff.WithContext(backoff.WithMaxRetries(b, uint64(retries)), ctx), //nolint:gosec,G115
		notify)
	if err != nil {
		return nil, err
	}
	return page, nil
}
