package carrier

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

// RetryConfig holds per-carrier timeout and retry policy. Both are explicit
// configuration rather than an operational afterthought: a carrier that
// exceeds its timeout is treated as unavailable without blocking the others.
type RetryConfig struct {
	// Timeout bounds a single attempt against the carrier.
	Timeout time.Duration
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries uint64
	// InitialInterval is the first backoff delay between attempts.
	InitialInterval time.Duration
}

// DefaultRetryConfig returns the default per-carrier retry policy.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		Timeout:         10 * time.Second,
		MaxRetries:      2,
		InitialInterval: 500 * time.Millisecond,
	}
}

// doWithRetry runs fn with a per-attempt timeout and exponential backoff.
// Only transient carrier failures are retried; rejections and parse errors
// return immediately. Context cancellation abandons in-flight attempts,
// which is always safe because quote requests are pure reads.
func doWithRetry(ctx context.Context, carrierName string, cfg RetryConfig, fn func(ctx context.Context) error) error {
	attempt := 0
	op := func() error {
		attempt++
		attemptCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()

		err := fn(attemptCtx)
		if err == nil {
			return nil
		}
		if !Retryable(err) {
			return backoff.Permanent(err)
		}

		log.Warn().
			Str("carrier", carrierName).
			Int("attempt", attempt).
			Err(err).
			Msg("Carrier attempt failed, will retry")
		return err
	}

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = cfg.InitialInterval

	policy := backoff.WithContext(backoff.WithMaxRetries(expo, cfg.MaxRetries), ctx)
	return backoff.Retry(op, policy)
}
