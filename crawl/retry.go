package crawl

import (
	"context"
	"time"

	"github.com/mwielbut/noveltrans"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// FetchRetryFunc observes one fetch retry before its backoff wait.
// attempt is the number of the attempt that just failed, starting at 1.
type FetchRetryFunc func(attempt int, delay time.Duration, err error)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetry attempts to fetch a URL with exponential backoff.
// It retries up to 3 times (4 total attempts) with delays of 1s, 2s, 4s.
// The observer, if provided, is called for each retry attempt.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, observe FetchRetryFunc) (string, error) {
	return FetchWithRetryDelays(ctx, url, fetch, observe, DefaultRetryDelays())
}

// FetchWithRetryDelays is like FetchWithRetry but allows configurable
// delays, which is useful for testing without waiting for real delays.
// Failures with terminal error codes are returned immediately.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, observe FetchRetryFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		text, err := fetch(ctx, url)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if !noveltrans.IsRetryable(err) {
			return "", err
		}
		if attempt >= maxAttempts-1 {
			break
		}

		if observe != nil {
			observe(attempt+1, delays[attempt], err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
