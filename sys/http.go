package sys

import (
	"context"
	"net/http"
	"strconv"
	"time"
)

const (
	defaultRetryWait = 2 * time.Second
	maxRetryWait     = 10 * time.Second
)

// RetryAfter parses the delay a throttled response asks for, capped
func RetryAfter(headers http.Header) time.Duration {
	waitDuration := defaultRetryWait
	if header := headers.Get("Retry-After"); header != "" {
		if seconds, err := strconv.ParseInt(header, 10, 32); err == nil && seconds >= 0 {
			waitDuration = time.Duration(seconds) * time.Second
		}
	}
	return min(waitDuration, maxRetryWait)
}

// SleepUntilRetry waits for the delay a throttled response asks for
// or until ctx is done, whichever comes first
func SleepUntilRetry(ctx context.Context, headers http.Header) error {
	timer := time.NewTimer(RetryAfter(headers))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
