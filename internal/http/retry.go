package http

import (
	"context"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// retryPolicy retries 429 and 5xx responses plus transport-level
// failures. Other 4xx responses are terminal: retrying a request the
// server has already rejected as malformed or unauthorized cannot
// succeed.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if resp != nil && resp.StatusCode == http.StatusTooManyRequests {
		return true, nil
	}

	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// retryBackoff is exponential with jitter, except when the server names
// its own delay: a Retry-After on a 429 or 503 wins over the computed
// backoff, even past the configured ceiling.
func retryBackoff(waitMin, waitMax time.Duration, attemptNum int, resp *http.Response) time.Duration {
	if resp != nil && (resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusServiceUnavailable) {
		if delay := parseRetryAfter(resp.Header.Get("Retry-After")); delay > 0 {
			return delay
		}
	}

	backoff := waitMin << uint(attemptNum)
	if backoff <= 0 || backoff > waitMax {
		backoff = waitMax
	}

	if waitMin > 0 {
		backoff += time.Duration(rand.Int63n(int64(waitMin)))
	}

	if backoff > waitMax {
		backoff = waitMax
	}

	return backoff
}

// parseRetryAfter accepts both delta-seconds and HTTP-date forms.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		if seconds < 0 {
			return 0
		}

		return time.Duration(seconds) * time.Second
	}

	if when, err := http.ParseTime(value); err == nil {
		if delay := time.Until(when); delay > 0 {
			return delay
		}
	}

	return 0
}
