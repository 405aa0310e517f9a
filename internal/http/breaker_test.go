package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgewise-io/edgeapi/internal/constants"
	"github.com/edgewise-io/edgeapi/pkg/edge"
)

func TestCircuitBreakerConsecutiveFailures(t *testing.T) {
	t.Parallel()

	breaker := newCircuitBreaker(3, time.Minute)

	breaker.record(false)
	breaker.record(false)
	require.NoError(t, breaker.allow(), "below threshold stays closed")

	// A success resets the streak.
	breaker.record(true)
	breaker.record(false)
	breaker.record(false)
	require.NoError(t, breaker.allow())

	breaker.record(false)
	require.ErrorIs(t, breaker.allow(), edge.ErrCircuitOpen)
	assert.Equal(t, constants.StatusOpen, breaker.status())
}

func TestCircuitBreakerHalfOpenSingleProbe(t *testing.T) {
	t.Parallel()

	breaker := newCircuitBreaker(1, 5*time.Millisecond)

	breaker.record(false)
	require.ErrorIs(t, breaker.allow(), edge.ErrCircuitOpen)

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, breaker.allow(), "first caller after cooldown is the probe")
	assert.Equal(t, constants.StatusHalfOpen, breaker.status())
	require.ErrorIs(t, breaker.allow(), edge.ErrCircuitOpen, "only one probe at a time")

	breaker.record(false)
	assert.Equal(t, constants.StatusOpen, breaker.status(), "failed probe reopens")

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, breaker.allow())
	breaker.record(true)
	assert.Equal(t, constants.StatusClosed, breaker.status(), "successful probe closes")
}

func TestCircuitBreakerAbandonedProbeFreesSlot(t *testing.T) {
	t.Parallel()

	breaker := newCircuitBreaker(1, 5*time.Millisecond)

	breaker.record(false)
	time.Sleep(10 * time.Millisecond)

	require.NoError(t, breaker.allow())
	require.ErrorIs(t, breaker.allow(), edge.ErrCircuitOpen)

	// The admitted call ends without an outcome, e.g. caller
	// cancellation. The slot must come back so recovery can proceed.
	breaker.abandon()

	assert.Equal(t, constants.StatusHalfOpen, breaker.status())
	require.NoError(t, breaker.allow(), "next caller becomes the probe")

	breaker.record(true)
	assert.Equal(t, constants.StatusClosed, breaker.status())
}

func TestCircuitBreakerAbandonOutsideHalfOpenIsNoop(t *testing.T) {
	t.Parallel()

	breaker := newCircuitBreaker(2, time.Minute)

	breaker.abandon()
	assert.Equal(t, constants.StatusClosed, breaker.status())

	breaker.record(false)
	breaker.record(false)
	breaker.abandon()
	assert.Equal(t, constants.StatusOpen, breaker.status())
	require.ErrorIs(t, breaker.allow(), edge.ErrCircuitOpen, "cooldown still applies")

	var nilBreaker *circuitBreaker

	nilBreaker.abandon()
}

func TestCircuitBreakerNilIsNoop(t *testing.T) {
	t.Parallel()

	var breaker *circuitBreaker

	require.NoError(t, breaker.allow())
	breaker.record(false)
	assert.Equal(t, constants.StatusClosed, breaker.status())
}

func TestPermitLimiterOverloaded(t *testing.T) {
	t.Parallel()

	limiter := newPermitLimiter(1, time.Hour, 1)

	require.NoError(t, limiter.acquire(context.Background()), "first permit is free")

	ctx, cancel := context.WithCancel(context.Background())

	waiting := make(chan error, 1)

	go func() {
		waiting <- limiter.acquire(ctx)
	}()

	require.Eventually(t, func() bool {
		return limiter.waiting.Load() == 1
	}, time.Second, time.Millisecond)

	err := limiter.acquire(context.Background())
	require.ErrorIs(t, err, edge.ErrOverloaded, "queue bound exceeded")

	cancel()
	assert.ErrorIs(t, <-waiting, context.Canceled)
}

func TestPermitLimiterNilIsNoop(t *testing.T) {
	t.Parallel()

	var limiter *permitLimiter

	for i := 0; i < 10; i++ {
		require.NoError(t, limiter.acquire(context.Background()))
	}
}

func TestParseRetryAfter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 30*time.Second, parseRetryAfter("30"))
	assert.Equal(t, time.Duration(0), parseRetryAfter(""))
	assert.Equal(t, time.Duration(0), parseRetryAfter("-5"))
	assert.Equal(t, time.Duration(0), parseRetryAfter("not-a-delay"))

	when := time.Now().Add(45 * time.Second).UTC().Format(http.TimeFormat)
	delay := parseRetryAfter(when)
	assert.Greater(t, delay, 40*time.Second)
	assert.LessOrEqual(t, delay, 45*time.Second)
}

func TestRetryBackoffHonorsRetryAfter(t *testing.T) {
	t.Parallel()

	resp := &http.Response{
		StatusCode: http.StatusTooManyRequests,
		Header:     http.Header{"Retry-After": []string{"7"}},
	}

	assert.Equal(t, 7*time.Second, retryBackoff(time.Second, 2*time.Second, 0, resp),
		"server delay wins over the backoff ceiling")

	plain := retryBackoff(time.Second, 30*time.Second, 1, nil)
	assert.GreaterOrEqual(t, plain, 2*time.Second)
	assert.LessOrEqual(t, plain, 3*time.Second)

	capped := retryBackoff(time.Second, 4*time.Second, 10, nil)
	assert.Equal(t, 4*time.Second, capped)
}
