package http

import (
	"time"

	"github.com/edgewise-io/edgeapi/internal/constants"
	"github.com/edgewise-io/edgeapi/pkg/edge"
)

type clientOptions struct {
	timeout          time.Duration
	retryMax         int
	retryWaitMin     time.Duration
	retryWaitMax     time.Duration
	permitLimit      int
	permitWindow     time.Duration
	queueLimit       int
	breakerThreshold int
	breakerCooldown  time.Duration
	interceptors     *edge.InterceptorChain
	logger           edge.Logger
	userAgent        string
	debug            bool
}

func defaultOptions() *clientOptions {
	return &clientOptions{
		timeout:      constants.DefaultHTTPTimeout,
		retryMax:     constants.DefaultRetryMax,
		retryWaitMin: constants.DefaultRetryWaitMin,
		retryWaitMax: constants.DefaultRetryWaitMax,
	}
}

// Option configures a Client.
type Option func(*clientOptions)

// WithTimeout sets the per-attempt HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithRetryConfig overrides the retry ceiling and backoff window.
// A max of zero disables retries entirely.
func WithRetryConfig(max int, waitMin, waitMax time.Duration) Option {
	return func(o *clientOptions) {
		o.retryMax = max

		if waitMin > 0 {
			o.retryWaitMin = waitMin
		}

		if waitMax > 0 {
			o.retryWaitMax = waitMax
		}
	}
}

// WithRateLimit enables the proactive permit limiter: at most limit
// requests per window, with at most queueLimit callers waiting on a
// permit before new callers are turned away with edge.ErrOverloaded.
func WithRateLimit(limit int, window time.Duration, queueLimit int) Option {
	return func(o *clientOptions) {
		o.permitLimit = limit
		o.permitWindow = window
		o.queueLimit = queueLimit
	}
}

// WithCircuitBreaker enables the breaker: threshold consecutive
// terminal failures open it for the cooldown duration.
func WithCircuitBreaker(threshold int, cooldown time.Duration) Option {
	return func(o *clientOptions) {
		o.breakerThreshold = threshold
		o.breakerCooldown = cooldown
	}
}

// WithInterceptors attaches an interceptor chain. Interceptors run once
// per logical call; internal retries are not visible to them.
func WithInterceptors(chain *edge.InterceptorChain) Option {
	return func(o *clientOptions) {
		o.interceptors = chain
	}
}

// WithLogger attaches a logger for retry and debug output.
func WithLogger(logger edge.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithUserAgent sets the User-Agent header on every request.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithDebug enables request-level debug logging.
func WithDebug(debug bool) Option {
	return func(o *clientOptions) {
		o.debug = debug
	}
}
