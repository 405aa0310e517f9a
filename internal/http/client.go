// Package http implements the resilient transport underneath every API
// call: one HTTP request per logical call, wrapped with proactive permit
// throttling, reactive retry with backoff, and a shared circuit breaker.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/edgewise-io/edgeapi/internal/auth"
	"github.com/edgewise-io/edgeapi/pkg/edge"
)

// Client executes edge.Requests against a base URL. It implements
// edge.Requester. One Client owns one permit budget and one circuit
// breaker; concurrent calls through the same Client share both.
type Client struct {
	baseURL      string
	retryClient  *retryablehttp.Client
	credentials  auth.Provider
	limiter      *permitLimiter
	breaker      *circuitBreaker
	interceptors *edge.InterceptorChain
	logger       edge.Logger
	userAgent    string
	debug        bool
}

// NewClient creates a transport client for the given base URL.
func NewClient(baseURL string, credentials auth.Provider, opts ...Option) *Client {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient.Timeout = options.timeout
	retryClient.RetryMax = options.retryMax
	retryClient.RetryWaitMin = options.retryWaitMin
	retryClient.RetryWaitMax = options.retryWaitMax
	retryClient.CheckRetry = retryPolicy
	retryClient.Backoff = retryBackoff
	// Keep the last response so exhausted retries can still be classified.
	retryClient.ErrorHandler = func(resp *http.Response, err error, numTries int) (*http.Response, error) {
		return resp, err
	}

	if options.logger != nil {
		retryClient.Logger = &leveledLogger{logger: options.logger}
	} else {
		retryClient.Logger = nil
	}

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		retryClient:  retryClient,
		credentials:  credentials,
		interceptors: options.interceptors,
		logger:       options.logger,
		userAgent:    options.userAgent,
		debug:        options.debug,
	}

	if options.permitLimit > 0 {
		client.limiter = newPermitLimiter(options.permitLimit, options.permitWindow, options.queueLimit)
	}

	if options.breakerThreshold > 0 {
		client.breaker = newCircuitBreaker(options.breakerThreshold, options.breakerCooldown)
	}

	return client
}

// Do executes one logical API call. Retryable failures (429, 5xx,
// transport errors) are retried internally; the caller only ever sees
// the terminal outcome, mapped to the typed error taxonomy.
func (c *Client) Do(ctx context.Context, req *edge.Request) (*edge.Response, error) {
	if c.interceptors != nil {
		err := c.interceptors.ExecuteRequestInterceptors(ctx, req)
		if err != nil {
			return nil, err
		}
	}

	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	// Proactive throttle first: a permit wait is not a breaker outcome.
	err = c.limiter.acquire(ctx)
	if err != nil {
		return nil, err
	}

	err = c.breaker.allow()
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("sending request", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
		})
	}

	httpResp, err := c.retryClient.Do(httpReq)

	// Caller cancellation is not an upstream failure; it neither feeds
	// the breaker nor gets wrapped in the transport taxonomy. Any probe
	// slot claimed by allow still has to be released, or the breaker
	// would wedge in half-open.
	if ctx.Err() != nil {
		c.breaker.abandon()

		if httpResp != nil {
			_ = httpResp.Body.Close()
		}

		return nil, ctx.Err()
	}

	if httpResp == nil {
		c.breaker.record(false)

		return nil, &edge.TransportError{Err: err}
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, readErr := io.ReadAll(httpResp.Body)
	if readErr != nil {
		c.breaker.record(false)

		return nil, &edge.TransportError{Err: fmt.Errorf("reading response body: %w", readErr)}
	}

	resp := &edge.Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.interceptors != nil {
		err = c.interceptors.ExecuteResponseInterceptors(ctx, req, resp)
		if err != nil {
			// An interceptor failure is local, not an upstream outcome.
			c.breaker.abandon()

			return nil, err
		}
	}

	return c.classify(httpResp, resp)
}

// classify maps a terminal HTTP response to the typed error taxonomy and
// feeds the circuit breaker. A non-429 4xx means the upstream is healthy
// and answering, so it resets the breaker's failure streak.
func (c *Client) classify(httpResp *http.Response, resp *edge.Response) (*edge.Response, error) {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		c.breaker.record(true)

		return resp, nil

	case resp.StatusCode == http.StatusTooManyRequests:
		c.breaker.record(false)

		return nil, &edge.RateLimitError{
			RetryAfter: parseRetryAfter(httpResp.Header.Get("Retry-After")),
			Body:       resp.Body,
		}

	case resp.StatusCode >= 500:
		c.breaker.record(false)

		return nil, &edge.ServerError{StatusCode: resp.StatusCode, Body: resp.Body}

	default:
		c.breaker.record(true)

		return nil, &edge.ClientError{
			StatusCode: resp.StatusCode,
			Errors:     envelopeErrors(resp.Body),
			Body:       resp.Body,
		}
	}
}

func (c *Client) buildRequest(ctx context.Context, req *edge.Request) (*retryablehttp.Request, error) {
	fullURL := c.baseURL + req.Path

	if len(req.Query) > 0 {
		parsed, err := url.Parse(fullURL)
		if err != nil {
			return nil, fmt.Errorf("parsing request URL: %w", err)
		}

		query := parsed.Query()
		for key, values := range req.Query {
			for _, value := range values {
				query.Add(key, value)
			}
		}

		parsed.RawQuery = query.Encode()
		fullURL = parsed.String()
	}

	var bodyBytes []byte

	if req.Body != nil {
		var err error

		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyBytes)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")

	if bodyBytes != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	for key, values := range req.Headers {
		for _, value := range values {
			httpReq.Header.Set(key, value)
		}
	}

	if c.credentials != nil {
		err = c.credentials.Apply(httpReq.Header)
		if err != nil {
			return nil, fmt.Errorf("applying credentials: %w", err)
		}
	}

	return httpReq, nil
}

// envelopeErrors extracts envelope error entries from an error body, if
// the body carries them.
func envelopeErrors(body []byte) []edge.APIError {
	var envelope edge.Envelope

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil
	}

	return envelope.Errors
}

// leveledLogger adapts edge.Logger to retryablehttp's LeveledLogger.
type leveledLogger struct {
	logger edge.Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, fieldsFromPairs(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, fieldsFromPairs(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, fieldsFromPairs(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, fieldsFromPairs(keysAndValues))
}

func fieldsFromPairs(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", keysAndValues[i])
		}

		fields[key] = keysAndValues[i+1]
	}

	return fields
}
