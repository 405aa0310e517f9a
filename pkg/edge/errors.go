package edge

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// APIError represents a single error entry from a response envelope.
type APIError struct {
	Code    int    `json:"code"    yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (code: %d)", e.Message, e.Code)
}

// APIStatusError is returned when the API answers with HTTP 2xx but the
// envelope carries success=false. It reflects a semantic rejection and is
// never retried.
type APIStatusError struct {
	StatusCode int
	Errors     []APIError
	Messages   []Message
}

// Error implements the error interface.
func (e *APIStatusError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("API reported failure with HTTP %d and no errors", e.StatusCode)
	}

	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	return fmt.Sprintf("multiple API errors: %v", e.Errors)
}

// FirstError returns the first envelope error or nil.
func (e *APIStatusError) FirstError() *APIError {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}

	return nil
}

// ClientError is returned for HTTP 4xx responses other than 429. These are
// not retryable; the envelope's error codes and messages, when present, are
// preserved for diagnostics.
type ClientError struct {
	StatusCode int
	Errors     []APIError
	Body       []byte
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Errors[0].Error())
	}

	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, string(e.Body))
}

// ServerError is returned for HTTP 5xx responses once retries are exhausted.
type ServerError struct {
	StatusCode int
	Body       []byte
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, string(e.Body))
}

// RateLimitError is returned for HTTP 429 responses once retries are
// exhausted. RetryAfter carries the server-supplied delay when present.
type RateLimitError struct {
	RetryAfter time.Duration
	Body       []byte
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("HTTP 429: rate limited, retry after %s", e.RetryAfter)
	}

	return "HTTP 429: rate limited"
}

// TransportError is returned for connection-level failures and timeouts
// once retries are exhausted.
type TransportError struct {
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %v", e.Err)
}

// Unwrap supports errors.Is/errors.As on the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a response body cannot be decoded into the
// expected shape. It is never coerced into a partial result.
type DecodeError struct {
	Err  error
	Body []byte
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response: %v", e.Err)
}

// Unwrap supports errors.Is/errors.As on the underlying cause.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Common error codes the API uses in envelopes.
const (
	ErrorCodeAuthentication  = 10000
	ErrorCodeInvalidHeaders  = 6003
	ErrorCodeNotFound        = 7003
	ErrorCodeMethodNotFound  = 7000
	ErrorCodeRateLimited     = 971
	ErrorCodeInternalFailure = 1000
)

// Static errors that can be wrapped with context.
var (
	ErrCircuitOpen        = errors.New("circuit breaker is open")
	ErrOverloaded         = errors.New("request queue is full")
	ErrNoMoreItems        = errors.New("no more items")
	ErrConfigRequired     = errors.New("config is required")
	ErrEndpointRequired   = errors.New("API endpoint is required")
	ErrCredentialsInvalid = errors.New("either an API token or an API key and email are required")
	ErrDedupKeyRequired   = errors.New("duplicate suppression requires an item key function")
)

// IsNotFound checks whether the error represents a missing resource.
func IsNotFound(err error) bool {
	clientErr := &ClientError{}
	if errors.As(err, &clientErr) {
		return clientErr.StatusCode == http.StatusNotFound
	}

	statusErr := &APIStatusError{}
	if errors.As(err, &statusErr) {
		first := statusErr.FirstError()
		if first != nil {
			return first.Code == ErrorCodeNotFound
		}
	}

	return false
}

// IsRateLimited checks whether the error resulted from server-side throttling.
func IsRateLimited(err error) bool {
	rateErr := &RateLimitError{}

	return errors.As(err, &rateErr)
}

// IsServerError checks whether the error resulted from an upstream 5xx.
func IsServerError(err error) bool {
	serverErr := &ServerError{}

	return errors.As(err, &serverErr)
}

// IsRetryable reports whether the error class is retried by the client.
// Callers normally never observe retryable errors unless retries were
// exhausted; the check is useful for outer-loop policies.
func IsRetryable(err error) bool {
	transportErr := &TransportError{}
	serverErr := &ServerError{}
	rateErr := &RateLimitError{}

	return errors.As(err, &transportErr) || errors.As(err, &serverErr) || errors.As(err, &rateErr)
}
