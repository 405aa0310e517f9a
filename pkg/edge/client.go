package edge

import (
	"context"
	"time"
)

// Client provides access to all resource-specific clients. A concrete
// implementation is constructed by the edgeclient package.
type Client interface {
	Accounts() AccountsClient
	Zones() ZonesClient
	DNSRecords() DNSRecordsClient
	CustomHostnames() CustomHostnamesClient
	Rulesets() RulesetsClient
	KV() KVClient
	Buckets() BucketsClient
	AuditLogs() AuditLogsClient

	// VerifyToken checks the configured credentials against the API.
	VerifyToken(ctx context.Context) (*TokenStatus, error)
}

// TokenStatus is the result of a credential verification call.
type TokenStatus struct {
	ID        string     `json:"id"                   yaml:"id"`
	Status    string     `json:"status"               yaml:"status"`
	NotBefore *time.Time `json:"not_before,omitempty" yaml:"not_before,omitempty"`
	ExpiresOn *time.Time `json:"expires_on,omitempty" yaml:"expires_on,omitempty"`
}

// Logger is the structured logging interface consumed by the HTTP layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an edge.Client.
//
// # Authentication
//
// Provide either APIToken (preferred, sent as a Bearer header) or the
// APIKey/APIEmail pair (sent as X-Auth-Key/X-Auth-Email headers).
//
// # Resilience
//
// MaxRetries, RetryWaitMin, and RetryWaitMax tune the reactive retry loop
// applied to 429, 5xx, and transport failures. PermitLimit, PermitWindow,
// and QueueLimit tune the proactive throttle applied before each send.
// BreakerThreshold and BreakerCooldown tune the shared circuit breaker.
// Zero values fall back to library defaults.
type Config struct {
	// APIEndpoint is the base URL for the API, e.g. "https://api.example.com/client/v4".
	// edgeclient.New normalizes this value by trimming a trailing slash and
	// adding "https://" if no scheme is present.
	APIEndpoint string

	// APIToken is an API token used directly as a Bearer credential.
	APIToken string
	// APIKey is a legacy account key, used together with APIEmail.
	APIKey string
	// APIEmail is the account email paired with APIKey.
	APIEmail string

	// HTTPTimeout is the per-request timeout. Context deadlines passed to
	// client methods apply in addition to this.
	HTTPTimeout time.Duration
	// MaxRetries is the retry ceiling for throttled and transient failures.
	// Zero applies the library default; negative disables retries.
	MaxRetries int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// PermitLimit is the number of requests allowed per PermitWindow.
	// Zero applies the library default; negative disables proactive
	// throttling.
	PermitLimit int
	// PermitWindow is the rolling window the permit budget refills over.
	PermitWindow time.Duration
	// QueueLimit bounds how many calls may wait for a permit before new
	// calls fail fast.
	QueueLimit int

	// BreakerThreshold is the consecutive-failure count that opens the
	// circuit breaker. Zero applies the library default; negative disables
	// the breaker.
	BreakerThreshold int
	// BreakerCooldown is how long the breaker stays open before allowing
	// a half-open probe.
	BreakerCooldown time.Duration

	// Debug enables verbose HTTP request/response logging when a Logger
	// is provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
