package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second

	// DefaultUserAgent identifies this library on the wire.
	DefaultUserAgent = "edgeapi-go"
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries after the
	// initial attempt.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum backoff between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum backoff between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// Proactive throttle defaults.
const (
	// DefaultPermitLimit is the number of requests allowed per window.
	// The public API enforces 1200 requests per five minutes per client.
	DefaultPermitLimit = 1200

	// DefaultPermitWindow is the rolling window the permit budget refills
	// over.
	DefaultPermitWindow = 5 * time.Minute

	// DefaultQueueLimit bounds how many calls may wait for a permit.
	DefaultQueueLimit = 100
)

// Circuit breaker defaults.
const (
	// DefaultBreakerThreshold is the consecutive-failure count that opens
	// the breaker.
	DefaultBreakerThreshold = 5

	// DefaultBreakerCooldown is how long the breaker stays open before a
	// half-open probe is allowed.
	DefaultBreakerCooldown = 30 * time.Second
)

// Pagination and display limits.
const (
	// DefaultPageSize is the default number of items per page.
	DefaultPageSize = 20

	// StandardPageSize is the common page size for API responses.
	StandardPageSize = 50

	// MaxPageSize is the largest page size the API accepts.
	MaxPageSize = 500
)

// Circuit breaker states.
const (
	// StatusClosed indicates the breaker is passing calls through.
	StatusClosed = "closed"

	// StatusOpen indicates the breaker is failing calls fast.
	StatusOpen = "open"

	// StatusHalfOpen indicates the breaker is allowing a single probe.
	StatusHalfOpen = "half-open"
)

// Output format constants.
const (
	// FormatTable for tabular output.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)
