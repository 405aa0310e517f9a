// Package edgeclient provides the main entry point for creating API clients
package edgeclient

import (
	"fmt"
	"strings"

	"github.com/edgewise-io/edgeapi/internal/auth"
	"github.com/edgewise-io/edgeapi/internal/client"
	"github.com/edgewise-io/edgeapi/internal/constants"
	internalhttp "github.com/edgewise-io/edgeapi/internal/http"
	"github.com/edgewise-io/edgeapi/pkg/edge"
)

// New creates a new API client from the given configuration.
func New(config *edge.Config) (edge.Client, error) {
	if config == nil {
		return nil, edge.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, edge.ErrEndpointRequired
	}

	// Normalize API endpoint
	apiEndpoint := strings.TrimSuffix(config.APIEndpoint, "/")
	if !strings.HasPrefix(apiEndpoint, "http://") && !strings.HasPrefix(apiEndpoint, "https://") {
		apiEndpoint = "https://" + apiEndpoint
	}

	credentials, err := buildCredentials(config)
	if err != nil {
		return nil, err
	}

	httpClient := internalhttp.NewClient(apiEndpoint, credentials, transportOptions(config)...)

	return client.New(httpClient), nil
}

// NewWithToken creates a client authenticated with an API token.
func NewWithToken(apiEndpoint, apiToken string) (edge.Client, error) {
	return New(&edge.Config{
		APIEndpoint: apiEndpoint,
		APIToken:    apiToken,
	})
}

// NewWithKeyPair creates a client authenticated with a legacy key/email pair.
func NewWithKeyPair(apiEndpoint, apiKey, apiEmail string) (edge.Client, error) {
	return New(&edge.Config{
		APIEndpoint: apiEndpoint,
		APIKey:      apiKey,
		APIEmail:    apiEmail,
	})
}

// buildCredentials selects the credential provider for the config. A token
// wins over a key pair when both are set.
func buildCredentials(config *edge.Config) (auth.Provider, error) {
	switch {
	case config.APIToken != "":
		provider, err := auth.NewTokenProvider(config.APIToken)
		if err != nil {
			return nil, fmt.Errorf("building token credentials: %w", err)
		}

		return provider, nil

	case config.APIKey != "" || config.APIEmail != "":
		provider, err := auth.NewKeyProvider(config.APIKey, config.APIEmail)
		if err != nil {
			return nil, fmt.Errorf("building key credentials: %w", err)
		}

		return provider, nil

	default:
		return nil, edge.ErrCredentialsInvalid
	}
}

// transportOptions maps the public config onto transport options, filling
// library defaults for unset resilience knobs.
func transportOptions(config *edge.Config) []internalhttp.Option {
	opts := []internalhttp.Option{}

	if config.HTTPTimeout > 0 {
		opts = append(opts, internalhttp.WithTimeout(config.HTTPTimeout))
	}

	retryMax := config.MaxRetries

	switch {
	case retryMax == 0:
		retryMax = constants.DefaultRetryMax
	case retryMax < 0:
		// Negative disables retries entirely.
		retryMax = 0
	}

	opts = append(opts, internalhttp.WithRetryConfig(retryMax, config.RetryWaitMin, config.RetryWaitMax))

	permitLimit := config.PermitLimit
	if permitLimit == 0 {
		permitLimit = constants.DefaultPermitLimit
	}

	if permitLimit > 0 {
		permitWindow := config.PermitWindow
		if permitWindow <= 0 {
			permitWindow = constants.DefaultPermitWindow
		}

		// Each knob defaults on its own; zero means default, negative
		// removes the queue bound.
		queueLimit := config.QueueLimit

		switch {
		case queueLimit == 0:
			queueLimit = constants.DefaultQueueLimit
		case queueLimit < 0:
			queueLimit = 0
		}

		opts = append(opts, internalhttp.WithRateLimit(permitLimit, permitWindow, queueLimit))
	}

	threshold := config.BreakerThreshold
	cooldown := config.BreakerCooldown

	if threshold == 0 {
		threshold = constants.DefaultBreakerThreshold
		cooldown = constants.DefaultBreakerCooldown
	}

	if threshold > 0 {
		opts = append(opts, internalhttp.WithCircuitBreaker(threshold, cooldown))
	}

	if config.Logger != nil {
		opts = append(opts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, internalhttp.WithDebug(true))
	}

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = constants.DefaultUserAgent
	}

	opts = append(opts, internalhttp.WithUserAgent(userAgent))

	return opts
}
