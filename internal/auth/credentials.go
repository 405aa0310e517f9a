// Package auth supplies request credentials for the API transport.
package auth

import (
	"errors"
	"net/http"
)

// Static errors for err113 compliance.
var (
	ErrTokenRequired   = errors.New("API token is required")
	ErrKeyPairRequired = errors.New("both API key and email are required")
)

// Provider applies credentials to an outgoing request. Implementations
// must be safe for concurrent use.
type Provider interface {
	Apply(header http.Header) error
}

// TokenProvider authenticates with a Bearer API token.
type TokenProvider struct {
	token string
}

// NewTokenProvider creates a Bearer token provider.
func NewTokenProvider(token string) (*TokenProvider, error) {
	if token == "" {
		return nil, ErrTokenRequired
	}

	return &TokenProvider{token: token}, nil
}

// Apply sets the Authorization header.
func (p *TokenProvider) Apply(header http.Header) error {
	header.Set("Authorization", "Bearer "+p.token)

	return nil
}

// KeyProvider authenticates with the legacy API key and account email
// header pair.
type KeyProvider struct {
	key   string
	email string
}

// NewKeyProvider creates a key/email provider.
func NewKeyProvider(key, email string) (*KeyProvider, error) {
	if key == "" || email == "" {
		return nil, ErrKeyPairRequired
	}

	return &KeyProvider{key: key, email: email}, nil
}

// Apply sets the X-Auth-Key and X-Auth-Email headers.
func (p *KeyProvider) Apply(header http.Header) error {
	header.Set("X-Auth-Key", p.key)
	header.Set("X-Auth-Email", p.email)

	return nil
}
