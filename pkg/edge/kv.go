package edge

import (
	"context"
	"encoding/json"
)

// KVNamespace represents a key-value namespace within an account.
type KVNamespace struct {
	ID                  string `json:"id"                    yaml:"id"`
	Title               string `json:"title"                 yaml:"title"`
	SupportsURLEncoding bool   `json:"supports_url_encoding" yaml:"supports_url_encoding"`
}

// KVKey represents one key within a namespace listing.
type KVKey struct {
	Name       string          `json:"name"                 yaml:"name"`
	Expiration int64           `json:"expiration,omitempty" yaml:"expiration,omitempty"`
	Metadata   json.RawMessage `json:"metadata,omitempty"   yaml:"metadata,omitempty"`
}

// KVBulkGetRequest fetches up to 100 values in one call. This endpoint is
// the documented exception to snake_case request bodies: its fields are
// camelCase on the wire.
type KVBulkGetRequest struct {
	Keys []string `json:"keys" yaml:"keys"`
	// Type is "text" or "json"; empty defaults to text.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
	// WithMetadata includes each key's metadata in the result.
	WithMetadata bool `json:"withMetadata,omitempty" yaml:"withMetadata,omitempty"`
}

// KVBulkGetResult maps requested keys to their values; missing keys are
// absent from the map.
type KVBulkGetResult struct {
	Values map[string]json.RawMessage `json:"values" yaml:"values"`
}

// KVWriteRequest sets a value with optional expiration.
type KVWriteRequest struct {
	Value string `json:"value" yaml:"value"`
	// ExpirationTTL in seconds; 0 means no expiration.
	ExpirationTTL int64           `json:"expiration_ttl,omitempty" yaml:"expiration_ttl,omitempty"`
	Metadata      json.RawMessage `json:"metadata,omitempty"       yaml:"metadata,omitempty"`
}

// KVClient accesses the per-account key-value endpoints. Namespace
// listings are page-paginated; key listings are cursor-paginated.
type KVClient interface {
	ListNamespaces(ctx context.Context, accountID string, opts *ListOptions) (*Page[KVNamespace], error)
	ListNamespacesAll(ctx context.Context, accountID string, opts *ListOptions) *PageIterator[KVNamespace]
	ListKeys(ctx context.Context, accountID, namespaceID string, opts *ListOptions) (*CursorPage[KVKey], error)
	ListKeysAll(ctx context.Context, accountID, namespaceID string, opts *ListOptions) *CursorIterator[KVKey]
	BulkGet(ctx context.Context, accountID, namespaceID string, request *KVBulkGetRequest) (*KVBulkGetResult, error)
	Write(ctx context.Context, accountID, namespaceID, key string, request *KVWriteRequest) error
	Delete(ctx context.Context, accountID, namespaceID, key string) error
}
