package edge

import (
	"context"
	"time"
)

// Bucket represents an object-storage bucket. Buckets are keyed by name;
// uploading objects is handled by a separate storage client, not this
// API surface.
type Bucket struct {
	Name         string       `json:"name"                    yaml:"name"`
	CreationDate time.Time    `json:"creation_date"           yaml:"creation_date"`
	Location     string       `json:"location,omitempty"      yaml:"location,omitempty"`
	StorageClass string       `json:"storage_class,omitempty" yaml:"storage_class,omitempty"`
	Jurisdiction Jurisdiction `json:"jurisdiction,omitempty"  yaml:"jurisdiction,omitempty"`
}

// BucketCreateRequest represents a request to create a bucket.
type BucketCreateRequest struct {
	Name string `json:"name" yaml:"name"`
	// LocationHint suggests a region; the service may place the bucket
	// elsewhere.
	LocationHint string       `json:"location_hint,omitempty" yaml:"location_hint,omitempty"`
	Jurisdiction Jurisdiction `json:"jurisdiction,omitempty"  yaml:"jurisdiction,omitempty"`
}

// BucketsClient accesses the per-account bucket endpoints.
type BucketsClient interface {
	List(ctx context.Context, accountID string, opts *ListOptions) (*Page[Bucket], error)
	ListAll(ctx context.Context, accountID string, opts *ListOptions) *PageIterator[Bucket]
	Get(ctx context.Context, accountID, bucketName string) (*Bucket, error)
	Create(ctx context.Context, accountID string, request *BucketCreateRequest) (*Bucket, error)
	Delete(ctx context.Context, accountID, bucketName string) error
}
