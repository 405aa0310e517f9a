package client

import (
	"context"
	"fmt"

	"github.com/edgewise-io/edgeapi/pkg/edge"
)

// BucketsClient implements edge.BucketsClient
type BucketsClient struct {
	access *edge.ResourceAccess
}

// NewBucketsClient creates a new buckets client
func NewBucketsClient(access *edge.ResourceAccess) *BucketsClient {
	return &BucketsClient{access: access}
}

// List implements edge.BucketsClient.List
func (c *BucketsClient) List(ctx context.Context, accountID string, opts *edge.ListOptions) (*edge.Page[edge.Bucket], error) {
	path := fmt.Sprintf("/accounts/%s/buckets", accountID)

	page, err := edge.ListPage[edge.Bucket](ctx, c.access, path, opts)
	if err != nil {
		return nil, fmt.Errorf("listing buckets: %w", err)
	}

	return page, nil
}

// ListAll implements edge.BucketsClient.ListAll
func (c *BucketsClient) ListAll(ctx context.Context, accountID string, opts *edge.ListOptions) *edge.PageIterator[edge.Bucket] {
	path := fmt.Sprintf("/accounts/%s/buckets", accountID)

	return edge.NewPageIterator[edge.Bucket](ctx, c.access, path, opts)
}

// Get implements edge.BucketsClient.Get
func (c *BucketsClient) Get(ctx context.Context, accountID, bucketName string) (*edge.Bucket, error) {
	path := fmt.Sprintf("/accounts/%s/buckets/%s", accountID, bucketName)

	bucket, err := edge.Get[*edge.Bucket](ctx, c.access, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting bucket: %w", err)
	}

	return bucket, nil
}

// Create implements edge.BucketsClient.Create
func (c *BucketsClient) Create(ctx context.Context, accountID string, request *edge.BucketCreateRequest) (*edge.Bucket, error) {
	path := fmt.Sprintf("/accounts/%s/buckets", accountID)

	bucket, err := edge.Post[*edge.Bucket](ctx, c.access, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating bucket: %w", err)
	}

	return bucket, nil
}

// Delete implements edge.BucketsClient.Delete
func (c *BucketsClient) Delete(ctx context.Context, accountID, bucketName string) error {
	path := fmt.Sprintf("/accounts/%s/buckets/%s", accountID, bucketName)

	_, err := edge.Delete[*edge.Resource](ctx, c.access, path)
	if err != nil {
		return fmt.Errorf("deleting bucket: %w", err)
	}

	return nil
}
