package client

import (
	"context"
	"fmt"

	"github.com/edgewise-io/edgeapi/pkg/edge"
)

// CustomHostnamesClient implements edge.CustomHostnamesClient
type CustomHostnamesClient struct {
	access *edge.ResourceAccess
}

// NewCustomHostnamesClient creates a new custom hostnames client
func NewCustomHostnamesClient(access *edge.ResourceAccess) *CustomHostnamesClient {
	return &CustomHostnamesClient{access: access}
}

// List implements edge.CustomHostnamesClient.List
func (c *CustomHostnamesClient) List(ctx context.Context, zoneID string, opts *edge.ListOptions) (*edge.CursorPage[edge.CustomHostname], error) {
	path := fmt.Sprintf("/zones/%s/custom_hostnames", zoneID)

	page, err := edge.ListCursorPage[edge.CustomHostname](ctx, c.access, path, opts)
	if err != nil {
		return nil, fmt.Errorf("listing custom hostnames: %w", err)
	}

	return page, nil
}

// ListAll implements edge.CustomHostnamesClient.ListAll. The endpoint can
// repeat an item across adjacent cursor pages, so the iterator deduplicates
// by resource ID within one enumeration.
func (c *CustomHostnamesClient) ListAll(ctx context.Context, zoneID string, opts *edge.ListOptions) *edge.CursorIterator[edge.CustomHostname] {
	path := fmt.Sprintf("/zones/%s/custom_hostnames", zoneID)

	return edge.NewCursorIterator(ctx, c.access, path, opts, edge.DedupByResourceID[edge.CustomHostname]())
}

// Get implements edge.CustomHostnamesClient.Get
func (c *CustomHostnamesClient) Get(ctx context.Context, zoneID, hostnameID string) (*edge.CustomHostname, error) {
	path := fmt.Sprintf("/zones/%s/custom_hostnames/%s", zoneID, hostnameID)

	hostname, err := edge.Get[*edge.CustomHostname](ctx, c.access, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting custom hostname: %w", err)
	}

	return hostname, nil
}

// Create implements edge.CustomHostnamesClient.Create
func (c *CustomHostnamesClient) Create(ctx context.Context, zoneID string, request *edge.CustomHostnameCreateRequest) (*edge.CustomHostname, error) {
	path := fmt.Sprintf("/zones/%s/custom_hostnames", zoneID)

	hostname, err := edge.Post[*edge.CustomHostname](ctx, c.access, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating custom hostname: %w", err)
	}

	return hostname, nil
}

// Delete implements edge.CustomHostnamesClient.Delete
func (c *CustomHostnamesClient) Delete(ctx context.Context, zoneID, hostnameID string) (*edge.Resource, error) {
	path := fmt.Sprintf("/zones/%s/custom_hostnames/%s", zoneID, hostnameID)

	deleted, err := edge.Delete[*edge.Resource](ctx, c.access, path)
	if err != nil {
		return nil, fmt.Errorf("deleting custom hostname: %w", err)
	}

	return deleted, nil
}
