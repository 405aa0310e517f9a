package client

import (
	"context"
	"fmt"

	"github.com/edgewise-io/edgeapi/pkg/edge"
)

// ZonesClient implements edge.ZonesClient
type ZonesClient struct {
	access *edge.ResourceAccess
}

// NewZonesClient creates a new zones client
func NewZonesClient(access *edge.ResourceAccess) *ZonesClient {
	return &ZonesClient{access: access}
}

// List implements edge.ZonesClient.List
func (c *ZonesClient) List(ctx context.Context, opts *edge.ListOptions) (*edge.Page[edge.Zone], error) {
	page, err := edge.ListPage[edge.Zone](ctx, c.access, "/zones", opts)
	if err != nil {
		return nil, fmt.Errorf("listing zones: %w", err)
	}

	return page, nil
}

// ListAll implements edge.ZonesClient.ListAll
func (c *ZonesClient) ListAll(ctx context.Context, opts *edge.ListOptions) *edge.PageIterator[edge.Zone] {
	return edge.NewPageIterator[edge.Zone](ctx, c.access, "/zones", opts)
}

// Get implements edge.ZonesClient.Get
func (c *ZonesClient) Get(ctx context.Context, zoneID string) (*edge.Zone, error) {
	path := fmt.Sprintf("/zones/%s", zoneID)

	zone, err := edge.Get[*edge.Zone](ctx, c.access, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting zone: %w", err)
	}

	return zone, nil
}

// Create implements edge.ZonesClient.Create
func (c *ZonesClient) Create(ctx context.Context, request *edge.ZoneCreateRequest) (*edge.Zone, error) {
	zone, err := edge.Post[*edge.Zone](ctx, c.access, "/zones", request)
	if err != nil {
		return nil, fmt.Errorf("creating zone: %w", err)
	}

	return zone, nil
}

// Delete implements edge.ZonesClient.Delete
func (c *ZonesClient) Delete(ctx context.Context, zoneID string) (*edge.Resource, error) {
	path := fmt.Sprintf("/zones/%s", zoneID)

	deleted, err := edge.Delete[*edge.Resource](ctx, c.access, path)
	if err != nil {
		return nil, fmt.Errorf("deleting zone: %w", err)
	}

	return deleted, nil
}

// PurgeCache implements edge.ZonesClient.PurgeCache
func (c *ZonesClient) PurgeCache(ctx context.Context, zoneID string, request *edge.ZonePurgeRequest) (*edge.Resource, error) {
	path := fmt.Sprintf("/zones/%s/purge_cache", zoneID)

	purged, err := edge.Post[*edge.Resource](ctx, c.access, path, request)
	if err != nil {
		return nil, fmt.Errorf("purging zone cache: %w", err)
	}

	return purged, nil
}
