package client

import (
	"context"
	"fmt"

	"github.com/edgewise-io/edgeapi/pkg/edge"
)

// DNSRecordsClient implements edge.DNSRecordsClient
type DNSRecordsClient struct {
	access *edge.ResourceAccess
}

// NewDNSRecordsClient creates a new DNS records client
func NewDNSRecordsClient(access *edge.ResourceAccess) *DNSRecordsClient {
	return &DNSRecordsClient{access: access}
}

// List implements edge.DNSRecordsClient.List
func (c *DNSRecordsClient) List(ctx context.Context, zoneID string, opts *edge.ListOptions) (*edge.Page[edge.DNSRecord], error) {
	path := fmt.Sprintf("/zones/%s/dns_records", zoneID)

	page, err := edge.ListPage[edge.DNSRecord](ctx, c.access, path, opts)
	if err != nil {
		return nil, fmt.Errorf("listing DNS records: %w", err)
	}

	return page, nil
}

// ListAll implements edge.DNSRecordsClient.ListAll
func (c *DNSRecordsClient) ListAll(ctx context.Context, zoneID string, opts *edge.ListOptions) *edge.PageIterator[edge.DNSRecord] {
	path := fmt.Sprintf("/zones/%s/dns_records", zoneID)

	return edge.NewPageIterator[edge.DNSRecord](ctx, c.access, path, opts)
}

// Get implements edge.DNSRecordsClient.Get
func (c *DNSRecordsClient) Get(ctx context.Context, zoneID, recordID string) (*edge.DNSRecord, error) {
	path := fmt.Sprintf("/zones/%s/dns_records/%s", zoneID, recordID)

	record, err := edge.Get[*edge.DNSRecord](ctx, c.access, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting DNS record: %w", err)
	}

	return record, nil
}

// Create implements edge.DNSRecordsClient.Create
func (c *DNSRecordsClient) Create(ctx context.Context, zoneID string, request *edge.DNSRecordCreateRequest) (*edge.DNSRecord, error) {
	path := fmt.Sprintf("/zones/%s/dns_records", zoneID)

	record, err := edge.Post[*edge.DNSRecord](ctx, c.access, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating DNS record: %w", err)
	}

	return record, nil
}

// Update implements edge.DNSRecordsClient.Update
func (c *DNSRecordsClient) Update(ctx context.Context, zoneID, recordID string, request *edge.DNSRecordUpdateRequest) (*edge.DNSRecord, error) {
	path := fmt.Sprintf("/zones/%s/dns_records/%s", zoneID, recordID)

	record, err := edge.Patch[*edge.DNSRecord](ctx, c.access, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating DNS record: %w", err)
	}

	return record, nil
}

// Delete implements edge.DNSRecordsClient.Delete
func (c *DNSRecordsClient) Delete(ctx context.Context, zoneID, recordID string) (*edge.Resource, error) {
	path := fmt.Sprintf("/zones/%s/dns_records/%s", zoneID, recordID)

	deleted, err := edge.Delete[*edge.Resource](ctx, c.access, path)
	if err != nil {
		return nil, fmt.Errorf("deleting DNS record: %w", err)
	}

	return deleted, nil
}
