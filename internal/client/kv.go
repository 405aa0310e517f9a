package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/edgewise-io/edgeapi/pkg/edge"
)

// KVClient implements edge.KVClient
type KVClient struct {
	access *edge.ResourceAccess
}

// NewKVClient creates a new key-value client
func NewKVClient(access *edge.ResourceAccess) *KVClient {
	return &KVClient{access: access}
}

// ListNamespaces implements edge.KVClient.ListNamespaces
func (c *KVClient) ListNamespaces(ctx context.Context, accountID string, opts *edge.ListOptions) (*edge.Page[edge.KVNamespace], error) {
	path := fmt.Sprintf("/accounts/%s/storage/kv/namespaces", accountID)

	page, err := edge.ListPage[edge.KVNamespace](ctx, c.access, path, opts)
	if err != nil {
		return nil, fmt.Errorf("listing KV namespaces: %w", err)
	}

	return page, nil
}

// ListNamespacesAll implements edge.KVClient.ListNamespacesAll
func (c *KVClient) ListNamespacesAll(ctx context.Context, accountID string, opts *edge.ListOptions) *edge.PageIterator[edge.KVNamespace] {
	path := fmt.Sprintf("/accounts/%s/storage/kv/namespaces", accountID)

	return edge.NewPageIterator[edge.KVNamespace](ctx, c.access, path, opts)
}

// ListKeys implements edge.KVClient.ListKeys
func (c *KVClient) ListKeys(ctx context.Context, accountID, namespaceID string, opts *edge.ListOptions) (*edge.CursorPage[edge.KVKey], error) {
	path := fmt.Sprintf("/accounts/%s/storage/kv/namespaces/%s/keys", accountID, namespaceID)

	page, err := edge.ListCursorPage[edge.KVKey](ctx, c.access, path, opts)
	if err != nil {
		return nil, fmt.Errorf("listing KV keys: %w", err)
	}

	return page, nil
}

// ListKeysAll implements edge.KVClient.ListKeysAll
func (c *KVClient) ListKeysAll(ctx context.Context, accountID, namespaceID string, opts *edge.ListOptions) *edge.CursorIterator[edge.KVKey] {
	path := fmt.Sprintf("/accounts/%s/storage/kv/namespaces/%s/keys", accountID, namespaceID)

	return edge.NewCursorIterator[edge.KVKey](ctx, c.access, path, opts)
}

// BulkGet implements edge.KVClient.BulkGet. The request body is camelCase
// on the wire; edge.KVBulkGetRequest carries the right tags.
func (c *KVClient) BulkGet(ctx context.Context, accountID, namespaceID string, request *edge.KVBulkGetRequest) (*edge.KVBulkGetResult, error) {
	path := fmt.Sprintf("/accounts/%s/storage/kv/namespaces/%s/bulk/get", accountID, namespaceID)

	result, err := edge.Post[*edge.KVBulkGetResult](ctx, c.access, path, request)
	if err != nil {
		return nil, fmt.Errorf("bulk getting KV values: %w", err)
	}

	return result, nil
}

// Write implements edge.KVClient.Write
func (c *KVClient) Write(ctx context.Context, accountID, namespaceID, key string, request *edge.KVWriteRequest) error {
	path := fmt.Sprintf("/accounts/%s/storage/kv/namespaces/%s/values/%s", accountID, namespaceID, url.PathEscape(key))

	_, err := edge.Put[*edge.Resource](ctx, c.access, path, request)
	if err != nil {
		return fmt.Errorf("writing KV value: %w", err)
	}

	return nil
}

// Delete implements edge.KVClient.Delete
func (c *KVClient) Delete(ctx context.Context, accountID, namespaceID, key string) error {
	path := fmt.Sprintf("/accounts/%s/storage/kv/namespaces/%s/values/%s", accountID, namespaceID, url.PathEscape(key))

	_, err := edge.Delete[*edge.Resource](ctx, c.access, path)
	if err != nil {
		return fmt.Errorf("deleting KV value: %w", err)
	}

	return nil
}
