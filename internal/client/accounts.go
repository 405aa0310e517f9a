package client

import (
	"context"
	"fmt"

	"github.com/edgewise-io/edgeapi/pkg/edge"
)

// AccountsClient implements edge.AccountsClient
type AccountsClient struct {
	access *edge.ResourceAccess
}

// NewAccountsClient creates a new accounts client
func NewAccountsClient(access *edge.ResourceAccess) *AccountsClient {
	return &AccountsClient{access: access}
}

// List implements edge.AccountsClient.List
func (c *AccountsClient) List(ctx context.Context, opts *edge.ListOptions) (*edge.Page[edge.Account], error) {
	page, err := edge.ListPage[edge.Account](ctx, c.access, "/accounts", opts)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}

	return page, nil
}

// ListAll implements edge.AccountsClient.ListAll
func (c *AccountsClient) ListAll(ctx context.Context, opts *edge.ListOptions) *edge.PageIterator[edge.Account] {
	return edge.NewPageIterator[edge.Account](ctx, c.access, "/accounts", opts)
}

// Get implements edge.AccountsClient.Get
func (c *AccountsClient) Get(ctx context.Context, accountID string) (*edge.Account, error) {
	path := fmt.Sprintf("/accounts/%s", accountID)

	account, err := edge.Get[*edge.Account](ctx, c.access, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	return account, nil
}
