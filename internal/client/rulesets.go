package client

import (
	"context"
	"fmt"

	"github.com/edgewise-io/edgeapi/pkg/edge"
)

// RulesetsClient implements edge.RulesetsClient
type RulesetsClient struct {
	access *edge.ResourceAccess
}

// NewRulesetsClient creates a new rulesets client
func NewRulesetsClient(access *edge.ResourceAccess) *RulesetsClient {
	return &RulesetsClient{access: access}
}

// List implements edge.RulesetsClient.List
func (c *RulesetsClient) List(ctx context.Context, zoneID string, opts *edge.ListOptions) (*edge.Page[edge.Ruleset], error) {
	path := fmt.Sprintf("/zones/%s/rulesets", zoneID)

	page, err := edge.ListPage[edge.Ruleset](ctx, c.access, path, opts)
	if err != nil {
		return nil, fmt.Errorf("listing rulesets: %w", err)
	}

	return page, nil
}

// ListAll implements edge.RulesetsClient.ListAll
func (c *RulesetsClient) ListAll(ctx context.Context, zoneID string, opts *edge.ListOptions) *edge.PageIterator[edge.Ruleset] {
	path := fmt.Sprintf("/zones/%s/rulesets", zoneID)

	return edge.NewPageIterator[edge.Ruleset](ctx, c.access, path, opts)
}

// Get implements edge.RulesetsClient.Get
func (c *RulesetsClient) Get(ctx context.Context, zoneID, rulesetID string) (*edge.Ruleset, error) {
	path := fmt.Sprintf("/zones/%s/rulesets/%s", zoneID, rulesetID)

	ruleset, err := edge.Get[*edge.Ruleset](ctx, c.access, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting ruleset: %w", err)
	}

	return ruleset, nil
}

// Create implements edge.RulesetsClient.Create
func (c *RulesetsClient) Create(ctx context.Context, zoneID string, request *edge.RulesetCreateRequest) (*edge.Ruleset, error) {
	path := fmt.Sprintf("/zones/%s/rulesets", zoneID)

	ruleset, err := edge.Post[*edge.Ruleset](ctx, c.access, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating ruleset: %w", err)
	}

	return ruleset, nil
}

// Update implements edge.RulesetsClient.Update. The rules list replaces the
// ruleset's previous rules wholesale.
func (c *RulesetsClient) Update(ctx context.Context, zoneID, rulesetID string, request *edge.RulesetUpdateRequest) (*edge.Ruleset, error) {
	path := fmt.Sprintf("/zones/%s/rulesets/%s", zoneID, rulesetID)

	ruleset, err := edge.Put[*edge.Ruleset](ctx, c.access, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating ruleset: %w", err)
	}

	return ruleset, nil
}

// Delete implements edge.RulesetsClient.Delete
func (c *RulesetsClient) Delete(ctx context.Context, zoneID, rulesetID string) error {
	path := fmt.Sprintf("/zones/%s/rulesets/%s", zoneID, rulesetID)

	_, err := edge.Delete[*edge.Resource](ctx, c.access, path)
	if err != nil {
		return fmt.Errorf("deleting ruleset: %w", err)
	}

	return nil
}
