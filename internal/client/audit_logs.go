package client

import (
	"context"
	"fmt"

	"github.com/edgewise-io/edgeapi/pkg/edge"
)

// AuditLogsClient implements edge.AuditLogsClient
type AuditLogsClient struct {
	access *edge.ResourceAccess
}

// NewAuditLogsClient creates a new audit logs client
func NewAuditLogsClient(access *edge.ResourceAccess) *AuditLogsClient {
	return &AuditLogsClient{access: access}
}

// List implements edge.AuditLogsClient.List
func (c *AuditLogsClient) List(ctx context.Context, accountID string, opts *edge.ListOptions) (*edge.CursorPage[edge.AuditLog], error) {
	path := fmt.Sprintf("/accounts/%s/audit_logs", accountID)

	page, err := edge.ListCursorPage[edge.AuditLog](ctx, c.access, path, opts)
	if err != nil {
		return nil, fmt.Errorf("listing audit logs: %w", err)
	}

	return page, nil
}

// ListAll implements edge.AuditLogsClient.ListAll
func (c *AuditLogsClient) ListAll(ctx context.Context, accountID string, opts *edge.ListOptions) *edge.CursorIterator[edge.AuditLog] {
	path := fmt.Sprintf("/accounts/%s/audit_logs", accountID)

	return edge.NewCursorIterator[edge.AuditLog](ctx, c.access, path, opts)
}
