// Package client implements edge.Client on top of the transport layer.
package client

import (
	"context"
	"fmt"

	"github.com/edgewise-io/edgeapi/pkg/edge"
)

// Client implements the edge.Client interface.
type Client struct {
	access *edge.ResourceAccess

	// Resource clients
	accounts        *AccountsClient
	zones           *ZonesClient
	dnsRecords      *DNSRecordsClient
	customHostnames *CustomHostnamesClient
	rulesets        *RulesetsClient
	kv              *KVClient
	buckets         *BucketsClient
	auditLogs       *AuditLogsClient
}

// New creates a client over the given requester.
func New(requester edge.Requester) *Client {
	access := edge.NewResourceAccess(requester)

	return &Client{
		access:          access,
		accounts:        NewAccountsClient(access),
		zones:           NewZonesClient(access),
		dnsRecords:      NewDNSRecordsClient(access),
		customHostnames: NewCustomHostnamesClient(access),
		rulesets:        NewRulesetsClient(access),
		kv:              NewKVClient(access),
		buckets:         NewBucketsClient(access),
		auditLogs:       NewAuditLogsClient(access),
	}
}

// Accounts implements edge.Client.Accounts
func (c *Client) Accounts() edge.AccountsClient {
	return c.accounts
}

// Zones implements edge.Client.Zones
func (c *Client) Zones() edge.ZonesClient {
	return c.zones
}

// DNSRecords implements edge.Client.DNSRecords
func (c *Client) DNSRecords() edge.DNSRecordsClient {
	return c.dnsRecords
}

// CustomHostnames implements edge.Client.CustomHostnames
func (c *Client) CustomHostnames() edge.CustomHostnamesClient {
	return c.customHostnames
}

// Rulesets implements edge.Client.Rulesets
func (c *Client) Rulesets() edge.RulesetsClient {
	return c.rulesets
}

// KV implements edge.Client.KV
func (c *Client) KV() edge.KVClient {
	return c.kv
}

// Buckets implements edge.Client.Buckets
func (c *Client) Buckets() edge.BucketsClient {
	return c.buckets
}

// AuditLogs implements edge.Client.AuditLogs
func (c *Client) AuditLogs() edge.AuditLogsClient {
	return c.auditLogs
}

// VerifyToken implements edge.Client.VerifyToken
func (c *Client) VerifyToken(ctx context.Context) (*edge.TokenStatus, error) {
	status, err := edge.Get[*edge.TokenStatus](ctx, c.access, "/user/tokens/verify", nil)
	if err != nil {
		return nil, fmt.Errorf("verifying token: %w", err)
	}

	return status, nil
}
