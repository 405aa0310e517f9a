package edge

import "context"

// Zone represents a DNS zone attached to an account.
type Zone struct {
	Resource

	Name                string       `json:"name"                            yaml:"name"`
	Status              string       `json:"status"                          yaml:"status"`
	Paused              bool         `json:"paused"                          yaml:"paused"`
	Type                string       `json:"type,omitempty"                  yaml:"type,omitempty"`
	NameServers         []string     `json:"name_servers,omitempty"          yaml:"name_servers,omitempty"`
	OriginalNameServers []string     `json:"original_name_servers,omitempty" yaml:"original_name_servers,omitempty"`
	Account             *ZoneAccount `json:"account,omitempty"               yaml:"account,omitempty"`
}

// ZoneAccount identifies the account owning a zone.
type ZoneAccount struct {
	ID   string `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// ZoneCreateRequest represents a request to create a zone.
type ZoneCreateRequest struct {
	// Name is the zone apex, e.g. "example.com".
	Name string `json:"name" yaml:"name"`
	// Account must identify the owning account.
	Account ZoneAccount `json:"account" yaml:"account"`
	// Type selects "full" or "partial" setup; empty uses the API default.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// ZonePurgeRequest represents a cache purge action. Set PurgeEverything
// or supply specific files; the two are mutually exclusive.
type ZonePurgeRequest struct {
	PurgeEverything bool     `json:"purge_everything,omitempty" yaml:"purge_everything,omitempty"`
	Files           []string `json:"files,omitempty"            yaml:"files,omitempty"`
}

// ZonesClient accesses the zone endpoints.
type ZonesClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Zone], error)
	ListAll(ctx context.Context, opts *ListOptions) *PageIterator[Zone]
	Get(ctx context.Context, zoneID string) (*Zone, error)
	Create(ctx context.Context, request *ZoneCreateRequest) (*Zone, error)
	Delete(ctx context.Context, zoneID string) (*Resource, error)
	PurgeCache(ctx context.Context, zoneID string, request *ZonePurgeRequest) (*Resource, error)
}
