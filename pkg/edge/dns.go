package edge

import "context"

// DNSRecord represents a record within a zone.
type DNSRecord struct {
	Resource

	ZoneID    string   `json:"zone_id,omitempty"  yaml:"zone_id,omitempty"`
	Type      string   `json:"type"               yaml:"type"`
	Name      string   `json:"name"               yaml:"name"`
	Content   string   `json:"content"            yaml:"content"`
	TTL       int      `json:"ttl"                yaml:"ttl"`
	Proxied   *bool    `json:"proxied,omitempty"  yaml:"proxied,omitempty"`
	Priority  *int     `json:"priority,omitempty" yaml:"priority,omitempty"`
	Comment   string   `json:"comment,omitempty"  yaml:"comment,omitempty"`
	Tags      []string `json:"tags,omitempty"     yaml:"tags,omitempty"`
	Proxiable bool     `json:"proxiable"          yaml:"proxiable"`
}

// DNSRecordCreateRequest represents a request to create a record.
type DNSRecordCreateRequest struct {
	Type    string `json:"type"    yaml:"type"`
	Name    string `json:"name"    yaml:"name"`
	Content string `json:"content" yaml:"content"`
	// TTL in seconds; 1 means automatic.
	TTL      int      `json:"ttl,omitempty"      yaml:"ttl,omitempty"`
	Proxied  *bool    `json:"proxied,omitempty"  yaml:"proxied,omitempty"`
	Priority *int     `json:"priority,omitempty" yaml:"priority,omitempty"`
	Comment  string   `json:"comment,omitempty"  yaml:"comment,omitempty"`
	Tags     []string `json:"tags,omitempty"     yaml:"tags,omitempty"`
}

// DNSRecordUpdateRequest represents a partial update; nil fields are left
// unchanged.
type DNSRecordUpdateRequest struct {
	Type     *string  `json:"type,omitempty"     yaml:"type,omitempty"`
	Name     *string  `json:"name,omitempty"     yaml:"name,omitempty"`
	Content  *string  `json:"content,omitempty"  yaml:"content,omitempty"`
	TTL      *int     `json:"ttl,omitempty"      yaml:"ttl,omitempty"`
	Proxied  *bool    `json:"proxied,omitempty"  yaml:"proxied,omitempty"`
	Priority *int     `json:"priority,omitempty" yaml:"priority,omitempty"`
	Comment  *string  `json:"comment,omitempty"  yaml:"comment,omitempty"`
	Tags     []string `json:"tags,omitempty"     yaml:"tags,omitempty"`
}

// DNSRecordsClient accesses the per-zone record endpoints.
type DNSRecordsClient interface {
	List(ctx context.Context, zoneID string, opts *ListOptions) (*Page[DNSRecord], error)
	ListAll(ctx context.Context, zoneID string, opts *ListOptions) *PageIterator[DNSRecord]
	Get(ctx context.Context, zoneID, recordID string) (*DNSRecord, error)
	Create(ctx context.Context, zoneID string, request *DNSRecordCreateRequest) (*DNSRecord, error)
	Update(ctx context.Context, zoneID, recordID string, request *DNSRecordUpdateRequest) (*DNSRecord, error)
	Delete(ctx context.Context, zoneID, recordID string) (*Resource, error)
}
