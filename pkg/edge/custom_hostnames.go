package edge

import "context"

// CustomHostname represents a customer-vanity hostname attached to a zone.
type CustomHostname struct {
	Resource

	Hostname           string             `json:"hostname"                       yaml:"hostname"`
	Status             string             `json:"status,omitempty"               yaml:"status,omitempty"`
	CustomOriginServer string             `json:"custom_origin_server,omitempty" yaml:"custom_origin_server,omitempty"`
	SSL                *CustomHostnameSSL `json:"ssl,omitempty"                  yaml:"ssl,omitempty"`
	VerificationErrors []string           `json:"verification_errors,omitempty"  yaml:"verification_errors,omitempty"`
}

// CustomHostnameSSL holds the certificate state for a custom hostname.
type CustomHostnameSSL struct {
	Status       string `json:"status,omitempty"        yaml:"status,omitempty"`
	Method       string `json:"method,omitempty"        yaml:"method,omitempty"`
	Type         string `json:"type,omitempty"          yaml:"type,omitempty"`
	Wildcard     *bool  `json:"wildcard,omitempty"      yaml:"wildcard,omitempty"`
	CertAuth     string `json:"certificate_authority,omitempty" yaml:"certificate_authority,omitempty"`
	BundleMethod string `json:"bundle_method,omitempty" yaml:"bundle_method,omitempty"`
}

// CustomHostnameCreateRequest represents a request to attach a hostname.
type CustomHostnameCreateRequest struct {
	Hostname string             `json:"hostname"      yaml:"hostname"`
	SSL      *CustomHostnameSSL `json:"ssl,omitempty" yaml:"ssl,omitempty"`
}

// CustomHostnamesClient accesses the per-zone custom hostname endpoints.
// The listing is cursor-paginated, and the endpoint is known to repeat
// items across pages when hostnames churn during enumeration, so ListAll
// suppresses duplicate IDs.
type CustomHostnamesClient interface {
	List(ctx context.Context, zoneID string, opts *ListOptions) (*CursorPage[CustomHostname], error)
	ListAll(ctx context.Context, zoneID string, opts *ListOptions) *CursorIterator[CustomHostname]
	Get(ctx context.Context, zoneID, hostnameID string) (*CustomHostname, error)
	Create(ctx context.Context, zoneID string, request *CustomHostnameCreateRequest) (*CustomHostname, error)
	Delete(ctx context.Context, zoneID, hostnameID string) (*Resource, error)
}
