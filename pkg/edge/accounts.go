package edge

import "context"

// Account represents an account the caller has access to.
type Account struct {
	Resource

	Name     string           `json:"name"               yaml:"name"`
	Type     string           `json:"type,omitempty"     yaml:"type,omitempty"`
	Settings *AccountSettings `json:"settings,omitempty" yaml:"settings,omitempty"`
}

// AccountSettings holds account-level flags.
type AccountSettings struct {
	EnforceTwoFactor bool `json:"enforce_twofactor" yaml:"enforce_twofactor"`
}

// AccountsClient accesses the account endpoints.
type AccountsClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Account], error)
	ListAll(ctx context.Context, opts *ListOptions) *PageIterator[Account]
	Get(ctx context.Context, accountID string) (*Account, error)
}
