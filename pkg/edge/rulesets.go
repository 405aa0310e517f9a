package edge

import "context"

// Ruleset represents an ordered collection of rules evaluated in a phase.
type Ruleset struct {
	Resource

	Name        string        `json:"name"                  yaml:"name"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Kind        string        `json:"kind"                  yaml:"kind"`
	Phase       string        `json:"phase"                 yaml:"phase"`
	Version     string        `json:"version,omitempty"     yaml:"version,omitempty"`
	Rules       []RulesetRule `json:"rules,omitempty"       yaml:"rules,omitempty"`
}

// RulesetRule represents one rule within a ruleset.
type RulesetRule struct {
	ID          string      `json:"id,omitempty"          yaml:"id,omitempty"`
	Action      string      `json:"action"                yaml:"action"`
	Expression  string      `json:"expression"            yaml:"expression"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Enabled     *bool       `json:"enabled,omitempty"     yaml:"enabled,omitempty"`
	Parameters  interface{} `json:"action_parameters,omitempty" yaml:"action_parameters,omitempty"`
}

// RulesetCreateRequest represents a request to create a ruleset.
type RulesetCreateRequest struct {
	Name        string        `json:"name"                  yaml:"name"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Kind        string        `json:"kind"                  yaml:"kind"`
	Phase       string        `json:"phase"                 yaml:"phase"`
	Rules       []RulesetRule `json:"rules,omitempty"       yaml:"rules,omitempty"`
}

// RulesetUpdateRequest replaces a ruleset's rules wholesale; the API
// versions rulesets, so updates go through PUT rather than PATCH.
type RulesetUpdateRequest struct {
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Rules       []RulesetRule `json:"rules"                 yaml:"rules"`
}

// RulesetsClient accesses the per-zone ruleset endpoints.
type RulesetsClient interface {
	List(ctx context.Context, zoneID string, opts *ListOptions) (*Page[Ruleset], error)
	ListAll(ctx context.Context, zoneID string, opts *ListOptions) *PageIterator[Ruleset]
	Get(ctx context.Context, zoneID, rulesetID string) (*Ruleset, error)
	Create(ctx context.Context, zoneID string, request *RulesetCreateRequest) (*Ruleset, error)
	Update(ctx context.Context, zoneID, rulesetID string, request *RulesetUpdateRequest) (*Ruleset, error)
	Delete(ctx context.Context, zoneID, rulesetID string) error
}
