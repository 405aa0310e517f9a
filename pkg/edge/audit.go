package edge

import (
	"context"
	"time"
)

// AuditLog represents one entry in an account's audit trail.
type AuditLog struct {
	ID       string            `json:"id"                 yaml:"id"`
	Action   AuditLogAction    `json:"action"             yaml:"action"`
	Actor    AuditLogActor     `json:"actor"              yaml:"actor"`
	Resource AuditLogResource  `json:"resource"           yaml:"resource"`
	When     time.Time         `json:"when"               yaml:"when"`
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// AuditLogAction describes what was done.
type AuditLogAction struct {
	Type   string `json:"type"   yaml:"type"`
	Result bool   `json:"result" yaml:"result"`
}

// AuditLogActor describes who did it.
type AuditLogActor struct {
	ID    string `json:"id"              yaml:"id"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
	Type  string `json:"type"            yaml:"type"`
	IP    string `json:"ip,omitempty"    yaml:"ip,omitempty"`
}

// AuditLogResource describes what it was done to.
type AuditLogResource struct {
	Type string `json:"type" yaml:"type"`
	ID   string `json:"id"   yaml:"id"`
}

// AuditLogsClient accesses the per-account audit trail. The listing is
// cursor-paginated.
type AuditLogsClient interface {
	List(ctx context.Context, accountID string, opts *ListOptions) (*CursorPage[AuditLog], error)
	ListAll(ctx context.Context, accountID string, opts *ListOptions) *CursorIterator[AuditLog]
}
