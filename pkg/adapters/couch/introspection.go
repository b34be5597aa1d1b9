package couch

import (
	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	BaseURL    string `json:"base_url"` // password redacted
	Database   string `json:"database"`
	ReadOnly   bool   `json:"read_only"`
	AutoInit   bool   `json:"auto_init"`
	Requests   int    `json:"requests"`
	LastStatus int    `json:"last_status,omitempty"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return RepositoryState{
		BaseURL:    r.base.Redacted(),
		Database:   r.config.Database,
		ReadOnly:   r.config.ReadOnly,
		AutoInit:   r.config.AutoInit,
		Requests:   r.requests,
		LastStatus: r.lastStatus,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "couch"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
