package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// ArchiveState exposes internal state for observability.
type ArchiveState struct {
	DefaultFormat string     `json:"default_format"`
	Serializers   []string   `json:"serializers"`
	LastOp        string     `json:"last_op,omitempty"`
	LastPath      string     `json:"last_path,omitempty"`
	LastAt        *time.Time `json:"last_at,omitempty"`
}

// State implements introspection.Introspectable.
func (a *Archive) State() any {
	formats := a.Formats()

	a.mu.RLock()
	defer a.mu.RUnlock()

	st := ArchiveState{
		DefaultFormat: a.config.DefaultFormat,
		Serializers:   formats,
		LastOp:        a.lastOp,
		LastPath:      a.lastPath,
	}
	if !a.lastAt.IsZero() {
		at := a.lastAt
		st.LastAt = &at
	}
	return st
}

// ComponentType implements introspection.Component.
func (a *Archive) ComponentType() string {
	return "archive"
}

var _ introspection.Introspectable = (*Archive)(nil)
var _ introspection.Component = (*Archive)(nil)
