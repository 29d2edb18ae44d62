package board

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Store   any `json:"store"`
	Binding any `json:"binding"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	return ServiceState{
		Store:   s.store.State(),
		Binding: s.binding.State(),
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "board"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
