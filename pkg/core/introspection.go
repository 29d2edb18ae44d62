package core

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Count     int `json:"count"`
	Completed int `json:"completed"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	done := 0
	for _, n := range s.notes {
		if n.Completed {
			done++
		}
	}
	return StoreState{Count: len(s.notes), Completed: done}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
