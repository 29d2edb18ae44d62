package listview

import (
	"github.com/aretw0/introspection"
)

// BindingState exposes internal state for observability.
type BindingState struct {
	Rows     int  `json:"rows"`
	Selected int  `json:"selected"`
	Pending  bool `json:"pending"`
}

// State implements introspection.Introspectable.
func (b *Binding) State() any {
	pending := b.reset || len(b.stale) > 0 || b.clearFields || b.loadFields != NoRow || b.scrollTo != NoRow
	return BindingState{Rows: b.rows, Selected: b.selected, Pending: pending}
}

// ComponentType implements introspection.Component.
func (b *Binding) ComponentType() string {
	return "binding"
}

var _ introspection.Introspectable = (*Binding)(nil)
var _ introspection.Component = (*Binding)(nil)
