package lifecycle

import (
	"sync"

	"github.com/aretw0/introspection"
)

// Control is the enabled/disabled flag of a control that triggers a
// background task. Begin disables it and Complete re-enables it once, whatever
// the task outcome was.
type Control struct {
	mu    sync.Mutex
	name  string
	idle  string
	label string
	busy  bool
}

// NewControl creates an enabled control showing idle as its label.
func NewControl(name, idle string) *Control {
	return &Control{name: name, idle: idle, label: idle}
}

// Begin disables the control and shows progress. It reports false, and
// changes nothing, while a previous task is still running.
func (c *Control) Begin(progress string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return false
	}
	c.busy = true
	c.label = progress
	return true
}

// Complete re-enables the control and restores its label. It reports whether
// the control was busy.
func (c *Control) Complete() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.busy {
		return false
	}
	c.busy = false
	c.label = c.idle
	return true
}

// Enabled reports whether the control accepts a new task.
func (c *Control) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.busy
}

// Label is the text currently shown on the control.
func (c *Control) Label() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.label
}

// ControlState exposes internal state for observability.
type ControlState struct {
	Name    string `json:"name"`
	Label   string `json:"label"`
	Enabled bool   `json:"enabled"`
}

// State implements introspection.Introspectable.
func (c *Control) State() any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ControlState{Name: c.name, Label: c.label, Enabled: !c.busy}
}

// ComponentType implements introspection.Component.
func (c *Control) ComponentType() string {
	return "control"
}

var _ introspection.Introspectable = (*Control)(nil)
var _ introspection.Component = (*Control)(nil)
