package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/rufty/pkg/core"
)

func TestBinding_NewStartsWithReset(t *testing.T) {
	b := NewBinding(2)
	assert.Equal(t, 2, b.Rows())
	_, ok := b.Selected()
	assert.False(t, ok)

	c := b.Drain()
	assert.True(t, c.Reset)
	assert.True(t, b.Drain().Empty())
}

func TestBinding_CreateKeepsSelection(t *testing.T) {
	b := NewBinding(2)
	require.NoError(t, b.Select(1))
	b.Drain()

	b.Apply(core.Change{Kind: core.ChangeCreate, Index: 2})
	assert.Equal(t, 3, b.Rows())
	sel, ok := b.Selected()
	assert.True(t, ok)
	assert.Equal(t, 1, sel)

	c := b.Drain()
	assert.Equal(t, []int{2}, c.Stale)
	assert.False(t, c.ClearFields)
}

func TestBinding_UpdateAndToggleMarkStale(t *testing.T) {
	b := NewBinding(3)
	b.Drain()

	b.Apply(core.Change{Kind: core.ChangeUpdate, Index: 2})
	b.Apply(core.Change{Kind: core.ChangeToggle, Index: 0})
	assert.Equal(t, 3, b.Rows())

	c := b.Drain()
	assert.Equal(t, []int{0, 2}, c.Stale)
	assert.False(t, c.Reset)
}

func TestBinding_DeleteSelectedClearsFields(t *testing.T) {
	b := NewBinding(3)
	require.NoError(t, b.Select(1))
	b.Drain()

	b.Apply(core.Change{Kind: core.ChangeDelete, Index: 1})
	_, ok := b.Selected()
	assert.False(t, ok)

	c := b.Drain()
	assert.True(t, c.ClearFields)
	assert.True(t, c.Reset)
	assert.Equal(t, 2, b.Rows())
}

func TestBinding_DeleteBeforeSelectionFollowsNote(t *testing.T) {
	b := NewBinding(3)
	require.NoError(t, b.Select(2))

	b.Apply(core.Change{Kind: core.ChangeDelete, Index: 0})
	sel, ok := b.Selected()
	require.True(t, ok)
	assert.Equal(t, 1, sel)

	c := b.Drain()
	assert.Equal(t, 1, c.LoadFields, "pending load follows the note")
	assert.False(t, c.ClearFields)
}

func TestBinding_DeleteAfterSelectionKeepsIndex(t *testing.T) {
	b := NewBinding(3)
	require.NoError(t, b.Select(0))
	b.Apply(core.Change{Kind: core.ChangeDelete, Index: 2})

	sel, _ := b.Selected()
	assert.Equal(t, 0, sel)
}

func TestBinding_ReplaceClearsSelection(t *testing.T) {
	b := NewBinding(1)
	require.NoError(t, b.Select(0))
	b.Drain()

	b.Apply(core.Change{Kind: core.ChangeReplace, Count: 4})
	assert.Equal(t, 4, b.Rows())
	_, ok := b.Selected()
	assert.False(t, ok)

	c := b.Drain()
	assert.True(t, c.Reset)
	assert.True(t, c.ClearFields)
}

func TestBinding_AppendKeepsSelection(t *testing.T) {
	b := NewBinding(1)
	require.NoError(t, b.Select(0))
	b.Drain()

	b.Apply(core.Change{Kind: core.ChangeAppend, Index: 1, Count: 2})
	assert.Equal(t, 3, b.Rows())
	sel, ok := b.Selected()
	assert.True(t, ok)
	assert.Equal(t, 0, sel)
	assert.Equal(t, []int{1, 2}, b.Drain().Stale)
}

func TestBinding_SelectOutOfRange(t *testing.T) {
	b := NewBinding(2)
	assert.ErrorIs(t, b.Select(2), core.ErrIndex)
	assert.ErrorIs(t, b.Select(-1), core.ErrIndex)
	_, ok := b.Selected()
	assert.False(t, ok)
}

func TestBinding_SelectSignalsLoad(t *testing.T) {
	b := NewBinding(3)
	b.Drain()

	require.NoError(t, b.Select(0))
	require.NoError(t, b.Select(2))
	c := b.Drain()
	assert.Equal(t, 2, c.LoadFields)
	assert.Equal(t, []int{0, 2}, c.Stale, "old and new selection are redrawn")
	assert.Equal(t, NoRow, c.ScrollTo)
}

func TestBinding_ClearSelection(t *testing.T) {
	b := NewBinding(2)
	require.NoError(t, b.Select(1))
	b.ClearSelection()
	_, ok := b.Selected()
	assert.False(t, ok)
}

func TestBinding_ScrollTo(t *testing.T) {
	b := NewBinding(2)
	b.Drain()

	b.ScrollTo(5)
	assert.Equal(t, NoRow, b.Drain().ScrollTo)

	b.ScrollTo(1)
	assert.Equal(t, 1, b.Drain().ScrollTo)
}

func TestCounterText(t *testing.T) {
	assert.Equal(t, "(0)", CounterText(0))
	assert.Equal(t, "(12)", CounterText(12))
}

func TestBinding_State(t *testing.T) {
	b := NewBinding(2)
	b.Drain()
	require.NoError(t, b.Select(1))
	assert.Equal(t, BindingState{Rows: 2, Selected: 1, Pending: true}, b.State())
	assert.Equal(t, "binding", b.ComponentType())
}
