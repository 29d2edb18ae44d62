// Package listview keeps the rendered list consistent with the note store and
// resolves pointer coordinates to rows and row regions.
//
// Nothing here draws. A presentation layer pulls pending changes with
// Binding.Drain after each interaction and redraws what they name.
package listview

import (
	"fmt"
	"sort"

	"github.com/aretw0/rufty/pkg/core"
)

// NoRow marks the absence of a row index in Changes and selection queries.
const NoRow = -1

// Changes is what a presentation layer must do to catch up with the store.
type Changes struct {
	// Reset means every row must be redrawn; Stale is empty in that case.
	Reset bool
	// Stale lists rows whose content changed, ascending.
	Stale []int
	// ClearFields asks for the edit fields to be emptied.
	ClearFields bool
	// LoadFields names the row whose note should fill the edit fields, or NoRow.
	LoadFields int
	// ScrollTo names a row that must be brought into view, or NoRow.
	ScrollTo int
}

// Empty reports whether there is nothing to do.
func (c Changes) Empty() bool {
	return !c.Reset && len(c.Stale) == 0 && !c.ClearFields && c.LoadFields == NoRow && c.ScrollTo == NoRow
}

// Binding mirrors the store's row count and owns the selection.
// It learns about mutations only through Apply, which must be called right
// after every successful store mutation.
type Binding struct {
	rows     int
	selected int

	reset       bool
	stale       map[int]struct{}
	clearFields bool
	loadFields  int
	scrollTo    int
}

// NewBinding creates a binding for a store currently holding rows notes.
func NewBinding(rows int) *Binding {
	b := &Binding{rows: rows, selected: NoRow}
	b.resetPending()
	b.reset = true
	return b
}

// Rows returns the number of rows, which always equals the store count.
func (b *Binding) Rows() int {
	return b.rows
}

// Selected returns the selected row, if any.
func (b *Binding) Selected() (int, bool) {
	return b.selected, b.selected != NoRow
}

// Select selects the row at index and asks for its fields to be loaded.
func (b *Binding) Select(index int) error {
	if index < 0 || index >= b.rows {
		return fmt.Errorf("%w: row %d not in [0, %d)", core.ErrIndex, index, b.rows)
	}
	if b.selected != NoRow && b.selected != index {
		b.markStale(b.selected)
	}
	b.selected = index
	b.loadFields = index
	b.markStale(index)
	return nil
}

// ClearSelection drops the selection.
func (b *Binding) ClearSelection() {
	if b.selected != NoRow {
		b.markStale(b.selected)
	}
	b.selected = NoRow
}

// ScrollTo asks for the row at index to be brought into view.
func (b *Binding) ScrollTo(index int) {
	if index >= 0 && index < b.rows {
		b.scrollTo = index
	}
}

// Apply reconciles rows and selection with a completed store mutation.
func (b *Binding) Apply(c core.Change) {
	switch c.Kind {
	case core.ChangeCreate:
		b.rows++
		b.markStale(b.rows - 1)
	case core.ChangeUpdate, core.ChangeToggle:
		b.markStale(c.Index)
	case core.ChangeDelete:
		b.applyDelete(c.Index)
	case core.ChangeReplace:
		b.rows = c.Count
		b.selected = NoRow
		b.resetPending()
		b.reset = true
		b.clearFields = true
	case core.ChangeAppend:
		start := b.rows
		b.rows += c.Count
		for i := start; i < b.rows; i++ {
			b.markStale(i)
		}
	}
}

func (b *Binding) applyDelete(index int) {
	b.rows--
	switch {
	case b.selected == index:
		b.selected = NoRow
		b.clearFields = true
	case b.selected > index:
		b.selected--
	}
	b.loadFields = shiftAfterDelete(b.loadFields, index)
	b.scrollTo = shiftAfterDelete(b.scrollTo, index)
	// Every row from index on now shows a different note.
	b.reset = true
	b.stale = map[int]struct{}{}
}

func shiftAfterDelete(row, deleted int) int {
	switch {
	case row == NoRow || row == deleted:
		return NoRow
	case row > deleted:
		return row - 1
	default:
		return row
	}
}

// Drain returns the pending changes and forgets them.
func (b *Binding) Drain() Changes {
	c := Changes{
		Reset:       b.reset,
		ClearFields: b.clearFields,
		LoadFields:  b.loadFields,
		ScrollTo:    b.scrollTo,
	}
	if !b.reset {
		for i := range b.stale {
			if i < b.rows {
				c.Stale = append(c.Stale, i)
			}
		}
		sort.Ints(c.Stale)
	}
	b.resetPending()
	return c
}

func (b *Binding) markStale(index int) {
	if b.reset || index < 0 {
		return
	}
	b.stale[index] = struct{}{}
}

func (b *Binding) resetPending() {
	b.reset = false
	b.stale = map[int]struct{}{}
	b.clearFields = false
	b.loadFields = NoRow
	b.scrollTo = NoRow
}

// CounterText renders the note count shown next to the list header.
func CounterText(count int) string {
	return fmt.Sprintf("(%d)", count)
}
