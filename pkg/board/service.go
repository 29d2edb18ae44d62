// Package board pairs the note store with its list binding.
//
// Every mutating call runs the store operation and, only when it succeeds,
// reconciles the binding before returning. Callers never touch the store or
// the binding separately, so row indices and store indices cannot drift.
package board

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/rufty/pkg/core"
	"github.com/aretw0/rufty/pkg/listview"
)

// ErrNoSelection is returned by the *Selected operations when no row is selected.
var ErrNoSelection = fmt.Errorf("%w: no note selected", core.ErrIndex)

// Service is the single entry point for interactive note operations.
// It is not safe for concurrent use.
type Service struct {
	store   *core.Store
	binding *listview.Binding
	logger  *slog.Logger
}

// New creates a Service over store. A nil logger discards output.
func New(store *core.Store, logger *slog.Logger) *Service {
	if store == nil {
		store = core.NewStore()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		store:   store,
		binding: listview.NewBinding(store.Count()),
		logger:  logger,
	}
}

func (s *Service) apply(c core.Change) {
	s.binding.Apply(c)
	s.logger.Debug("board changed", "change", c.String(), "count", s.store.Count())
}

func (s *Service) fail(op string, err error) error {
	s.logger.Warn("board operation rejected", "op", op, "error", err)
	return err
}

// Create appends a note and returns its index. The selection is unchanged.
func (s *Service) Create(title, body string) (int, error) {
	if _, err := s.store.Create(title, body); err != nil {
		return listview.NoRow, s.fail("create", err)
	}
	index := s.store.Count() - 1
	s.apply(core.Change{Kind: core.ChangeCreate, Index: index, Count: 1})
	return index, nil
}

// Update replaces title and body of the note at index.
func (s *Service) Update(index int, title, body string) error {
	if err := s.store.Update(index, title, body); err != nil {
		return s.fail("update", err)
	}
	s.apply(core.Change{Kind: core.ChangeUpdate, Index: index, Count: 1})
	return nil
}

// UpdateSelected updates the selected note.
func (s *Service) UpdateSelected(title, body string) error {
	index, ok := s.binding.Selected()
	if !ok {
		return s.fail("update", ErrNoSelection)
	}
	return s.Update(index, title, body)
}

// Delete removes the note at index.
func (s *Service) Delete(index int) error {
	if err := s.store.Delete(index); err != nil {
		return s.fail("delete", err)
	}
	s.apply(core.Change{Kind: core.ChangeDelete, Index: index, Count: 1})
	return nil
}

// DeleteSelected removes the selected note.
func (s *Service) DeleteSelected() error {
	index, ok := s.binding.Selected()
	if !ok {
		return s.fail("delete", ErrNoSelection)
	}
	return s.Delete(index)
}

// Toggle flips the completed flag of the note at index.
func (s *Service) Toggle(index int) error {
	if err := s.store.ToggleCompleted(index); err != nil {
		return s.fail("toggle", err)
	}
	s.apply(core.Change{Kind: core.ChangeToggle, Index: index, Count: 1})
	return nil
}

// Search finds the first title containing term. On a hit the row is
// selected and scrolled into view; a miss changes nothing.
func (s *Service) Search(term string) (int, bool, error) {
	index, found, err := s.store.Search(term)
	if err != nil {
		return index, false, s.fail("search", err)
	}
	if !found {
		s.logger.Debug("search missed", "term", term)
		return index, false, nil
	}
	if err := s.binding.Select(index); err != nil {
		return index, false, err
	}
	s.binding.ScrollTo(index)
	return index, true, nil
}

// Select selects the row at index.
func (s *Service) Select(index int) error {
	return s.binding.Select(index)
}

// ClearSelection drops the selection.
func (s *Service) ClearSelection() {
	s.binding.ClearSelection()
}

// Selected returns the selected index, if any.
func (s *Service) Selected() (int, bool) {
	return s.binding.Selected()
}

// Import merges notes decoded from an import file.
func (s *Service) Import(notes []core.Note, policy core.MergePolicy) (core.Change, error) {
	c, err := s.store.Merge(notes, policy)
	if err != nil {
		return c, s.fail("import", err)
	}
	s.apply(c)
	s.logger.Info("notes imported", "policy", policy.String(), "count", c.Count)
	return c, nil
}

// ExportSnapshot returns the notes to hand to a background export.
// An empty store yields core.ErrNothingToExport.
func (s *Service) ExportSnapshot() ([]core.Note, error) {
	if s.store.Count() == 0 {
		return nil, s.fail("export", core.ErrNothingToExport)
	}
	return s.store.Notes(), nil
}

// Count returns the number of notes.
func (s *Service) Count() int {
	return s.store.Count()
}

// Note returns the note at index.
func (s *Service) Note(index int) (core.Note, error) {
	return s.store.At(index)
}

// Notes returns a copy of all notes in display order.
func (s *Service) Notes() []core.Note {
	return s.store.Notes()
}

// SelectedNote returns the selected note.
func (s *Service) SelectedNote() (core.Note, error) {
	index, ok := s.binding.Selected()
	if !ok {
		return core.Note{}, ErrNoSelection
	}
	return s.store.At(index)
}

// CounterText is the "(N)" text shown beside the list header.
func (s *Service) CounterText() string {
	return listview.CounterText(s.store.Count())
}

// Drain hands pending list changes to the presentation layer.
func (s *Service) Drain() listview.Changes {
	return s.binding.Drain()
}

// IsNoSelection reports whether err came from an operation that needed a selection.
func IsNoSelection(err error) bool {
	return errors.Is(err, ErrNoSelection)
}
