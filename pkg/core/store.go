package core

import (
	"fmt"
	"strings"
	"unicode"
)

// Store owns the ordered sequence of notes.
// Insertion order is display order; an index is a position, not an identifier,
// so it must not be cached across mutations.
//
// Store is not safe for concurrent use. Every mutation is expected to come from
// the single interactive sequence that also reconciles the list binding.
type Store struct {
	notes []Note
}

// NewStore creates a store holding a copy of the given notes.
// The notes are not validated; use Merge to admit untrusted input.
func NewStore(notes ...Note) *Store {
	return &Store{notes: append([]Note(nil), notes...)}
}

// Count returns the number of notes.
func (s *Store) Count() int {
	return len(s.notes)
}

// At returns the note at index.
func (s *Store) At(index int) (Note, error) {
	if err := s.checkIndex(index); err != nil {
		return Note{}, err
	}
	return s.notes[index], nil
}

// Notes returns a copy of the whole sequence in store order.
func (s *Store) Notes() []Note {
	return append([]Note(nil), s.notes...)
}

// Create appends a new, not completed note and returns it.
func (s *Store) Create(title, body string) (Note, error) {
	if err := validateTitle(title); err != nil {
		return Note{}, err
	}
	n := Note{Title: title, Body: body}
	s.notes = append(s.notes, n)
	return n, nil
}

// Update replaces title and body of the note at index. Completed is untouched.
func (s *Store) Update(index int, title, body string) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	if err := validateTitle(title); err != nil {
		return err
	}
	s.notes[index].Title = title
	s.notes[index].Body = body
	return nil
}

// Delete removes the note at index. Every later note moves down by one.
func (s *Store) Delete(index int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.notes = append(s.notes[:index], s.notes[index+1:]...)
	return nil
}

// ToggleCompleted flips the completed flag of the note at index.
func (s *Store) ToggleCompleted(index int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.notes[index].Completed = !s.notes[index].Completed
	return nil
}

// Search returns the first index whose title contains term, ignoring case.
// The term is trimmed first and must not be blank. found is false when no
// title matches.
func (s *Store) Search(term string) (index int, found bool, err error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return -1, false, fmt.Errorf("%w: search term is required", ErrValidation)
	}
	needle := foldCase(term)
	for i, n := range s.notes {
		if strings.Contains(foldCase(n.Title), needle) {
			return i, true, nil
		}
	}
	return -1, false, nil
}

// foldCase upper-cases rune by rune with simple mappings only, so "İ" and the
// Kelvin sign keep their identity instead of folding onto "i" and "k".
func foldCase(s string) string {
	return strings.Map(unicode.ToUpper, s)
}

func (s *Store) checkIndex(index int) error {
	if index < 0 || index >= len(s.notes) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndex, index, len(s.notes))
	}
	return nil
}
