package core

import (
	"fmt"
	"strings"
)

// MergePolicy selects how an imported sequence is reconciled with the store.
type MergePolicy int

const (
	// MergeReplace discards the current sequence and adopts the imported one.
	MergeReplace MergePolicy = iota
	// MergeAppend adds the imported sequence after the current one.
	MergeAppend
)

func (p MergePolicy) String() string {
	switch p {
	case MergeReplace:
		return "replace"
	case MergeAppend:
		return "append"
	default:
		return fmt.Sprintf("MergePolicy(%d)", int(p))
	}
}

// ParseMergePolicy accepts "replace" or "append" in any case.
func ParseMergePolicy(s string) (MergePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "replace":
		return MergeReplace, nil
	case "append":
		return MergeAppend, nil
	default:
		return 0, fmt.Errorf("unknown merge policy %q", s)
	}
}

// ValidateAll reports whether every note of an imported sequence may enter a
// Store. An empty sequence is ErrNoNotes; the first invalid note is reported
// by position, wrapping ErrImport.
func ValidateAll(notes []Note) error {
	if len(notes) == 0 {
		return ErrNoNotes
	}
	for i, n := range notes {
		if err := n.Validate(); err != nil {
			return fmt.Errorf("%w: note %d: %w", ErrImport, i, err)
		}
	}
	return nil
}

// Merge reconciles imported notes with the store under policy.
//
// The import is all-or-nothing: an empty sequence, or any note failing
// validation, returns ErrImport and leaves the store exactly as it was.
// Duplicate titles are accepted.
func (s *Store) Merge(imported []Note, policy MergePolicy) (Change, error) {
	if err := ValidateAll(imported); err != nil {
		return Change{}, err
	}

	incoming := append([]Note(nil), imported...)
	switch policy {
	case MergeReplace:
		s.notes = incoming
		return Change{Kind: ChangeReplace, Count: len(incoming)}, nil
	case MergeAppend:
		start := len(s.notes)
		s.notes = append(s.notes, incoming...)
		return Change{Kind: ChangeAppend, Index: start, Count: len(incoming)}, nil
	default:
		return Change{}, fmt.Errorf("%w: unknown merge policy %v", ErrImport, policy)
	}
}
