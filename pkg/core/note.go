// Package core holds the note domain: the Note value, the ordered Store that owns
// every note, and the merge rules applied when importing a note sequence.
package core

import (
	"fmt"
	"strings"
)

// Note is the central entity of the domain.
// It has no identity of its own: a note is addressed by its position in the Store.
type Note struct {
	Title     string
	Body      string
	Completed bool
}

// Validate reports whether the note may live in a Store.
func (n Note) Validate() error {
	return validateTitle(n.Title)
}

// String returns the title, which is what list rows display.
func (n Note) String() string {
	return n.Title
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	return nil
}
