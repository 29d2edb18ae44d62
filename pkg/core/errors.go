package core

import (
	"errors"
	"fmt"
)

// Common errors.
//
// Operations wrap one of these sentinels with context, so callers should match
// with errors.Is rather than comparing messages.
var (
	// ErrValidation reports an empty or blank required field.
	ErrValidation = errors.New("validation failed")

	// ErrIndex reports a position outside [0, count).
	ErrIndex = errors.New("index out of range")

	// ErrImport reports a malformed import payload or one holding invalid notes.
	ErrImport = errors.New("import rejected")

	// ErrIO reports a failure to read or write an import/export file.
	ErrIO = errors.New("file access failed")

	// ErrNoNotes is returned when an import payload holds no notes at all.
	ErrNoNotes = fmt.Errorf("%w: no valid notes found", ErrImport)

	// ErrNothingToExport is returned when exporting an empty store.
	ErrNothingToExport = fmt.Errorf("%w: no notes to export", ErrValidation)
)
