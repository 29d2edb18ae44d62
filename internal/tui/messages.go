package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/rufty/pkg/adapters/lifecycle"
	"github.com/aretw0/rufty/pkg/board"
	"github.com/aretw0/rufty/pkg/core"
)

const (
	msgEnterTitle      = "Please enter a title."
	msgSelectToEdit    = "Please select a note to edit."
	msgSelectToDelete  = "Please select a note to delete."
	msgSelectToCopy    = "Please select a note to copy."
	msgEnterSearchTerm = "Please enter a search term."
	msgNothingToExport = "No notes to export."
	msgNoNotesInFile   = "No valid notes found in file."
	msgBusy            = "Another file operation is still running."
	msgEnterPath       = "Please enter a file path."
	msgImportWaiting   = "Import ready; it opens once this prompt is closed."
)

func noMatchMessage(term string) string {
	return fmt.Sprintf("No task found with title containing '%s'.", strings.TrimSpace(term))
}

func importPrompt(count int) string {
	return fmt.Sprintf("Found %d note(s). Replace existing notes or add to them?", count)
}

// editMessage maps a rejected save or add to the text shown to the user.
func editMessage(err error) string {
	switch {
	case board.IsNoSelection(err):
		return msgSelectToEdit
	case errors.Is(err, core.ErrValidation):
		return msgEnterTitle
	default:
		return err.Error()
	}
}

func deleteMessage(err error) string {
	if board.IsNoSelection(err) {
		return msgSelectToDelete
	}
	return err.Error()
}

func toggleMessage(err error) string {
	if errors.Is(err, core.ErrIndex) {
		return "That note no longer exists."
	}
	return err.Error()
}

func searchMessage(err error) string {
	if errors.Is(err, core.ErrValidation) {
		return msgEnterSearchTerm
	}
	return err.Error()
}

// taskMessage describes the outcome of a background file operation.
func taskMessage(res lifecycle.Result) string {
	switch res.Op {
	case lifecycle.OpExport:
		if res.Err != nil {
			return "Error exporting notes: " + res.Err.Error()
		}
		return fmt.Sprintf("Exported %d note(s) to %s.", res.Count, res.Path)
	default:
		if errors.Is(res.Err, core.ErrNoNotes) {
			return msgNoNotesInFile
		}
		if res.Err != nil {
			return "Error importing notes: " + res.Err.Error()
		}
		return importPrompt(res.Count)
	}
}

func mergeMessage(policy core.MergePolicy, change core.Change, err error) string {
	if errors.Is(err, core.ErrNoNotes) {
		return msgNoNotesInFile
	}
	if err != nil {
		return "Error importing notes: " + err.Error()
	}
	if policy == core.MergeReplace {
		return fmt.Sprintf("Replaced notes with %d imported note(s).", change.Count)
	}
	return fmt.Sprintf("Added %d imported note(s).", change.Count)
}
