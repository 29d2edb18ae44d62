package core

import "context"

// Archive defines the contract for moving whole note sequences in and out of
// the application, e.g. export files.
// Adhering to this interface keeps the core independent of file formats.
type Archive interface {
	// Load reads and decodes the sequence stored at path.
	// Decoding problems are reported as ErrImport, access problems as ErrIO.
	Load(ctx context.Context, path string) ([]Note, error)

	// Save encodes notes and writes them to path, replacing any existing file.
	Save(ctx context.Context, path string, notes []Note) error
}
