package rufty

import (
	"log/slog"
	"time"

	"github.com/aretw0/rufty/internal/platform"
	"github.com/aretw0/rufty/pkg/adapters/fs"
	"github.com/aretw0/rufty/pkg/core"
	"github.com/aretw0/rufty/pkg/listview"
)

// Version exposes the version of the library.
// See version.go for the implementation using go:embed.

// --- Types ---

// Note is a public alias for the core note.
type Note = core.Note

// MergePolicy is a public alias for the import merge policy.
type MergePolicy = core.MergePolicy

// Merge policies.
const (
	MergeReplace = core.MergeReplace
	MergeAppend  = core.MergeAppend
)

// App is a wired note board with its archive and background runner.
type App = platform.App

// --- Configuration ---

// Option defines a functional option for configuring rufty.
type Option = platform.Option

// WithLogger sets a custom logger. Default is a discarding logger.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithNotes seeds the board with notes.
func WithNotes(notes ...Note) Option {
	return platform.WithNotes(notes...)
}

// WithSerializer registers a codec for an extension (e.g. ".md").
func WithSerializer(ext string, s fs.Serializer) Option {
	return platform.WithSerializer(ext, s)
}

// WithGeometry overrides the row cell geometry used for hit testing.
func WithGeometry(g listview.Geometry) Option {
	return platform.WithGeometry(g)
}

// WithClock sets the clock used to name export files.
func WithClock(clock func() time.Time) Option {
	return platform.WithClock(clock)
}

// WithExportDir sets the directory export files are written to.
func WithExportDir(dir string) Option {
	return platform.WithExportDir(dir)
}

// WithExportFormat sets the default export format ("json", "yaml", "csv").
func WithExportFormat(format string) Option {
	return platform.WithExportFormat(format)
}

// --- Factory ---

// New creates a note board wired to the filesystem archive.
func New(opts ...Option) (*App, error) {
	return platform.New(opts...)
}
