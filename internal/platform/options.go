package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/rufty/pkg/adapters/fs"
	"github.com/aretw0/rufty/pkg/core"
	"github.com/aretw0/rufty/pkg/listview"
)

// options holds the internal configuration for a rufty application.
type options struct {
	logger       *slog.Logger
	notes        []core.Note
	serializers  map[string]fs.Serializer
	geometry     listview.Geometry
	clock        func() time.Time
	exportDir    string
	exportFormat string
}

// Option defines a functional option for configuring the application.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		serializers:  make(map[string]fs.Serializer),
		geometry:     listview.CellGeometry,
		clock:        time.Now,
		exportDir:    ".",
		exportFormat: fs.DefaultExtension,
	}
}

// WithLogger sets the logger shared by every component.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithNotes preloads the store. The notes go through the same validation as
// an import with the Replace policy.
func WithNotes(notes ...core.Note) Option {
	return func(o *options) {
		o.notes = append([]core.Note(nil), notes...)
	}
}

// WithSerializer registers a codec for an extension (e.g. ".toml").
func WithSerializer(ext string, s fs.Serializer) Option {
	return func(o *options) {
		o.serializers[ext] = s
	}
}

// WithGeometry sets the checkbox geometry used for hit testing.
// Defaults to listview.CellGeometry.
func WithGeometry(g listview.Geometry) Option {
	return func(o *options) {
		o.geometry = g
	}
}

// WithClock replaces time.Now when naming export files.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithExportDir sets the directory default export names are placed in.
func WithExportDir(dir string) Option {
	return func(o *options) {
		o.exportDir = dir
	}
}

// WithExportFormat sets the extension of default export names ("json", ".yaml", ...).
func WithExportFormat(format string) Option {
	return func(o *options) {
		o.exportFormat = format
	}
}
