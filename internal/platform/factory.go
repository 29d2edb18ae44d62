package platform

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"github.com/aretw0/rufty/pkg/adapters/fs"
	"github.com/aretw0/rufty/pkg/adapters/lifecycle"
	"github.com/aretw0/rufty/pkg/board"
	"github.com/aretw0/rufty/pkg/core"
	"github.com/aretw0/rufty/pkg/listview"
)

// App is a fully wired note board with its archive and background runner.
type App struct {
	Board    *board.Service
	Archive  *fs.Archive
	Runner   *lifecycle.Runner
	Export   *lifecycle.Control
	Import   *lifecycle.Control
	Geometry listview.Geometry
	Logger   *slog.Logger

	clock        func() time.Time
	exportDir    string
	exportFormat string
}

// New wires an App from options.
//
//	app, err := platform.New(platform.WithLogger(logger), platform.WithExportFormat("yaml"))
func New(opts ...Option) (*App, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	format := normalizeExt(o.exportFormat)
	archive := fs.NewArchive(fs.Config{Logger: logger.With("component", "archive"), DefaultFormat: format})
	for ext, s := range o.serializers {
		archive.RegisterSerializer(normalizeExt(ext), s)
	}
	if !slices.Contains(archive.Formats(), format) {
		return nil, fmt.Errorf("unsupported export format %q (have %v)", o.exportFormat, archive.Formats())
	}

	dir, err := ResolveExportDir(o.exportDir)
	if err != nil {
		return nil, err
	}

	store := core.NewStore()
	if len(o.notes) > 0 {
		if _, err := store.Merge(o.notes, core.MergeReplace); err != nil {
			return nil, err
		}
	}

	return &App{
		Board:        board.New(store, logger.With("component", "board")),
		Archive:      archive,
		Runner:       lifecycle.NewRunner(archive, logger.With("component", "tasks")),
		Export:       lifecycle.NewControl("export", "Export"),
		Import:       lifecycle.NewControl("import", "Import"),
		Geometry:     o.geometry,
		Logger:       logger,
		clock:        o.clock,
		exportDir:    dir,
		exportFormat: format,
	}, nil
}

// ExportPath is the suggested path of a new export.
func (a *App) ExportPath() string {
	return filepath.Join(a.exportDir, fs.DefaultExportName(a.clock(), a.exportFormat))
}

// ExportDir is the directory relative import and export paths resolve against.
func (a *App) ExportDir() string {
	return a.exportDir
}

// ResolvePath makes a user-typed path absolute relative to the export directory.
func (a *App) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(a.exportDir, p)
}
