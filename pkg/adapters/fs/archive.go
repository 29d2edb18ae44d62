package fs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/rufty/pkg/core"
)

// DefaultExtension is used when a path has no registered extension.
const DefaultExtension = ".json"

// ExportNameLayout is the timestamp layout of default export file names.
const ExportNameLayout = "20060102_150405"

// Config holds the configuration for the filesystem archive.
type Config struct {
	Logger *slog.Logger
	// DefaultFormat is the extension used for unknown or missing extensions.
	// Empty means DefaultExtension.
	DefaultFormat string
	// FileMode is applied to exported files. Zero means 0644.
	FileMode os.FileMode
}

// Archive implements core.Archive on the local filesystem. The codec is chosen
// by file extension.
type Archive struct {
	config      Config
	mu          sync.RWMutex
	serializers map[string]Serializer

	lastPath string
	lastOp   string
	lastAt   time.Time
}

var _ core.Archive = (*Archive)(nil)

// NewArchive creates an archive with the default serializers registered.
func NewArchive(config Config) *Archive {
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if config.DefaultFormat == "" {
		config.DefaultFormat = DefaultExtension
	}
	if config.FileMode == 0 {
		config.FileMode = 0o644
	}
	return &Archive{
		config:      config,
		serializers: DefaultSerializers(),
	}
}

// RegisterSerializer adds or replaces the codec for an extension (with dot).
func (a *Archive) RegisterSerializer(ext string, s Serializer) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.serializers[strings.ToLower(ext)] = s
}

// Formats lists the registered extensions in sorted order.
func (a *Archive) Formats() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]string, 0, len(a.serializers))
	for ext := range a.serializers {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

func (a *Archive) serializerFor(path string) (Serializer, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	ext := strings.ToLower(filepath.Ext(path))
	if s, ok := a.serializers[ext]; ok {
		return s, nil
	}
	if s, ok := a.serializers[a.config.DefaultFormat]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("no serializer for %q", ext)
}

// Load reads and decodes the notes stored at path. Read failures wrap
// core.ErrIO; undecodable or empty content wraps core.ErrImport.
func (a *Archive) Load(ctx context.Context, path string) ([]core.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s, err := a.serializerFor(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", core.ErrImport, path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrIO, err)
	}

	notes, err := s.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", core.ErrImport, filepath.Base(path), err)
	}
	if len(notes) == 0 {
		return nil, fmt.Errorf("%w in %s", core.ErrNoNotes, filepath.Base(path))
	}

	a.record("load", path)
	a.config.Logger.Debug("archive loaded", "path", path, "notes", len(notes))
	return notes, nil
}

// Save encodes notes and writes them atomically to path. Encode or write
// failures wrap core.ErrIO.
func (a *Archive) Save(ctx context.Context, path string, notes []core.Note) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s, err := a.serializerFor(path)
	if err != nil {
		return fmt.Errorf("%w: %w", core.ErrIO, err)
	}

	data, err := s.Serialize(notes)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", core.ErrIO, filepath.Base(path), err)
	}

	if err := writeFileAtomic(path, data, a.config.FileMode); err != nil {
		return fmt.Errorf("%w: %w", core.ErrIO, err)
	}

	a.record("save", path)
	a.config.Logger.Debug("archive saved", "path", path, "notes", len(notes), "bytes", len(data))
	return nil
}

func (a *Archive) record(op, path string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.lastOp = op
	a.lastPath = path
	a.lastAt = time.Now()
}

// DefaultExportName returns the suggested export file name for the given
// instant, e.g. notes_20240131_235959.json. ext defaults to DefaultExtension.
func DefaultExportName(now time.Time, ext string) string {
	if ext == "" {
		ext = DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return "notes_" + now.Format(ExportNameLayout) + ext
}
