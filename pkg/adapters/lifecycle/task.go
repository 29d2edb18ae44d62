// Package lifecycle runs archive I/O off the interactive sequence.
//
// Tasks never see the live store: an export receives a snapshot, an import
// hands back decoded notes for the caller to merge. Each task delivers exactly
// one Result on its channel, including when the work panics.
package lifecycle

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"sync"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/rufty/pkg/core"
)

// Op names a background operation.
type Op string

const (
	OpExport Op = "export"
	OpImport Op = "import"
)

// Result is the outcome of a background task.
type Result struct {
	Op   Op
	Path string
	// Notes holds the decoded notes of a successful import.
	Notes []core.Note
	// Count is the number of notes written or read.
	Count int
	Err   error
}

func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s %s: %v", r.Op, r.Path, r.Err)
	}
	return fmt.Sprintf("%s %s: %d note(s)", r.Op, r.Path, r.Count)
}

// Runner starts archive tasks.
type Runner struct {
	archive core.Archive
	logger  *slog.Logger
}

// NewRunner creates a Runner over the given archive.
func NewRunner(archive core.Archive, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{archive: archive, logger: logger}
}

// Export writes a copy of snapshot to path in the background.
func (r *Runner) Export(ctx context.Context, path string, snapshot []core.Note) <-chan Result {
	notes := append([]core.Note(nil), snapshot...)
	return r.run(ctx, OpExport, path, func(ctx context.Context) Result {
		err := r.archive.Save(ctx, path, notes)
		return Result{Count: len(notes), Err: err}
	})
}

// Import reads and decodes path in the background.
func (r *Runner) Import(ctx context.Context, path string) <-chan Result {
	return r.run(ctx, OpImport, path, func(ctx context.Context) Result {
		notes, err := r.archive.Load(ctx, path)
		return Result{Notes: notes, Count: len(notes), Err: err}
	})
}

func (r *Runner) run(ctx context.Context, op Op, path string, work func(context.Context) Result) <-chan Result {
	out := make(chan Result, 1)
	var once sync.Once
	deliver := func(res Result) {
		once.Do(func() {
			res.Op, res.Path = op, path
			out <- res
			close(out)
		})
	}

	r.logger.Debug("task started", "op", op, "path", path)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%w: %s panicked: %v", core.ErrIO, op, recovered)
				if r.logger.Enabled(ctx, slog.LevelDebug) {
					r.logger.Error("task panic", "op", op, "error", err, "stack", string(debug.Stack()))
				} else {
					r.logger.Error("task panic", "op", op, "error", err)
				}
				deliver(Result{Err: err})
			}
		}()

		res := work(ctx)
		if res.Err != nil {
			r.logger.Warn("task failed", "op", op, "path", path, "error", res.Err)
		} else {
			r.logger.Debug("task finished", "op", op, "path", path, "count", res.Count)
		}
		deliver(res)
		return nil
	}, lifecycle.WithErrorHandler(func(err error) {
		r.logger.Error("task error", "op", op, "error", err)
		deliver(Result{Err: fmt.Errorf("%w: %w", core.ErrIO, err)})
	}))

	return out
}
