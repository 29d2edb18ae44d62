package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/aretw0/rufty/pkg/adapters/fs"
	"github.com/aretw0/rufty/pkg/core"
)

var errCheckFailed = errors.New("some files failed the check")

var checkCmd = &cobra.Command{
	Use:   "check PATTERN...",
	Short: "Validate note files for import",
	Long: `Validate that files can be imported: each must decode and hold at least one
note, and every note must have a title. Patterns support ** globs.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		archive := fs.NewArchive(fs.Config{Logger: slog.Default()})
		return runCheck(cmd.Context(), cmd.OutOrStdout(), archive, args)
	},
}

// runCheck validates every file matched by patterns and prints one line per file.
func runCheck(ctx context.Context, w io.Writer, archive core.Archive, patterns []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var files []string
	seen := map[string]struct{}{}
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, statErr := os.Stat(pattern); statErr == nil {
				matches = []string{pattern}
			}
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no files match %v", patterns)
	}

	failed := 0
	for _, file := range files {
		count, done, err := checkFile(ctx, archive, file)
		if err != nil {
			failed++
			fmt.Fprintf(w, "FAIL %s: %v\n", file, err)
			continue
		}
		fmt.Fprintf(w, "ok   %s: %d note(s), %d completed\n", file, count, done)
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errCheckFailed, failed, len(files))
	}
	return nil
}

func checkFile(ctx context.Context, archive core.Archive, path string) (count, completed int, err error) {
	notes, err := archive.Load(ctx, path)
	if err != nil {
		return 0, 0, err
	}
	store := core.NewStore()
	if _, err := store.Merge(notes, core.MergeReplace); err != nil {
		return 0, 0, err
	}
	st := store.State().(core.StoreState)
	return st.Count, st.Completed, nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
