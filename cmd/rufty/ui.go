package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/aretw0/rufty/internal/config"
	"github.com/aretw0/rufty/internal/platform"
	"github.com/aretw0/rufty/internal/tui"
	"github.com/aretw0/rufty/pkg/core"
)

var (
	uiMerge   string
	uiNoWatch bool
)

var uiCmd = &cobra.Command{
	Use:   "ui [FILE]",
	Short: "Open the interactive note board",
	Long: `Open the interactive note board, optionally starting from the notes in FILE.

Keys: ctrl+n add, ctrl+s save, ctrl+d delete, space toggle, ctrl+f search,
ctrl+e export, ctrl+o import, ctrl+y copy, tab switch field, q quit.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		logger := slog.Default()
		app, err := platform.New(
			platform.WithLogger(logger),
			platform.WithExportDir(settings.ExportDirectory()),
			platform.WithExportFormat(settings.ExportFormat()),
		)
		if err != nil {
			fatal("Error initializing rufty", err)
		}

		if len(args) == 1 {
			if err := preload(ctx, app, args[0]); err != nil {
				fatal("Error loading "+args[0], err)
			}
		}

		var updates <-chan config.Update
		if !uiNoWatch && configPath != "" {
			updates, err = config.NewWatcher(configPath, logger.With("component", "settings")).Start(ctx)
			if err != nil {
				logger.Warn("settings hot reload disabled", "error", err)
			}
		}

		model := tui.New(ctx, app, tui.Options{
			Preview:  settings.PreviewEnabled(),
			Keys:     settings.KeyOverrides(),
			Settings: updates,
		})
		program := tea.NewProgram(model,
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
			tea.WithContext(ctx),
		)
		if _, err := program.Run(); err != nil && ctx.Err() == nil {
			fatal("Error running ui", err)
		}

		logger.Debug("ui closed", "board", app.Board.State(), "export", app.Export.State(), "import", app.Import.State())
	},
}

func preload(ctx context.Context, app *platform.App, path string) error {
	policy, err := core.ParseMergePolicy(uiMerge)
	if err != nil {
		return err
	}
	notes, err := app.Archive.Load(ctx, path)
	if err != nil {
		return err
	}
	if _, err := app.Board.Import(notes, policy); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "loaded %d note(s) from %s\n", len(notes), path)
	return nil
}

func init() {
	rootCmd.AddCommand(uiCmd)
	uiCmd.Flags().StringVar(&uiMerge, "merge", "replace", "How FILE is merged into the empty board (replace|append)")
	uiCmd.Flags().BoolVar(&uiNoWatch, "no-watch", false, "Do not reload the settings file when it changes")
}
