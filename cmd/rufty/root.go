package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/rufty/internal/config"
)

var (
	verbose    bool
	configPath string
	logFile    string

	settings  = config.Default()
	logCloser io.Closer
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rufty",
	Short: "A keyboard and mouse driven note and task manager for the terminal",
	Long: `rufty keeps an ordered list of notes with a completion checkbox each.
Notes live in memory; export and import move them to and from JSON, YAML or CSV files.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadSettings(); err != nil {
			return err
		}
		return setupLogging(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (default: user config dir/rufty/settings.toml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append logs to this file")
}

func loadSettings() error {
	if configPath == "" {
		path, err := config.DefaultPath()
		if err != nil {
			// No config dir (e.g. HOME unset): run on defaults.
			return nil
		}
		configPath = path
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	settings = cfg
	return nil
}

// setupLogging installs the default slog logger. The ui command owns the
// terminal, so without a log file its output is discarded.
func setupLogging(cmd *cobra.Command) error {
	level := settings.LogLevel()
	if verbose {
		level = slog.LevelDebug
	}

	var out io.Writer = os.Stderr
	path := logFile
	if path == "" {
		path = settings.LogFile()
	}
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		out = f
		logCloser = f
	case cmd.Name() == uiCmd.Name():
		out = io.Discard
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}
	logger := slog.New(slog.NewTextHandler(out, opts))
	slog.SetDefault(logger)
	return nil
}
