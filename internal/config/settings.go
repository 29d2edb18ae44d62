package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	defaultExportFormat = "json"
	defaultLogLevel     = "info"
)

type Settings struct {
	UI      UIConfig      `toml:"ui"`
	Export  ExportConfig  `toml:"export"`
	Logging LoggingConfig `toml:"logging"`
}

type UIConfig struct {
	MarkdownPreview *bool `toml:"markdown_preview"`
	// Keys maps a command name (e.g. "save") to the keys that trigger it.
	Keys map[string][]string `toml:"keys"`
}

type ExportConfig struct {
	Directory string `toml:"directory"`
	Format    string `toml:"format"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

func Default() Settings {
	return Settings{
		Export: ExportConfig{
			Directory: ".",
			Format:    defaultExportFormat,
		},
		Logging: LoggingConfig{
			Level: defaultLogLevel,
		},
	}
}

// Load reads settings from path on top of the defaults. A missing or empty
// file yields the defaults.
func Load(path string) (Settings, error) {
	cfg := Default()
	if err := readTOML(path, &cfg); err != nil {
		return Settings{}, fmt.Errorf("load settings %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault reads settings from DefaultPath.
func LoadDefault() (Settings, string, error) {
	path, err := DefaultPath()
	if err != nil {
		return Settings{}, "", err
	}
	cfg, err := Load(path)
	return cfg, path, err
}

func (s Settings) PreviewEnabled() bool {
	if s.UI.MarkdownPreview == nil {
		return true
	}
	return *s.UI.MarkdownPreview
}

// KeyOverrides returns the configured keys per command, trimmed, lowercased
// and without duplicates. Commands with no usable key are dropped.
func (s Settings) KeyOverrides() map[string][]string {
	out := map[string][]string{}
	for command, keys := range s.UI.Keys {
		command = strings.ToLower(strings.TrimSpace(command))
		if command == "" {
			continue
		}
		if list := normalizedList(keys); len(list) > 0 {
			out[command] = list
		}
	}
	return out
}

func (s Settings) ExportDirectory() string {
	dir := strings.TrimSpace(s.Export.Directory)
	if dir == "" {
		return "."
	}
	return dir
}

func (s Settings) ExportFormat() string {
	format := strings.ToLower(strings.TrimSpace(s.Export.Format))
	format = strings.TrimPrefix(format, ".")
	if format == "" {
		return defaultExportFormat
	}
	return format
}

func (s Settings) LogFile() string {
	return strings.TrimSpace(s.Logging.File)
}

// LogLevel parses logging.level. Unknown values fall back to info.
func (s Settings) LogLevel() slog.Level {
	var level slog.Level
	raw := strings.TrimSpace(s.Logging.Level)
	if raw == "" {
		return slog.LevelInfo
	}
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return toml.Unmarshal(data, out)
}

func normalizedList(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	seen := map[string]struct{}{}
	for _, raw := range values {
		value := strings.ToLower(strings.TrimSpace(raw))
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
