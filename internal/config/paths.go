package config

import (
	"os"
	"path/filepath"
)

const appDirName = "rufty"

// SettingsFile is the base name of the settings file.
const SettingsFile = "settings.toml"

// Dir returns the per-user configuration directory for rufty.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appDirName), nil
}

// DefaultPath returns the path of the settings file.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFile), nil
}
