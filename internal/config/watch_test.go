package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, SettingsFile)
	require.NoError(t, os.WriteFile(path, []byte("[export]\nformat = \"json\"\n"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := NewWatcher(path, nil).WithDebounce(20 * time.Millisecond).Start(ctx)
	require.NoError(t, err)

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(path, []byte("[export]\nformat = \"yaml\"\n"), 0o600))

	select {
	case u := <-updates:
		require.NoError(t, u.Err)
		assert.Equal(t, "yaml", u.Settings.ExportFormat())
	case <-time.After(5 * time.Second):
		t.Fatal("no settings update")
	}
}

func TestWatcher_ClosesOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	ctx, cancel := context.WithCancel(context.Background())

	updates, err := NewWatcher(path, nil).Start(ctx)
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-updates:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_Matches(t *testing.T) {
	w := NewWatcher("/etc/rufty/settings.toml", nil)
	assert.True(t, w.matches("/etc/rufty/settings.toml"))
	assert.False(t, w.matches("/etc/rufty/settings.toml~"))
	assert.False(t, w.matches("/etc/rufty/.settings.toml.swp"))

	w = NewWatcher("/etc/rufty/[dev]*.toml", nil)
	assert.True(t, w.matches("/etc/rufty/[dev]*.toml"))
	assert.False(t, w.matches("/etc/rufty/d.toml"))
	assert.False(t, w.matches("/etc/rufty/dev-settings.toml"))
}

func TestWatcher_StartFailsOnMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing", SettingsFile), nil).Start(context.Background())
	assert.Error(t, err)
}
