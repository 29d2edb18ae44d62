package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithOverrides(t *testing.T) {
	km, unknown := withOverrides(map[string][]string{
		"save":   {"ctrl+w"},
		"bogus":  {"f1"},
		"delete": {"ctrl+x", "delete"},
	})

	assert.Equal(t, []string{"bogus"}, unknown)
	assert.Equal(t, []string{"ctrl+w"}, km.Save.Keys())
	assert.Equal(t, "ctrl+w", km.Save.Help().Key)
	assert.Equal(t, "save", km.Save.Help().Desc)
	assert.Equal(t, "ctrl+x/delete", km.Delete.Help().Key)
	assert.Equal(t, []string{"ctrl+n"}, km.Add.Keys(), "untouched commands keep defaults")
}

func TestKeyMap_HelpCoversCommands(t *testing.T) {
	km := defaultKeyMap()
	assert.NotEmpty(t, km.ShortHelp())

	seen := 0
	for _, column := range km.FullHelp() {
		seen += len(column)
	}
	assert.GreaterOrEqual(t, seen, len(km.commands()))
}
