package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestTruncatePlain(t *testing.T) {
	assert.Equal(t, "short", truncatePlain("short", 10))
	assert.Equal(t, "abcd…", truncatePlain("abcdefgh", 5))
	assert.Equal(t, "line one …", truncatePlain("line one\nline two", 20))
	assert.Equal(t, "", truncatePlain("x", 0))
	assert.LessOrEqual(t, ansi.StringWidth(truncatePlain("日本語のタイトル", 7)), 7)
}

func TestFitStyled(t *testing.T) {
	line := headerStyle.Render("Task Manager")
	assert.Equal(t, 20, ansi.StringWidth(fitStyled(line, 20)))
	assert.Equal(t, 4, ansi.StringWidth(fitStyled(line, 4)))
}

func TestPadLines(t *testing.T) {
	out := padLines([]string{"a", "bb"}, 3, 4)
	assert.Equal(t, []string{"a  ", "bb ", "   ", "   "}, out)
}

func TestMarkdownRender(t *testing.T) {
	md := newMarkdown()
	assert.Empty(t, md.render("\n", 40))

	out := md.render("# Heading\n\nsome *text*", 40)
	assert.Contains(t, out, "Heading")
	assert.Contains(t, out, "text")
	assert.Equal(t, out, md.render("# Heading\n\nsome *text*", 40), "cached")
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "Found 3 note(s). Replace existing notes or add to them?", importPrompt(3))
	assert.Equal(t, "No task found with title containing 'milk'.", noMatchMessage("  milk "))
}
