package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// truncatePlain shortens unstyled text to width cells. Only the first line is kept.
func truncatePlain(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i] + " " + ellipsis
	}
	s = strings.ReplaceAll(s, "\t", " ")
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// fitStyled truncates or pads an already styled line to exactly width cells.
func fitStyled(line string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(line)
	if w > width {
		return ansi.Truncate(line, width, "")
	}
	return line + strings.Repeat(" ", width-w)
}

func padLines(lines []string, width, height int) []string {
	out := make([]string, 0, height)
	for i := 0; i < height; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		out = append(out, fitStyled(line, width))
	}
	return out
}

type markdownKey struct {
	body  string
	width int
}

// markdown renders note bodies with glamour, caching the last few results.
type markdown struct {
	mu        sync.Mutex
	renderers map[int]*glamour.TermRenderer
	cache     map[markdownKey]string
}

func newMarkdown() *markdown {
	return &markdown{
		renderers: map[int]*glamour.TermRenderer{},
		cache:     map[markdownKey]string{},
	}
}

func (m *markdown) render(body string, width int) string {
	body = strings.TrimRight(body, "\n")
	if body == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	k := markdownKey{body: body, width: width}
	if out, ok := m.cache[k]; ok {
		return out
	}
	r, ok := m.renderers[width]
	if !ok {
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return body
		}
		m.renderers[width] = r
	}
	out, err := r.Render(body)
	if err != nil {
		return body
	}
	out = strings.Trim(out, "\n")
	out = ansi.Hardwrap(out, width, true)
	if len(m.cache) > 64 {
		m.cache = map[markdownKey]string{}
	}
	m.cache[k] = out
	return out
}
