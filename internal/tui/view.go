package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/rufty/pkg/adapters/lifecycle"
)

func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	lines := []string{
		m.viewHeader(),
		m.viewSearch(),
		dividerStyle.Render(strings.Repeat("─", m.width)),
	}

	height := m.contentHeight()
	switch m.mode {
	case modePrompt, modeConfirmImport:
		box := lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, m.viewDialog())
		lines = append(lines, padLines(strings.Split(box, "\n"), m.width, height)...)
	default:
		list := m.viewList(height)
		editor := m.viewEditor(height)
		sep := dividerStyle.Render("│")
		for i := 0; i < height; i++ {
			lines = append(lines, list[i]+sep+editor[i])
		}
	}

	lines = append(lines, m.viewStatus())
	lines = append(lines, m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

func (m *Model) viewHeader() string {
	left := headerStyle.Render("Task Manager") + " " + counterStyle.Render(m.board.CounterText())
	right := viewButton(m.app.Export) + viewButton(m.app.Import)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return fitStyled(left, m.width)
	}
	return left + strings.Repeat(" ", gap) + right
}

func viewButton(c *lifecycle.Control) string {
	label := "[" + c.Label() + "]"
	if !c.Enabled() {
		return busyButtonStyle.Render(label)
	}
	return buttonStyle.Render(label)
}

func (m *Model) viewSearch() string {
	return fitStyled(m.label("Search", focusSearch)+" "+m.search.View(), m.width)
}

func (m *Model) label(text string, f focus) string {
	if m.focus == f && m.mode == modeNormal {
		return focusLabelStyle.Render(text)
	}
	return labelStyle.Render(text)
}

func (m *Model) viewList(height int) []string {
	width := m.layout.Width
	count := m.board.Count()
	if count == 0 {
		return padLines([]string{"", labelStyle.Render("  No notes yet.")}, width, height)
	}

	var lines []string
	end := min(m.layout.Offset+m.visibleRows(), count)
	for i := m.layout.Offset; i < end; i++ {
		lines = append(lines, strings.Split(m.row(i), "\n")...)
	}
	return padLines(lines, width, height)
}

// row renders the row at index, reusing the cached text until the board
// reports the row stale.
func (m *Model) row(index int) string {
	if cached, ok := m.rows[index]; ok {
		return cached
	}
	n, err := m.board.Note(index)
	if err != nil {
		return ""
	}
	width := m.layout.Width
	g := m.geometry
	sel, ok := m.board.Selected()
	selected := ok && sel == index

	box := "[ ]"
	if n.Completed {
		box = "[x]"
	}
	box += strings.Repeat(" ", g.Width-3)

	textX := g.OffsetX + g.Width + 1
	title := truncatePlain(n.Title, width-textX)
	if n.Completed {
		title = doneTitleStyle.Render(title)
	}

	lines := make([]string, rowHeight)
	lines[g.OffsetY] = strings.Repeat(" ", g.OffsetX) + checkboxStyle.Render(box) + " " + title
	if bodyY := g.OffsetY + g.Height; bodyY < rowHeight && strings.TrimSpace(n.Body) != "" {
		lines[bodyY] = strings.Repeat(" ", textX) + bodyLineStyle.Render(truncatePlain(n.Body, width-textX))
	}

	style := rowStyle
	if selected {
		style = selectedStyle
	}
	for i, line := range lines {
		if selected {
			line = focusLabelStyle.Render("▌") + strings.TrimPrefix(line, " ")
		}
		lines[i] = style.Render(fitStyled(line, width))
	}

	out := strings.Join(lines, "\n")
	m.rows[index] = out
	return out
}

func (m *Model) viewEditor(height int) []string {
	width := m.editorWidth()

	titleLabel := "Title"
	if sel, ok := m.board.Selected(); ok {
		titleLabel = fmt.Sprintf("Title (note %d)", sel+1)
	}

	lines := []string{
		" " + m.label(titleLabel, focusTitle),
		" " + m.title.View(),
		" " + m.label("Body", focusBody),
	}
	lines = append(lines, strings.Split(m.body.View(), "\n")...)

	if m.preview {
		if n, err := m.board.SelectedNote(); err == nil && strings.TrimSpace(n.Body) != "" {
			lines = append(lines, "", " "+labelStyle.Render("Preview"))
			lines = append(lines, strings.Split(m.md.render(n.Body, width-2), "\n")...)
		}
	}
	return padLines(lines, width, height)
}

func (m *Model) viewDialog() string {
	switch m.mode {
	case modeConfirmImport:
		return dialogStyle.Render(importPrompt(len(m.pending)) + "\n\n" +
			buttonStyle.Render("[r] Replace") + buttonStyle.Render("[a] Append") + buttonStyle.Render("[esc] Cancel"))
	default:
		heading := "Import notes from"
		if m.promptOp == lifecycle.OpExport {
			heading = "Export notes to"
		}
		return dialogStyle.Render(headerStyle.Render(heading) + "\n\n" + m.path.View() + "\n\n" +
			labelStyle.Render("enter confirm · esc cancel"))
	}
}

func (m *Model) viewStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return fitStyled(statusErrorStyle.Render(m.status), m.width)
	}
	return fitStyled(statusInfoStyle.Render(m.status), m.width)
}
