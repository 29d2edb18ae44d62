package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aretw0/rufty/internal/config"
	"github.com/aretw0/rufty/pkg/adapters/lifecycle"
	"github.com/aretw0/rufty/pkg/core"
	"github.com/aretw0/rufty/pkg/listview"
)

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		return tea.Quit
	}

	switch m.mode {
	case modePrompt:
		return m.handlePromptKey(msg)
	case modeConfirmImport:
		m.handleConfirmKey(msg)
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Add):
		m.add()
		return nil
	case key.Matches(msg, m.keys.Save):
		m.save()
		return nil
	case key.Matches(msg, m.keys.Delete):
		m.deleteSelected()
		return nil
	case key.Matches(msg, m.keys.Search):
		m.setFocus(focusSearch)
		return nil
	case key.Matches(msg, m.keys.Export):
		m.beginExport()
		return nil
	case key.Matches(msg, m.keys.Import):
		m.beginImport()
		return nil
	case key.Matches(msg, m.keys.Copy):
		m.copySelected()
		return nil
	case key.Matches(msg, m.keys.Next):
		m.setFocus((m.focus + 1) % focusCount)
		return nil
	case key.Matches(msg, m.keys.Prev):
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return nil
	case key.Matches(msg, m.keys.Back):
		m.back()
		return nil
	}

	switch m.focus {
	case focusList:
		return m.handleListKey(msg)
	case focusSearch:
		if msg.Type == tea.KeyEnter {
			m.runSearch()
			return nil
		}
	case focusTitle:
		if msg.Type == tea.KeyEnter {
			m.setFocus(focusBody)
			return nil
		}
	}
	return m.updateFocused(msg)
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.move(1)
	case key.Matches(msg, m.keys.Toggle):
		if i, ok := m.board.Selected(); ok {
			m.toggle(i)
		}
	case key.Matches(msg, m.keys.Edit):
		m.setFocus(focusTitle)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.body.SetHeight(m.bodyFieldHeight())
	}
	return nil
}

func (m *Model) back() {
	if m.focus != focusList {
		m.setFocus(focusList)
		return
	}
	m.board.ClearSelection()
}

func (m *Model) move(delta int) {
	count := m.board.Count()
	if count == 0 {
		return
	}
	target := 0
	if sel, ok := m.board.Selected(); ok {
		target = min(max(sel+delta, 0), count-1)
	}
	if err := m.board.Select(target); err == nil {
		m.reveal(target)
	}
}

func (m *Model) add() {
	index, err := m.board.Create(m.title.Value(), m.body.Value())
	if err != nil {
		m.setError(editMessage(err))
		return
	}
	// Fields and selection go together: a later save must not land on the
	// note that was selected before the add.
	m.board.ClearSelection()
	m.title.Reset()
	m.body.Reset()
	m.reveal(index)
	m.setInfo("Note added.")
}

func (m *Model) save() {
	if err := m.board.UpdateSelected(m.title.Value(), m.body.Value()); err != nil {
		m.setError(editMessage(err))
		return
	}
	m.setInfo("Note saved.")
}

func (m *Model) deleteSelected() {
	if err := m.board.DeleteSelected(); err != nil {
		m.setError(deleteMessage(err))
		return
	}
	m.setInfo("Note deleted.")
}

func (m *Model) toggle(index int) {
	if err := m.board.Toggle(index); err != nil {
		m.setError(toggleMessage(err))
	}
}

func (m *Model) runSearch() {
	term := m.search.Value()
	_, found, err := m.board.Search(term)
	switch {
	case err != nil:
		m.setError(searchMessage(err))
	case !found:
		m.setError(noMatchMessage(term))
	default:
		m.setFocus(focusList)
	}
}

func (m *Model) copySelected() {
	n, err := m.board.SelectedNote()
	if err != nil {
		m.setError(msgSelectToCopy)
		return
	}
	if err := copyText(clipText(n)); err != nil {
		m.logger.Warn("copy failed", "error", err)
		m.setError("Copy failed: " + err.Error())
		return
	}
	m.setInfo("Copied to clipboard.")
}

// --- background file operations ---

func (m *Model) beginExport() {
	if !m.app.Export.Enabled() {
		m.setError(msgBusy)
		return
	}
	if _, err := m.board.ExportSnapshot(); err != nil {
		m.setError(exportMessage(err))
		return
	}
	m.openPrompt(lifecycle.OpExport, m.app.ExportPath())
}

func (m *Model) beginImport() {
	if !m.app.Import.Enabled() {
		m.setError(msgBusy)
		return
	}
	m.openPrompt(lifecycle.OpImport, "")
}

func (m *Model) openPrompt(op lifecycle.Op, value string) {
	m.mode = modePrompt
	m.promptOp = op
	m.setFocus(focusList)
	m.path.SetValue(value)
	m.path.CursorEnd()
	m.path.Focus()
}

// closePrompt returns to the board, or to the import dialog when an import
// finished while the prompt was open.
func (m *Model) closePrompt() {
	m.mode = modeNormal
	m.path.Blur()
	m.path.Reset()
	if m.pending != nil {
		m.mode = modeConfirmImport
	}
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.closePrompt()
		return nil
	case tea.KeyEnter:
		p := strings.TrimSpace(m.path.Value())
		if p == "" {
			m.setError(msgEnterPath)
			return nil
		}
		op := m.promptOp
		m.closePrompt()
		return m.startTask(op, m.app.ResolvePath(p))
	}
	return m.updateFocused(msg)
}

func (m *Model) startTask(op lifecycle.Op, path string) tea.Cmd {
	switch op {
	case lifecycle.OpExport:
		snapshot, err := m.board.ExportSnapshot()
		if err != nil {
			m.setError(exportMessage(err))
			return nil
		}
		if !m.app.Export.Begin("Exporting...") {
			m.setError(msgBusy)
			return nil
		}
		return waitTask(op, m.app.Runner.Export(m.ctx, path, snapshot))
	case lifecycle.OpImport:
		if !m.app.Import.Begin("Importing...") {
			m.setError(msgBusy)
			return nil
		}
		return waitTask(op, m.app.Runner.Import(m.ctx, path))
	}
	return nil
}

func (m *Model) handleTaskResult(res lifecycle.Result) {
	m.logger.Debug("task result", "result", res.String())

	if res.Op == lifecycle.OpExport {
		m.app.Export.Complete()
		if res.Err != nil {
			m.setError(taskMessage(res))
		} else {
			m.setInfo(taskMessage(res))
		}
		return
	}

	if res.Err == nil {
		res.Err = core.ValidateAll(res.Notes)
	}
	if res.Err != nil {
		m.app.Import.Complete()
		m.setError(taskMessage(res))
		return
	}
	// The import control stays disabled until the user picks a policy.
	m.pending = res.Notes
	if m.mode == modePrompt {
		m.setInfo(msgImportWaiting)
		return
	}
	m.mode = modeConfirmImport
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) {
	switch strings.ToLower(msg.String()) {
	case "r":
		m.finishImport(core.MergeReplace)
	case "a":
		m.finishImport(core.MergeAppend)
	case "esc", "c", "n":
		m.pending = nil
		m.mode = modeNormal
		m.app.Import.Complete()
		m.setInfo("Import canceled.")
	}
}

func (m *Model) finishImport(policy core.MergePolicy) {
	change, err := m.board.Import(m.pending, policy)
	m.pending = nil
	m.mode = modeNormal
	m.app.Import.Complete()
	if err != nil {
		m.setError(mergeMessage(policy, change, err))
		return
	}
	m.setInfo(mergeMessage(policy, change, nil))
}

func exportMessage(err error) string {
	if errors.Is(err, core.ErrNothingToExport) {
		return msgNothingToExport
	}
	return "Error exporting notes: " + err.Error()
}

// applySettings swaps in reloaded key bindings and the preview toggle, then
// waits for the next reload.
func (m *Model) applySettings(u config.Update) tea.Cmd {
	next := waitSettings(m.settings)
	if u.Err != nil {
		m.setError("Settings not reloaded: " + u.Err.Error())
		return next
	}
	keys, unknown := withOverrides(u.Settings.KeyOverrides())
	if len(unknown) > 0 {
		m.logger.Warn("unknown key commands in settings", "commands", unknown)
	}
	m.keys = keys
	m.preview = u.Settings.PreviewEnabled()
	m.setInfo("Settings reloaded.")
	return next
}

// --- mouse ---

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.mode != modeNormal {
		return
	}
	p := listview.Point{X: msg.X, Y: msg.Y}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if m.inList(p) {
			delta := 1
			if msg.Button == tea.MouseButtonWheelUp {
				delta = -1
			}
			m.layout.Offset += delta
			m.layout = m.layout.Clamp(m.visibleRows(), m.board.Count())
		}
		return
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}

	if m.inList(p) {
		m.clickRow(p)
		return
	}
	if f, ok := m.fieldAt(p); ok {
		m.setFocus(f)
	}
}

// inList reports whether p is inside the area where rows are drawn.
func (m *Model) inList(p listview.Point) bool {
	top := m.layout.Origin.Y
	return p.X >= 0 && p.X < m.layout.Width && p.Y >= top && p.Y < top+m.visibleRows()*rowHeight
}

func (m *Model) clickRow(p listview.Point) {
	index, ok := m.layout.IndexAt(p, m.board.Count())
	if !ok {
		return
	}
	switch listview.HitTest(m.layout.Bounds(index), p, m.geometry) {
	case listview.Checkbox:
		m.toggle(index)
	case listview.BodyArea:
		if err := m.board.Select(index); err == nil {
			m.setFocus(focusList)
		}
	}
}

// fieldAt maps a click outside the list to the input it landed on.
func (m *Model) fieldAt(p listview.Point) (focus, bool) {
	if p.Y == 1 {
		return focusSearch, true
	}
	if p.X <= m.layout.Width {
		return focusList, false
	}
	rel := p.Y - headerLines
	switch {
	case rel == 0 || rel == 1:
		return focusTitle, true
	case rel >= 2 && rel < 3+m.bodyFieldHeight():
		return focusBody, true
	}
	return focusList, false
}
