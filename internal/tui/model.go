// Package tui is the terminal front end of rufty.
//
// The model never edits notes itself. Every action goes through the board
// service, and after each message the model drains the board's pending list
// changes to decide which cached rows to re-render and which edit fields to
// load or clear.
package tui

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aretw0/rufty/internal/config"
	"github.com/aretw0/rufty/internal/platform"
	"github.com/aretw0/rufty/pkg/adapters/lifecycle"
	"github.com/aretw0/rufty/pkg/board"
	"github.com/aretw0/rufty/pkg/core"
	"github.com/aretw0/rufty/pkg/listview"
)

const (
	rowHeight    = 3
	headerLines  = 3
	minListWidth = 24
	statusTTL    = 4 * time.Second
)

type focus int

const (
	focusList focus = iota
	focusTitle
	focusBody
	focusSearch
	focusCount
)

type mode int

const (
	modeNormal mode = iota
	modePrompt
	modeConfirmImport
)

// Options tune a Model beyond what the App carries.
type Options struct {
	Preview bool
	// Keys overrides default key bindings per command name.
	Keys map[string][]string
	// Settings delivers hot-reloaded settings. May be nil.
	Settings <-chan config.Update
}

// Model is the bubbletea model of the note board.
type Model struct {
	ctx      context.Context
	app      *platform.App
	board    *board.Service
	geometry listview.Geometry
	logger   *slog.Logger

	keys keyMap
	help help.Model

	title  textinput.Model
	body   textarea.Model
	search textinput.Model
	path   textinput.Model

	focus    focus
	mode     mode
	promptOp lifecycle.Op
	pending  []core.Note

	layout listview.Layout
	width  int
	height int
	rows   map[int]string

	preview bool
	md      *markdown

	status      string
	statusErr   bool
	statusSeq   int
	statusArmed bool

	settings <-chan config.Update
}

// New creates the model for app.
func New(ctx context.Context, app *platform.App, opts Options) *Model {
	logger := app.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	keys, unknown := withOverrides(opts.Keys)
	if len(unknown) > 0 {
		logger.Warn("unknown key commands in settings", "commands", unknown)
	}

	title := textinput.New()
	title.Placeholder = "Title"
	title.Prompt = ""
	title.CharLimit = 200

	body := textarea.New()
	body.Placeholder = "Body (markdown)"
	body.ShowLineNumbers = false
	body.Prompt = ""

	search := textinput.New()
	search.Placeholder = "title contains..."
	search.Prompt = ""

	path := textinput.New()
	path.Prompt = "> "

	return &Model{
		ctx:      ctx,
		app:      app,
		board:    app.Board,
		geometry: rowGeometry(app.Geometry),
		logger:   logger.With("component", "tui"),
		keys:     keys,
		help:     help.New(),
		title:    title,
		body:     body,
		search:   search,
		path:     path,
		layout:   listview.Layout{Origin: listview.Point{X: 0, Y: headerLines}, RowHeight: rowHeight},
		rows:     map[int]string{},
		preview:  opts.Preview,
		md:       newMarkdown(),
		settings: opts.Settings,
	}
}

// rowGeometry keeps the checkbox inside a row with room for the selection
// marker in column zero.
func rowGeometry(g listview.Geometry) listview.Geometry {
	if g.OffsetX < 1 || g.OffsetY < 0 || g.Width < 3 || g.Height < 1 || g.OffsetY+g.Height > rowHeight {
		return listview.CellGeometry
	}
	return g
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitSettings(m.settings))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case taskResultMsg:
		m.handleTaskResult(msg.result)
	case settingsMsg:
		cmd = m.applySettings(msg.update)
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
	default:
		cmd = m.updateFocused(msg)
	}

	m.sync()

	if m.statusArmed {
		m.statusArmed = false
		cmd = tea.Batch(cmd, clearStatusAfter(m.statusSeq, statusTTL))
	}
	return m, cmd
}

// sync pulls pending list changes from the board.
func (m *Model) sync() {
	ch := m.board.Drain()
	if ch.Reset {
		m.rows = map[int]string{}
	}
	for _, i := range ch.Stale {
		delete(m.rows, i)
	}
	if ch.ClearFields {
		m.title.Reset()
		m.body.Reset()
	}
	if ch.LoadFields != listview.NoRow {
		if n, err := m.board.Note(ch.LoadFields); err == nil {
			m.title.SetValue(n.Title)
			m.body.SetValue(n.Body)
		}
	}
	if ch.ScrollTo != listview.NoRow {
		m.reveal(ch.ScrollTo)
	}
	m.layout = m.layout.Clamp(m.visibleRows(), m.board.Count())
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height

	lw := width * 2 / 5
	if lw < minListWidth {
		lw = min(width, minListWidth)
	}
	m.layout.Width = lw
	m.rows = map[int]string{}

	rw := m.editorWidth()
	m.title.Width = max(rw-1, 1)
	m.search.Width = max(width-len("Search ")-1, 1)
	m.path.Width = max(min(width-12, 72), 10)
	m.body.SetWidth(max(rw, 1))
	m.body.SetHeight(m.bodyFieldHeight())
	m.help.Width = width
}

func (m *Model) editorWidth() int {
	return max(m.width-m.layout.Width-1, 0)
}

// contentHeight is the number of lines between the header and the footer.
func (m *Model) contentHeight() int {
	helpLines := 1
	if m.help.ShowAll {
		helpLines = 0
		for _, column := range m.keys.FullHelp() {
			helpLines = max(helpLines, len(column))
		}
	}
	return max(m.height-headerLines-1-helpLines, 0)
}

func (m *Model) bodyFieldHeight() int {
	return min(8, max(3, m.contentHeight()/3))
}

func (m *Model) visibleRows() int {
	return m.layout.Visible(m.contentHeight())
}

func (m *Model) reveal(index int) {
	m.layout = m.layout.ScrollTo(index, m.visibleRows(), m.board.Count())
}

func (m *Model) setFocus(f focus) {
	m.focus = f
	m.title.Blur()
	m.body.Blur()
	m.search.Blur()
	switch f {
	case focusTitle:
		m.title.Focus()
	case focusBody:
		m.body.Focus()
	case focusSearch:
		m.search.Focus()
	}
}

func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.mode == modePrompt {
		m.path, cmd = m.path.Update(msg)
		return cmd
	}
	switch m.focus {
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
	case focusBody:
		m.body, cmd = m.body.Update(msg)
	case focusSearch:
		m.search, cmd = m.search.Update(msg)
	}
	return cmd
}

func (m *Model) setInfo(text string) {
	m.setStatus(text, false)
}

func (m *Model) setError(text string) {
	m.setStatus(text, true)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
	m.statusSeq++
	m.statusArmed = true
}
