package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aretw0/rufty/internal/config"
	"github.com/aretw0/rufty/pkg/adapters/lifecycle"
	"github.com/aretw0/rufty/pkg/core"
)

type taskResultMsg struct {
	result lifecycle.Result
}

type settingsMsg struct {
	update config.Update
}

type clearStatusMsg struct {
	seq int
}

// waitTask blocks until a background task reports.
func waitTask(op lifecycle.Op, ch <-chan lifecycle.Result) tea.Cmd {
	return func() tea.Msg {
		res, ok := <-ch
		if !ok {
			res = lifecycle.Result{Op: op, Err: fmt.Errorf("%w: %s ended without a result", core.ErrIO, op)}
		}
		return taskResultMsg{result: res}
	}
}

func waitSettings(ch <-chan config.Update) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		u, ok := <-ch
		if !ok {
			return nil
		}
		return settingsMsg{update: u}
	}
}

func clearStatusAfter(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
