package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6C6C6C"}
	colorError  = lipgloss.AdaptiveColor{Light: "#D7263D", Dark: "#FF5F6D"}
	colorOK     = lipgloss.AdaptiveColor{Light: "#1B873F", Dark: "#5FD787"}
	colorSelBg  = lipgloss.AdaptiveColor{Light: "#E4E2FF", Dark: "#2E2B5F"}
)

var (
	headerStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	counterStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	buttonStyle     = lipgloss.NewStyle().Padding(0, 1).Foreground(colorAccent)
	busyButtonStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(colorMuted).Italic(true)
	labelStyle      = lipgloss.NewStyle().Foreground(colorMuted)
	focusLabelStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	rowStyle       = lipgloss.NewStyle()
	selectedStyle  = lipgloss.NewStyle().Background(colorSelBg)
	doneTitleStyle = lipgloss.NewStyle().Strikethrough(true).Foreground(colorMuted)
	bodyLineStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	checkboxStyle  = lipgloss.NewStyle().Foreground(colorAccent)

	statusInfoStyle  = lipgloss.NewStyle().Foreground(colorOK)
	statusErrorStyle = lipgloss.NewStyle().Foreground(colorError)

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2)
	dividerStyle = lipgloss.NewStyle().Foreground(colorMuted)
)
