package tui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor    = lipgloss.Color("#c084fc")
	accentAltColor = lipgloss.Color("#db2777")
	mutedColor     = lipgloss.Color("244")
	panelBorder    = lipgloss.Color("#3f3f46")

	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	taglineStyle    = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)
	helperStyle     = lipgloss.NewStyle().Foreground(mutedColor)
	paragraphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#d4d4d8"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#f87171"))
	errorTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f87171"))
	spinnerStyle    = lipgloss.NewStyle().Foreground(accentColor)

	panelStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(panelBorder).Padding(0, 1)
	errorPanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#b91c1c")).Padding(0, 1)

	buttonStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(accentAltColor).Padding(0, 2)
	buttonDisabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a1a1aa")).Background(lipgloss.Color("#3f3f46")).Padding(0, 2)

	statusBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	keyStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 1)
	keyDescStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4"))
	legendBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(0, 1)
)
