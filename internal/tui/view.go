package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/paragen/internal/session"
)

const tagline = "Turn a short prompt into a polished paragraph."

// resultState is everything the result panel depends on.
type resultState struct {
	Phase        session.Phase
	Result       string
	ErrorMessage string
	Spinner      string
	Width        int
}

// renderResult picks exactly one of the four result views. Loading wins over
// an error, an error over a paragraph, and a paragraph over the placeholder.
func renderResult(s resultState) string {
	width := s.Width
	if width <= 0 {
		width = minPanelWidth - panelChrome
	}
	switch {
	case s.Phase == session.PhaseLoading:
		return lipgloss.JoinHorizontal(lipgloss.Top, s.Spinner, " ", helperStyle.Render(loadingCaption))
	case s.Phase == session.PhaseFailed && s.ErrorMessage != "":
		return errorTitleStyle.Render(errorHeading) + "\n" + errorStyle.Render(wordwrap.String(s.ErrorMessage, width))
	case s.Phase == session.PhaseSucceeded && strings.TrimSpace(s.Result) != "":
		return paragraphStyle.Render(wordwrap.String(s.Result, width))
	default:
		return helperStyle.Render(placeholderTop) + "\n" + helperStyle.Render(wordwrap.String(placeholderSub, width))
	}
}

func (m *model) View() string {
	parts := []string{
		m.headerView(),
		m.inputPanel(),
		m.resultPanel(),
		m.statusView(),
	}
	if m.helpVisible {
		parts = append(parts, m.keyLegendView())
	}
	return joinNonEmpty(parts)
}

func (m *model) headerView() string {
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(appTitle), taglineStyle.Render(tagline))
}

func (m *model) inputPanel() string {
	var button string
	switch {
	case m.session.Loading():
		button = buttonDisabledStyle.Render("Generating...")
	case !m.session.CanSubmit():
		button = buttonDisabledStyle.Render("Generate")
	default:
		button = buttonStyle.Render("Generate")
	}
	hint := helperStyle.Render("  Enter to generate, Alt+Enter for a new line")
	body := m.input.View() + "\n" + lipgloss.JoinHorizontal(lipgloss.Center, button, hint)
	return panelStyle.Width(m.layout.panelWidth - 2).Render(body)
}

func (m *model) resultPanel() string {
	style := panelStyle
	if m.session.Phase() == session.PhaseFailed {
		style = errorPanelStyle
	}
	return style.Width(m.layout.panelWidth - 2).Render(m.viewport.View())
}

func (m *model) statusView() string {
	stats := []string{
		m.generatorName(),
		m.session.Phase().String(),
		fmt.Sprintf("%d chars", len([]rune(m.session.Prompt()))),
	}
	if m.infoMessage != "" {
		stats = append(stats, m.infoMessage)
	}
	return statusBarStyle.Render(strings.Join(stats, "  •  ")) + helperStyle.Render("  F1 keys")
}

func (m *model) keyLegendView() string {
	bindings := m.keys.legend()
	const columns = 4
	var rows []string
	for i := 0; i < len(bindings); i += columns {
		end := i + columns
		if end > len(bindings) {
			end = len(bindings)
		}
		var cells []string
		for _, binding := range bindings[i:end] {
			help := binding.Help()
			cells = append(cells, lipgloss.JoinHorizontal(lipgloss.Top,
				keyStyle.Render(help.Key),
				keyDescStyle.Render(" "+help.Desc+"  "),
			))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return legendBoxStyle.Render(strings.Join(rows, "\n"))
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n")
}
