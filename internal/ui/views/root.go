package views

import (
	"github.com/Cyclone1070/fman/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

// RenderRoot renders the complete UI layout
func RenderRoot(s models.State, footer string) string {
	// Help overlays everything
	if s.ShowHelp {
		return lipgloss.Place(
			s.Width,
			s.Height,
			lipgloss.Center,
			lipgloss.Center,
			PanelStyle.Render(s.HelpText),
			lipgloss.WithWhitespaceChars(""),
			lipgloss.WithWhitespaceForeground(lipgloss.Color("0")),
		)
	}

	body := RenderTree(s)
	if s.ShowLogs {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", RenderLogs(s))
	}

	sections := []string{
		RenderHeader(s),
		RenderActions(s),
		"",
		body,
		RenderInput(s),
		RenderStatus(s),
	}
	if footer != "" {
		sections = append(sections, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
