package views

import (
	"fmt"

	"github.com/Cyclone1070/fman/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

// RenderStatus renders the status bar
func RenderStatus(s models.State) string {
	var icon string
	var style lipgloss.Style

	switch s.StatusPhase {
	case models.PhaseExecuting:
		icon = s.Spinner.View()
		style = StatusExecutingStyle
	case models.PhaseDone:
		icon = "✔"
		style = StatusDoneStyle
	case models.PhaseError:
		icon = "✘"
		style = StatusErrorStyle
	default:
		style = StatusDefaultStyle
	}

	status := "Ready"
	if s.StatusMessage != "" {
		status = s.StatusMessage
		if icon != "" {
			status = fmt.Sprintf("%s %s", icon, s.StatusMessage)
		}
	} else if icon != "" {
		status = icon
	}

	leftSide := style.Render(status)

	// Right side: armed command
	if kind, ok := s.Armed(); ok {
		return fmt.Sprintf("%s  %s", leftSide, StatusDefaultStyle.Render("armed: "+kind.Title()))
	}
	return leftSide
}
