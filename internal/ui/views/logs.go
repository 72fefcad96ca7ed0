package views

import (
	"strings"

	"github.com/Cyclone1070/fman/internal/audit"
	"github.com/Cyclone1070/fman/internal/ui/models"
)

// RenderLogs renders the log panel.
func RenderLogs(s models.State) string {
	if len(s.Logs) == 0 {
		return PanelStyle.Render("Logs\n\n" + DisabledStyle.Render("Nothing yet."))
	}
	return PanelStyle.Render("Logs\n\n" + s.LogView.View())
}

// FormatLogContent formats audit entries oldest first, one per line.
func FormatLogContent(entries []audit.Entry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		line := e.Timestamp.Format("15:04:05") + " " + e.String()
		if e.Level == audit.LevelError {
			lines = append(lines, LogErrorStyle.Render(line))
		} else {
			lines = append(lines, LogInfoStyle.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}
