package views

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/fman/internal/ui/models"
	"github.com/Cyclone1070/fman/internal/workflow"
)

// RenderHeader renders the path bar.
func RenderHeader(s models.State) string {
	path := "No directory selected"
	if s.HasRoot() {
		path = s.Root
	}
	return HeaderStyle.Render("fman") + "  " + PathStyle.Render(path)
}

// RenderActions renders the six action keys. They are greyed out with no root and
// while a command is armed.
func RenderActions(s models.State) string {
	_, armed := s.Armed()
	enabled := s.HasRoot() && !armed && !s.Busy

	parts := make([]string, 0, len(workflow.AllCommands()))
	for i, kind := range workflow.AllCommands() {
		label := fmt.Sprintf("[%d] %s", i+1, kind.Title())
		if enabled {
			parts = append(parts, ActionStyle.Render(label))
		} else {
			parts = append(parts, DisabledStyle.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}
