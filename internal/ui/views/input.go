package views

import (
	"strings"

	"github.com/Cyclone1070/fman/internal/ui/models"
)

// RenderInput renders the input panel: the root picker, the armed command's inputs, or a hint.
func RenderInput(s models.State) string {
	if s.Browsing {
		return InputStyle.Render(LabelStyle.Render("Directory:") + " " + s.Browse.View())
	}

	kind, ok := s.Armed()
	if !ok {
		return InputStyle.Render(DisabledStyle.Render("Choose an action with 1-6."))
	}

	labels := kind.InputLabels()
	lines := []string{HeaderStyle.Render(kind.Title())}
	for i, in := range s.Inputs {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		lines = append(lines, LabelStyle.Render(label)+" "+in.View())
	}
	return InputStyle.Render(strings.Join(lines, "\n"))
}
