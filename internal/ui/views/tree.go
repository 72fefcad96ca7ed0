package views

import (
	"strings"

	"github.com/Cyclone1070/fman/internal/tool/directory"
	"github.com/Cyclone1070/fman/internal/ui/models"
)

// RenderTree renders the directory listing.
func RenderTree(s models.State) string {
	if !s.HasRoot() {
		return DisabledStyle.Render("No directory chosen. Press b to choose one.")
	}
	if len(s.Entries) == 0 {
		return DisabledStyle.Render("(empty directory)")
	}
	return s.Tree.View()
}

// FormatTreeContent formats entries for the tree viewport, in listing order.
func FormatTreeContent(entries []directory.Entry, hideDot bool) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if hideDot && strings.HasPrefix(e.Name, ".") {
			continue
		}
		lines = append(lines, formatEntry(e))
	}
	return strings.Join(lines, "\n")
}

func formatEntry(e directory.Entry) string {
	if e.Ignored {
		suffix := ""
		if e.IsDir() {
			suffix = "/"
		}
		return IgnoredStyle.Render("  " + e.Name + suffix + " (ignored)")
	}
	if e.IsDir() {
		return DirStyle.Render("▸ " + e.Name + "/")
	}
	return FileStyle.Render("  " + e.Name)
}
