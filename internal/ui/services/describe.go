package services

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/fman/internal/workflow"
)

// DescribeSubmission is the status bar text while a command runs.
func DescribeSubmission(kind workflow.CommandKind, inputs []string) string {
	switch kind {
	case workflow.RenameFolder, workflow.RenameFile:
		if len(inputs) == 2 {
			return fmt.Sprintf("%s %s → %s", kind.Title(), inputs[0], inputs[1])
		}
	default:
		if len(inputs) == 1 {
			return fmt.Sprintf("%s %s", kind.Title(), inputs[0])
		}
	}
	return kind.Title()
}

// ActionKeys maps the number keys to commands, in display order.
func ActionKeys() []string {
	keys := make([]string, 0, len(workflow.AllCommands()))
	for i := range workflow.AllCommands() {
		keys = append(keys, fmt.Sprint(i+1))
	}
	return keys
}

// CommandForKey returns the command bound to a number key.
func CommandForKey(k string) (workflow.CommandKind, bool) {
	for i, kind := range workflow.AllCommands() {
		if k == fmt.Sprint(i+1) {
			return kind, true
		}
	}
	return 0, false
}

// HelpMarkdown is the text of the help screen.
func HelpMarkdown() string {
	var sb strings.Builder
	sb.WriteString("# fman\n\n")
	sb.WriteString("Manage the immediate contents of one directory.\n\n")
	sb.WriteString("## Directory\n\n")
	sb.WriteString("| Key | Action |\n|---|---|\n")
	sb.WriteString("| `b` | Choose a directory |\n")
	sb.WriteString("| `x` | Clear the selection |\n\n")
	sb.WriteString("## Actions\n\n")
	sb.WriteString("| Key | Action | Inputs |\n|---|---|---|\n")
	for i, kind := range workflow.AllCommands() {
		fmt.Fprintf(&sb, "| `%d` | %s | %s |\n", i+1, kind.Title(), strings.Join(kind.InputLabels(), " "))
	}
	sb.WriteString("\nPress `enter` to submit, `tab` to switch inputs and `esc` to cancel. ")
	sb.WriteString("Actions are unavailable until a directory is chosen and while one is armed.\n\n")
	sb.WriteString("## Other\n\n")
	sb.WriteString("| Key | Action |\n|---|---|\n")
	sb.WriteString("| `l` | Toggle the log panel |\n")
	sb.WriteString("| `?` | Toggle this help |\n")
	sb.WriteString("| `q` | Quit |\n")
	return sb.String()
}
