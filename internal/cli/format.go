package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Cyclone1070/fman/internal/audit"
	"github.com/Cyclone1070/fman/internal/tool/directory"
	"github.com/fatih/color"
)

var (
	// fatih/color disables these when stdout is not a TTY
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	dirColor     = color.New(color.FgBlue, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

// FormatError formats an error for display.
func FormatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

func printSuccess(w io.Writer, msg string) {
	_, _ = successColor.Fprintf(w, "✓ %s\n", msg)
}

func printWarning(w io.Writer, msg string) {
	_, _ = warningColor.Fprintf(w, "⚠ %s\n", msg)
}

func printError(w io.Writer, msg string) {
	_, _ = errorColor.Fprintf(w, "✗ %s\n", msg)
}

// printAudit prints an audit entry with the marker for its level.
func printAudit(w io.Writer, e audit.Entry) {
	if e.Level == audit.LevelError {
		printError(w, e.Message)
		return
	}
	printSuccess(w, e.Message)
}

// printEntry prints one snapshot line: kind marker, name, and "!" for ignored entries.
func printEntry(w io.Writer, e directory.Entry) {
	marker, name := "f", e.Name
	if e.IsDir() {
		marker = "d"
		name = dirColor.Sprint(e.Name + "/")
	}
	if e.Ignored {
		_, _ = fmt.Fprintf(w, "%s  %s %s\n", marker, name, dimColor.Sprint("!"))
		return
	}
	_, _ = fmt.Fprintf(w, "%s  %s\n", marker, name)
}

// outputJSON writes v as indented JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
