// Package models holds the plain state rendered by the terminal UI.
package models

import (
	"github.com/Cyclone1070/fman/internal/audit"
	"github.com/Cyclone1070/fman/internal/tool/directory"
	"github.com/Cyclone1070/fman/internal/workflow"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// Status phases shown in the status bar.
const (
	PhaseReady     = "ready"
	PhaseExecuting = "executing"
	PhaseDone      = "done"
	PhaseError     = "error"
)

// State is everything the views need to draw one frame.
type State struct {
	Width  int
	Height int

	// Directory
	Root    string
	Entries []directory.Entry
	Tree    viewport.Model

	// Workflow
	Workflow workflow.State
	Inputs   []textinput.Model
	Focus    int

	// Root picker
	Browsing bool
	Browse   textinput.Model

	// Panels
	ShowLogs bool
	Logs     []audit.Entry
	LogView  viewport.Model
	ShowHelp bool
	HelpText string

	// Status bar
	Busy          bool
	Spinner       spinner.Model
	StatusPhase   string
	StatusMessage string

	HideDotEntries bool
}

// HasRoot reports whether a directory is selected.
func (s State) HasRoot() bool {
	return s.Root != ""
}

// Armed returns the armed command, if any.
func (s State) Armed() (workflow.CommandKind, bool) {
	return s.Workflow.Armed()
}

// InputValues returns the current text of every input slot.
func (s State) InputValues() []string {
	values := make([]string, len(s.Inputs))
	for i, in := range s.Inputs {
		values[i] = in.Value()
	}
	return values
}
