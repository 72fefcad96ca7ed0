package ui

import (
	"errors"

	"github.com/Cyclone1070/fman/internal/tool/fileop"
	"github.com/Cyclone1070/fman/internal/ui/models"
	"github.com/Cyclone1070/fman/internal/ui/services"
	"github.com/Cyclone1070/fman/internal/ui/views"
	"github.com/Cyclone1070/fman/internal/workflow"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Internal messages
type submitResultMsg struct {
	kind    workflow.CommandKind
	outcome fileop.Outcome
	err     error
}

// Update handles messages
func (m BubbleTeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if !m.state.Busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		return m, cmd

	case submitResultMsg:
		m.state.Busy = false
		m.handleSubmitResult(msg)
		m.sync()
		if _, armed := m.state.Armed(); armed {
			m.focusInput(m.state.Focus)
		}
		return m, nil
	}

	// Cursor blink and other input messages
	return m.updateInputs(msg)
}

// handleKeyPress handles keyboard input
func (m BubbleTeaModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Force) {
		return m, tea.Quit
	}

	// The engine is busy with a submission; only ctrl+c gets through.
	if m.state.Busy {
		return m, nil
	}

	if m.state.ShowHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Cancel, m.keys.Quit) {
			m.state.ShowHelp = false
		}
		return m, nil
	}

	if m.state.Browsing {
		return m.handleBrowseKey(msg)
	}

	if _, armed := m.state.Armed(); armed {
		return m.handleArmedKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Browse):
		m.state.Browsing = true
		m.state.Browse.SetValue(m.state.Root)
		m.state.Browse.CursorEnd()
		return m, m.state.Browse.Focus()

	case key.Matches(msg, m.keys.Clear):
		m.engine.ClearRoot()
		m.setStatus(models.PhaseDone, "Reset directory selection.")
		m.sync()

	case key.Matches(msg, m.keys.Actions):
		return m.arm(msg.String())

	case key.Matches(msg, m.keys.Logs):
		m.state.ShowLogs = !m.state.ShowLogs
		m.resize(m.state.Width, m.state.Height)

	case key.Matches(msg, m.keys.Help):
		m.state.ShowHelp = true

	case key.Matches(msg, m.keys.Up):
		m.state.Tree.LineUp(1)

	case key.Matches(msg, m.keys.Down):
		m.state.Tree.LineDown(1)
	}
	return m, nil
}

func (m BubbleTeaModel) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.state.Browsing = false
		m.state.Browse.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		path := m.state.Browse.Value()
		m.state.Browsing = false
		m.state.Browse.Blur()
		if _, err := m.engine.ChooseRoot(path); err != nil {
			m.setStatus(models.PhaseError, err.Error())
		} else {
			root, _ := m.engine.Root()
			m.setStatus(models.PhaseDone, "Changed directory to "+root)
		}
		m.sync()
		return m, nil
	}

	var cmd tea.Cmd
	m.state.Browse, cmd = m.state.Browse.Update(msg)
	return m, cmd
}

func (m BubbleTeaModel) handleArmedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.engine.Reset()
		m.setStatus(models.PhaseReady, "")
		m.sync()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		if n := len(m.state.Inputs); n > 0 {
			next := (m.state.Focus + 1) % n
			if msg.String() == "shift+tab" {
				next = (m.state.Focus - 1 + n) % n
			}
			return m, m.focusInput(next)
		}
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}

	return m.updateInputs(msg)
}

// arm selects the command bound to k. Actions need a root.
func (m BubbleTeaModel) arm(k string) (tea.Model, tea.Cmd) {
	kind, ok := services.CommandForKey(k)
	if !ok {
		return m, nil
	}
	if !m.state.HasRoot() {
		m.setStatus(models.PhaseError, "Choose a directory first.")
		return m, nil
	}
	if err := m.engine.Arm(kind); err != nil {
		m.setStatus(models.PhaseError, err.Error())
		return m, nil
	}

	m.state.Inputs = make([]textinput.Model, kind.Arity())
	for i, label := range kind.InputLabels() {
		in := textinput.New()
		in.Placeholder = label
		m.state.Inputs[i] = in
	}
	m.setStatus(models.PhaseReady, "")
	m.sync()
	return m, m.focusInput(0)
}

// submit hands the inputs to the engine off the UI goroutine.
func (m BubbleTeaModel) submit() (tea.Model, tea.Cmd) {
	kind, ok := m.state.Armed()
	if !ok {
		return m, nil
	}
	values := m.state.InputValues()

	m.state.Busy = true
	m.setStatus(models.PhaseExecuting, services.DescribeSubmission(kind, values))

	eng, ctx := m.engine, m.ctx
	run := func() tea.Msg {
		out, err := eng.Submit(ctx, values...)
		return submitResultMsg{kind: kind, outcome: out, err: err}
	}
	return m, tea.Batch(run, m.state.Spinner.Tick)
}

func (m *BubbleTeaModel) handleSubmitResult(msg submitResultMsg) {
	if msg.err == nil {
		m.setStatus(models.PhaseDone, msg.outcome.Entry.Message)
		return
	}

	var vErr *workflow.ValidationError
	switch {
	case errors.As(msg.err, &vErr):
		m.setStatus(models.PhaseError, vErr.Error())
	case msg.outcome.Entry.Message != "":
		m.setStatus(models.PhaseError, msg.outcome.Entry.Message)
	default:
		m.setStatus(models.PhaseError, msg.err.Error())
	}
}

// updateInputs forwards msg to the focused input and mirrors its value into the engine draft.
func (m BubbleTeaModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state.Browsing {
		var cmd tea.Cmd
		m.state.Browse, cmd = m.state.Browse.Update(msg)
		return m, cmd
	}
	if m.state.Focus < 0 || m.state.Focus >= len(m.state.Inputs) {
		return m, nil
	}

	var cmd tea.Cmd
	i := m.state.Focus
	m.state.Inputs[i], cmd = m.state.Inputs[i].Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		_ = m.engine.SetDraft(i, m.state.Inputs[i].Value())
	}
	return m, cmd
}

func (m *BubbleTeaModel) focusInput(i int) tea.Cmd {
	if i < 0 || i >= len(m.state.Inputs) {
		return nil
	}
	m.state.Focus = i
	var cmd tea.Cmd
	for j := range m.state.Inputs {
		if j == i {
			cmd = m.state.Inputs[j].Focus()
		} else {
			m.state.Inputs[j].Blur()
		}
	}
	return cmd
}

func (m *BubbleTeaModel) setStatus(phase, message string) {
	m.state.StatusPhase = phase
	m.state.StatusMessage = message
}

// sync pulls root, snapshot, workflow state and audit log from the engine.
func (m *BubbleTeaModel) sync() {
	root, _ := m.engine.Root()
	m.state.Root = root

	snap := m.engine.CurrentSnapshot()
	m.state.Entries = snap.Entries()
	m.state.Tree.SetContent(views.FormatTreeContent(m.state.Entries, m.state.HideDotEntries))

	m.state.Workflow = m.engine.State()
	if _, armed := m.state.Armed(); !armed {
		m.state.Inputs = nil
		m.state.Focus = 0
	}

	m.state.Logs = m.engine.AuditLog()
	m.state.LogView.SetContent(views.FormatLogContent(m.state.Logs))
	m.state.LogView.GotoBottom()
}

// resize lays the panels out for a terminal of w×h.
func (m *BubbleTeaModel) resize(w, h int) {
	m.state.Width = w
	m.state.Height = h

	// Header, actions, spacer, input panel, status and footer
	body := h - 10
	if body < 3 {
		body = 3
	}
	treeWidth := w
	if m.state.ShowLogs {
		treeWidth = w / 2
		m.state.LogView.Width = w - treeWidth - 6
		m.state.LogView.Height = max(body-4, 1)
	}
	m.state.Tree.Width = treeWidth
	m.state.Tree.Height = body
	m.help.Width = w
	m.renderHelp()
}

func (m *BubbleTeaModel) renderHelp() {
	width := m.state.Width - 6
	if width <= 0 {
		width = 74
	}
	m.state.HelpText = services.RenderMarkdown(services.HelpMarkdown(), width, m.renderer)
}
