// Package ui is the terminal front end: it draws the engine's snapshot, workflow and
// audit log with Bubble Tea and turns key presses into engine calls.
package ui

import (
	"context"
	"time"

	"github.com/Cyclone1070/fman/internal/config"
	"github.com/Cyclone1070/fman/internal/ui/models"
	"github.com/Cyclone1070/fman/internal/ui/services"
	"github.com/Cyclone1070/fman/internal/ui/views"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// SpinnerFactory creates a new spinner
type SpinnerFactory func() spinner.Model

// DefaultSpinner is the spinner shown while a command runs.
func DefaultSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return s
}

// UI runs the Bubble Tea program.
type UI struct {
	program *tea.Program
}

// NewUI creates the program. ctx is handed to every submission.
func NewUI(ctx context.Context, eng Engine, cfg config.UIConfig, renderer services.MarkdownRenderer) *UI {
	views.SetColors(cfg.ColorPrimary, cfg.ColorError, cfg.ColorMuted)
	model := newBubbleTeaModel(ctx, eng, cfg, renderer, DefaultSpinner)
	return &UI{program: tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))}
}

// Start runs the program until the user quits.
func (u *UI) Start() error {
	_, err := u.program.Run()
	return err
}

// BubbleTeaModel implements tea.Model
type BubbleTeaModel struct {
	state models.State

	// Dependencies
	ctx      context.Context
	engine   Engine
	renderer services.MarkdownRenderer
	keys     keyMap
	help     help.Model
}

func newBubbleTeaModel(
	ctx context.Context,
	eng Engine,
	cfg config.UIConfig,
	renderer services.MarkdownRenderer,
	spinnerFactory SpinnerFactory,
) BubbleTeaModel {
	browse := textinput.New()
	browse.Placeholder = "/path/to/directory"

	sp := spinnerFactory()
	if cfg.TickIntervalMs > 0 {
		sp.Spinner.FPS = time.Duration(cfg.TickIntervalMs) * time.Millisecond
	}

	m := BubbleTeaModel{
		state: models.State{
			Tree:           viewport.New(80, 15),
			LogView:        viewport.New(60, 15),
			Browse:         browse,
			Spinner:        sp,
			StatusPhase:    models.PhaseReady,
			HideDotEntries: cfg.HideDotEntries,
		},
		ctx:      ctx,
		engine:   eng,
		renderer: renderer,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
	m.renderHelp()
	m.sync()
	return m
}

// Init initializes the model
func (m BubbleTeaModel) Init() tea.Cmd {
	return textinput.Blink
}

// View renders the UI
func (m BubbleTeaModel) View() string {
	var footer string
	if _, armed := m.state.Armed(); armed {
		footer = m.help.View(armedKeys{m.keys})
	} else {
		footer = m.help.View(m.keys)
	}
	return views.RenderRoot(m.state, footer)
}
