// Package workflow implements the armed-command state machine: at most one mutating
// command awaits input at a time, and every accepted submission returns it to idle.
package workflow

import (
	"fmt"
	"strings"
)

// Phase is the coarse workflow state.
type Phase int

const (
	Idle Phase = iota
	AwaitingInput
)

func (p Phase) String() string {
	if p == AwaitingInput {
		return "awaiting_input"
	}
	return "idle"
}

// State is a value snapshot of the workflow. Command is zero while Idle.
type State struct {
	Phase   Phase
	Command CommandKind
}

// Armed returns the armed command, if any.
func (s State) Armed() (CommandKind, bool) {
	return s.Command, s.Phase == AwaitingInput
}

func (s State) String() string {
	if s.Phase == AwaitingInput {
		return fmt.Sprintf("awaiting_input(%s)", s.Command)
	}
	return "idle"
}

// Workflow is not safe for concurrent use; the engine serializes access to it.
type Workflow struct {
	state State
	draft []string
}

// New returns a workflow in the Idle state.
func New() *Workflow {
	return &Workflow{}
}

// State returns the current state.
func (w *Workflow) State() State {
	return w.state
}

// Arm selects kind as the single armed command. Arming while armed replaces the previous
// command and drops its partial input.
func (w *Workflow) Arm(kind CommandKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownCommand, int(kind))
	}
	w.state = State{Phase: AwaitingInput, Command: kind}
	w.draft = make([]string, kind.Arity())
	return nil
}

// Reset returns to Idle and drops any partial input.
func (w *Workflow) Reset() {
	w.state = State{}
	w.draft = nil
}

// SetDraft records partial input for slot index of the armed command.
func (w *Workflow) SetDraft(index int, value string) error {
	if w.state.Phase != AwaitingInput {
		return ErrNotArmed
	}
	if index < 0 || index >= len(w.draft) {
		return fmt.Errorf("%w: %d", ErrInputIndex, index)
	}
	w.draft[index] = value
	return nil
}

// Draft returns a copy of the partial input held for the armed command.
func (w *Workflow) Draft() []string {
	out := make([]string, len(w.draft))
	copy(out, w.draft)
	return out
}

// Validate checks inputs against the armed command without changing state.
func (w *Workflow) Validate(inputs []string) error {
	kind, ok := w.state.Armed()
	if !ok {
		return ErrNotArmed
	}
	if len(inputs) != kind.Arity() {
		return &ValidationError{Command: kind, Index: -1, Want: kind.Arity(), Got: len(inputs), Cause: ErrWrongArity}
	}
	for i, in := range inputs {
		if strings.TrimSpace(in) == "" {
			return &ValidationError{Command: kind, Index: i, Want: kind.Arity(), Got: len(inputs), Cause: ErrEmptyInput}
		}
	}
	return nil
}

// Submit validates inputs and, when they fit, hands the armed command and a copy of the
// inputs to run. The workflow is back to Idle once run returns, whatever run did.
// On a validation error run is not called and the command stays armed.
func (w *Workflow) Submit(inputs []string, run func(kind CommandKind, inputs []string)) error {
	if err := w.Validate(inputs); err != nil {
		return err
	}

	kind := w.state.Command
	defer w.Reset()

	args := make([]string, len(inputs))
	copy(args, inputs)
	run(kind, args)
	return nil
}
