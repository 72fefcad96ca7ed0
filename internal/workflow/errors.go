package workflow

import (
	"errors"
	"fmt"
)

// -- Sentinels --

var (
	ErrNotArmed       = errors.New("no command is armed")
	ErrUnknownCommand = errors.New("unknown command")
	ErrWrongArity     = errors.New("wrong number of inputs")
	ErrEmptyInput     = errors.New("input must not be empty")
	ErrInputIndex     = errors.New("input index out of range")
)

// ValidationError is returned when submitted inputs do not fit the armed command.
// The workflow stays armed so the caller can retry.
type ValidationError struct {
	Command CommandKind
	Index   int // offending input for empty values, -1 for arity problems
	Want    int
	Got     int
	Cause   error
}

func (e *ValidationError) Error() string {
	if errors.Is(e.Cause, ErrWrongArity) {
		return fmt.Sprintf("%s expects %d input(s), got %d", e.Command.Title(), e.Want, e.Got)
	}
	return fmt.Sprintf("%s: input %d must not be empty", e.Command.Title(), e.Index+1)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

func (e *ValidationError) InvalidInput() bool {
	return true
}
