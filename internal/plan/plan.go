// Package plan runs a sequence of commands read from a JSON file. Steps run one at a
// time through the engine; there is no rollback when a step fails.
package plan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Cyclone1070/fman/internal/tool/fileop"
	"github.com/Cyclone1070/fman/internal/workflow"
	"github.com/mitchellh/mapstructure"
)

// -- Sentinels --

var (
	ErrEmptyPlan  = errors.New("plan has no steps")
	ErrStepFailed = errors.New("plan step failed")
)

// StepDTO is the wire format of one step.
type StepDTO struct {
	Command string   `mapstructure:"command"`
	Names   []string `mapstructure:"names"`
}

// Step is a decoded step. Names are checked against the command arity only when run.
type Step struct {
	Kind  workflow.CommandKind
	Names []string
}

// StepError points at the step that could not be decoded or did not succeed.
type StepError struct {
	Index int
	Step  Step
	Cause error
}

func (e *StepError) Error() string {
	if e.Step.Kind.Valid() {
		return fmt.Sprintf("step %d (%s): %v", e.Index+1, e.Step.Kind, e.Cause)
	}
	return fmt.Sprintf("step %d: %v", e.Index+1, e.Cause)
}

func (e *StepError) Unwrap() error {
	return e.Cause
}

// Parse reads a plan: either a JSON array of steps or an object with a "steps" array.
func Parse(data []byte) ([]Step, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}

	var items []any
	switch v := raw.(type) {
	case []any:
		items = v
	case map[string]any:
		steps, ok := v["steps"].([]any)
		if !ok {
			return nil, errors.New("invalid plan: object must have a \"steps\" array")
		}
		items = steps
	default:
		return nil, errors.New("invalid plan: expected an array of steps")
	}
	if len(items) == 0 {
		return nil, ErrEmptyPlan
	}

	steps := make([]Step, 0, len(items))
	for i, item := range items {
		step, err := decodeStep(item)
		if err != nil {
			return nil, &StepError{Index: i, Cause: err}
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func decodeStep(item any) (Step, error) {
	var dto StepDTO
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &dto,
	})
	if err != nil {
		return Step{}, err
	}
	if err := decoder.Decode(item); err != nil {
		return Step{}, fmt.Errorf("invalid arguments: %w", err)
	}

	kind, err := workflow.ParseCommandKind(dto.Command)
	if err != nil {
		return Step{}, err
	}
	return Step{Kind: kind, Names: dto.Names}, nil
}

// runner is the slice of the engine a plan needs.
type runner interface {
	Arm(kind workflow.CommandKind) error
	Submit(ctx context.Context, inputs ...string) (fileop.Outcome, error)
	Reset()
}

// StepResult is the outcome of one executed step.
type StepResult struct {
	Index   int
	Step    Step
	Outcome fileop.Outcome
	Err     error
}

// Report lists what ran, in order.
type Report struct {
	Results []StepResult
	// Skipped counts steps not run after a stop.
	Skipped int
}

// Failed returns the number of failed steps.
func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Run executes steps in order. Without keepGoing it stops at the first failure; with it
// every step is attempted. The returned error wraps the first failure and ErrStepFailed.
// A cancelled ctx stops the run between steps.
func Run(ctx context.Context, r runner, steps []Step, keepGoing bool) (Report, error) {
	var report Report
	var first error

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			report.Skipped = len(steps) - i
			if first == nil {
				first = err
			}
			return report, first
		}

		out, err := runStep(ctx, r, step)
		report.Results = append(report.Results, StepResult{Index: i, Step: step, Outcome: out, Err: err})
		if err == nil {
			continue
		}

		if first == nil {
			first = fmt.Errorf("%w: %w", ErrStepFailed, &StepError{Index: i, Step: step, Cause: err})
		}
		if !keepGoing {
			report.Skipped = len(steps) - i - 1
			return report, first
		}
	}
	return report, first
}

func runStep(ctx context.Context, r runner, step Step) (fileop.Outcome, error) {
	if err := r.Arm(step.Kind); err != nil {
		return fileop.Outcome{}, err
	}
	out, err := r.Submit(ctx, step.Names...)
	if err != nil {
		// A rejected submission leaves the command armed.
		r.Reset()
	}
	return out, err
}
