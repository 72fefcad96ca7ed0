package cli

import (
	"fmt"
	"os"

	"github.com/Cyclone1070/fman/internal/plan"
	"github.com/spf13/cobra"
)

type stepJSON struct {
	Index   int      `json:"index"`
	Command string   `json:"command"`
	Names   []string `json:"names"`
	Message string   `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
}

type reportJSON struct {
	Steps     []stepJSON `json:"steps"`
	Succeeded int        `json:"succeeded"`
	Failed    int        `json:"failed"`
	Skipped   int        `json:"skipped"`
}

func newRunCmd(opts *options) *cobra.Command {
	var keepGoing bool

	cmd := &cobra.Command{
		Use:   "run PLAN",
		Short: "Run a JSON plan of commands in order",
		Long: `Run every step of PLAN against --root, one after another.

PLAN is a JSON array of {"command": "...", "names": [...]} objects, or an object
with a "steps" array. Steps are not transactional: completed steps stay done when
a later one fails.`,
		Args:    cobra.ExactArgs(1),
		GroupID: "operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read plan: %w", err)
			}
			steps, err := plan.Parse(data)
			if err != nil {
				return fmt.Errorf("failed to parse plan %s: %w", args[0], err)
			}

			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.chooseRoot(s.rootPath(opts)); err != nil {
				return err
			}

			report, runErr := plan.Run(cmd.Context(), s.engine, steps, keepGoing)
			if err := printReport(cmd, opts, report); err != nil {
				return err
			}
			if runErr != nil {
				return fmt.Errorf("%w: %w", ErrReported, runErr)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&keepGoing, "keep-going", "k", false, "Continue with the next step after a failure")
	return cmd
}

func printReport(cmd *cobra.Command, opts *options, report plan.Report) error {
	w := cmd.OutOrStdout()
	failed := report.Failed()
	succeeded := len(report.Results) - failed

	if opts.jsonOutput {
		res := reportJSON{
			Steps:     make([]stepJSON, 0, len(report.Results)),
			Succeeded: succeeded,
			Failed:    failed,
			Skipped:   report.Skipped,
		}
		for _, r := range report.Results {
			step := stepJSON{Index: r.Index, Command: r.Step.Kind.String(), Names: r.Step.Names, Message: r.Outcome.Entry.Message}
			if r.Err != nil {
				step.Error = r.Err.Error()
			}
			res.Steps = append(res.Steps, step)
		}
		return outputJSON(w, res)
	}

	for _, r := range report.Results {
		switch {
		case r.Err == nil, r.Outcome.Entry.ID != "":
			printAudit(w, r.Outcome.Entry)
		default:
			printError(w, fmt.Sprintf("step %d (%s): %v", r.Index+1, r.Step.Kind, r.Err))
		}
	}
	_, _ = dimColor.Fprintf(w, "%d succeeded, %d failed, %d skipped\n", succeeded, failed, report.Skipped)
	return nil
}
