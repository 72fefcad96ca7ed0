package cli

import (
	"errors"
	"fmt"

	"github.com/Cyclone1070/fman/internal/audit"
	"github.com/Cyclone1070/fman/internal/tool/fileop"
	"github.com/Cyclone1070/fman/internal/workflow"
	"github.com/spf13/cobra"
)

// execJSON is the --json shape of one executed command.
type execJSON struct {
	Command string       `json:"command"`
	Paths   []string     `json:"paths,omitempty"`
	Audit   *audit.Entry `json:"audit,omitempty"`
	Error   string       `json:"error,omitempty"`
}

func newExecCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "exec COMMAND NAME [NEW_NAME]",
		Short: "Run one create, delete or rename command",
		Long: `Run one command against --root.

Commands: create_folder, delete_folder, rename_folder, create_file, delete_file,
rename_file. Renames take the current and the new name; the others take one name.`,
		Example: `  fman exec --root ~/notes create_folder drafts
  fman exec --root ~/notes rename-file todo.txt done.txt`,
		Args:    cobra.RangeArgs(2, 3),
		GroupID: "operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := workflow.ParseCommandKind(args[0])
			if err != nil {
				return err
			}

			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.chooseRoot(s.rootPath(opts)); err != nil {
				return err
			}
			if err := s.engine.Arm(kind); err != nil {
				return err
			}
			out, err := s.engine.Submit(cmd.Context(), args[1:]...)
			return reportExec(cmd, opts, kind, out, err)
		},
	}
}

func reportExec(cmd *cobra.Command, opts *options, kind workflow.CommandKind, out fileop.Outcome, err error) error {
	w := cmd.OutOrStdout()

	// Rejected before reaching the filesystem: nothing was audited.
	var vErr *workflow.ValidationError
	if errors.As(err, &vErr) {
		return fmt.Errorf("%s: %w", kind, err)
	}

	if opts.jsonOutput {
		res := execJSON{Command: kind.String(), Paths: out.Paths}
		if out.Entry.ID != "" {
			entry := out.Entry
			res.Audit = &entry
		}
		if err != nil {
			res.Error = err.Error()
		}
		if encErr := outputJSON(w, res); encErr != nil {
			return encErr
		}
	} else if out.Entry.ID != "" {
		printAudit(w, out.Entry)
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrReported, err)
	}
	if out.SnapshotErr != nil {
		printWarning(cmd.ErrOrStderr(), fmt.Sprintf("failed to refresh the listing: %v", out.SnapshotErr))
	}
	return nil
}
