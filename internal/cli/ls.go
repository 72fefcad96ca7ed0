package cli

import (
	"github.com/Cyclone1070/fman/internal/tool/directory"
	"github.com/spf13/cobra"
)

// entryJSON is the --json shape of one snapshot entry.
type entryJSON struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Kind    string `json:"kind"`
	Ignored bool   `json:"ignored"`
}

type snapshotJSON struct {
	Root    string      `json:"root"`
	Entries []entryJSON `json:"entries"`
}

func newLsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "ls [DIR]",
		Short:   "List the immediate contents of a directory",
		Long:    `List the files and folders directly inside DIR, or --root when DIR is omitted.`,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			root := s.rootPath(opts)
			if len(args) == 1 {
				root = args[0]
			}
			if err := s.chooseRoot(root); err != nil {
				return err
			}
			snap := s.engine.CurrentSnapshot()

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return outputJSON(out, toSnapshotJSON(snap))
			}
			if snap.Len() == 0 {
				printWarning(out, "Directory is empty")
				return nil
			}
			for _, e := range snap.Entries() {
				printEntry(out, e)
			}
			return nil
		},
	}
}

func toSnapshotJSON(snap directory.Snapshot) snapshotJSON {
	entries := snap.Entries()
	res := snapshotJSON{Root: snap.Root(), Entries: make([]entryJSON, 0, len(entries))}
	for _, e := range entries {
		res.Entries = append(res.Entries, entryJSON{
			Name:    e.Name,
			Path:    e.FullPath,
			Kind:    e.Kind.String(),
			Ignored: e.Ignored,
		})
	}
	return res
}
