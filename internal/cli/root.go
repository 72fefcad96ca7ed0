// Package cli wires the fman commands: the terminal UI and the one-shot ls, exec and run.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Cyclone1070/fman/internal/config"
	"github.com/Cyclone1070/fman/internal/ui"
	"github.com/Cyclone1070/fman/internal/ui/services"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Colors for help output sections
	groupTitleColor   = color.New(color.FgCyan, color.Bold)
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// options are the global flags shared by every command.
type options struct {
	configPath  string
	logLevel    string
	metricsAddr string
	root        string
	jsonOutput  bool
}

// runTUI starts the terminal UI. Tests replace it.
var runTUI = func(ctx context.Context, eng ui.Engine, cfg *config.Config) error {
	return ui.NewUI(ctx, eng, cfg.UI, services.GlamourRenderer{}).Start()
}

// Execute runs the command line with ctx and returns the first error.
func Execute(ctx context.Context, version string) error {
	return newRootCmd(version).ExecuteContext(ctx)
}

func newRootCmd(version string) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:     "fman",
		Version: version,
		Short:   "Manage the immediate contents of one directory",
		Long: `fman lists one directory and creates, deletes or renames its files and folders.

Without a command it opens the terminal UI. Every attempted operation is recorded
in an audit log.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, opts)
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetHelpFunc(customHelpFunc)

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to a config file (default ~/.config/fman/config.json)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.StringVar(&opts.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")
	flags.StringVarP(&opts.root, "root", "r", "", "Directory to operate on (default $FMAN_ROOT)")
	flags.BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	cmd.AddGroup(&cobra.Group{ID: "directory", Title: "Directory:"})
	cmd.AddGroup(&cobra.Group{ID: "operations", Title: "Operations:"})

	cmd.AddCommand(
		newLsCmd(opts),
		newExecCmd(opts),
		newRunCmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print the fman version",
			Args:  cobra.NoArgs,
			Run: func(c *cobra.Command, args []string) {
				_, _ = fmt.Fprintln(c.OutOrStdout(), version)
			},
		},
	)
	return cmd
}

// runInteractive opens the terminal UI, selecting the root first when one is known.
func runInteractive(cmd *cobra.Command, opts *options) error {
	s, err := openSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	// A bad startup root is audited and shown in the log panel; the UI still opens.
	if root := s.rootPath(opts); root != "" {
		_ = s.chooseRoot(root)
	}
	return runTUI(cmd.Context(), s.engine, s.cfg)
}

// customHelpFunc colors group titles and lists grouped commands first.
func customHelpFunc(cmd *cobra.Command, args []string) {
	var help strings.Builder

	if cmd.Long != "" {
		help.WriteString(cmd.Long)
		help.WriteString("\n\n")
	} else if cmd.Short != "" {
		help.WriteString(cmd.Short)
		help.WriteString("\n\n")
	}

	help.WriteString(sectionTitleColor.Sprint("Usage:"))
	help.WriteString("\n")
	fmt.Fprintf(&help, "  %s\n\n", cmd.UseLine())

	for _, group := range cmd.Groups() {
		help.WriteString(groupTitleColor.Sprint(group.Title))
		help.WriteString("\n")
		for _, c := range cmd.Commands() {
			if c.GroupID == group.ID && !c.Hidden {
				fmt.Fprintf(&help, "  %-11s %s\n", c.Name(), c.Short)
			}
		}
		help.WriteString("\n")
	}

	hasUngrouped := false
	for _, c := range cmd.Commands() {
		if c.GroupID == "" && c.IsAvailableCommand() {
			if !hasUngrouped {
				help.WriteString(sectionTitleColor.Sprint("Additional Commands:"))
				help.WriteString("\n")
				hasUngrouped = true
			}
			fmt.Fprintf(&help, "  %-11s %s\n", c.Name(), c.Short)
		}
	}
	if hasUngrouped {
		help.WriteString("\n")
	}

	if cmd.HasAvailableLocalFlags() || cmd.HasAvailableInheritedFlags() {
		help.WriteString(sectionTitleColor.Sprint("Flags:"))
		help.WriteString("\n")
		help.WriteString(cmd.LocalFlags().FlagUsages())
		help.WriteString(cmd.InheritedFlags().FlagUsages())
		help.WriteString("\n")
	}

	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(&help, "Use \"%s [command] --help\" for more information about a command.\n", cmd.CommandPath())
	}

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}
