package root

import (
	"github.com/flarebyte/seshat-papyri/cmd/seshat/greet"
	"github.com/flarebyte/seshat-papyri/cmd/seshat/run"
	"github.com/flarebyte/seshat-papyri/cmd/seshat/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for seshat.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seshat",
		Short: "CLI: a small scribe that reads and writes papyri under a base directory and keeps the tally",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Subcommands
	cmd.AddCommand(version.VersionCmd)
	cmd.AddCommand(greet.Cmd)
	cmd.AddCommand(run.Cmd)

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
