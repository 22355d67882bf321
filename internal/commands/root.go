package commands

import (
	"github.com/spf13/cobra"

	mason "github.com/mason-build/mason"
	"github.com/mason-build/mason/internal/output"
)

// RootCmd creates and returns the root command for the mason CLI.
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "mason",
		Short: "Bazel module scaffolding for iOS Clean Architecture workspaces",
		Long: `Mason scaffolds Clean Architecture modules into a Bazel iOS workspace
and keeps the build graph wired up as modules are added.

• Scaffold core, data, feature and common modules from templates
• Link new modules into the app's dependency list, idempotently
• Register feature dev harnesses as top-level Xcode targets

Re-running any mason command is safe: existing files are never overwritten
and existing dependency edges are never duplicated.`,
		Version: mason.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
