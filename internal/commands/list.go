package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mason-build/mason/internal/output"
	"github.com/mason-build/mason/internal/workspace"
)

// ListCmd creates and returns the 'list' command.
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List scaffolded modules in the workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}
			root, err := workspace.FindRoot(cwd)
			if err != nil {
				return err
			}

			modules, err := workspace.Modules(root)
			if err != nil {
				return fmt.Errorf("scanning workspace: %w", err)
			}

			if name := workspace.ProjectName(root); name != "" {
				output.Info(fmt.Sprintf("Modules in %s:", name))
			} else {
				output.Info("Modules:")
			}

			if len(modules) == 0 {
				output.Step("(none yet; try `mason create feature Login`)")
				return nil
			}

			for _, m := range modules {
				output.Step(fmt.Sprintf("%-8s %s", m.Archetype, m.Dir))
			}

			return nil
		},
	}

	return cmd
}
