package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mason-build/mason/internal/archetype"
	"github.com/mason-build/mason/internal/buildfile"
	"github.com/mason-build/mason/internal/output"
	"github.com/mason-build/mason/internal/workspace"
)

// LinkCmd creates and returns the 'link' command for wiring an existing
// module into the app's dependency list.
func LinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link <path> <name> [archetype]",
		Short: "Link an existing module into the app's dependency list",
		Long: `Inserts a dependency on //<path>:<name> into the app declaration file.

The insertion category is inferred from the path prefix (Core/, Data/,
Common/, Features/) unless an archetype is given explicitly. Linking is
idempotent: a reference that is already present is left alone.

Example:
  mason link Features/Login Login`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg := strings.Trim(strings.TrimPrefix(args[0], "//"), "/")
			name := args[1]

			var cat buildfile.Category
			if len(args) > 2 {
				arch, err := archetype.Lookup(args[2])
				if err != nil {
					return err
				}
				cat = arch.Category
			} else {
				cat = buildfile.CategoryForPath(pkg)
			}

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}
			root, err := workspace.FindRoot(cwd)
			if err != nil {
				return err
			}
			cfg, err := workspace.LoadConfig(root)
			if err != nil {
				return err
			}

			ref := "//" + pkg + ":" + name
			output.Verbose(fmt.Sprintf("Linking %s (category %s) into %s", ref, cat, cfg.AppDeclaration))

			res, err := buildfile.LinkDep(cfg.AppDeclarationPath(root), ref, cat)
			if err != nil {
				return err
			}
			reportLink(ref, cfg.AppDeclaration, res)

			return nil
		},
	}

	return cmd
}
