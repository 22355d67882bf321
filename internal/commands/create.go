package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mason-build/mason/internal/archetype"
	"github.com/mason-build/mason/internal/buildfile"
	"github.com/mason-build/mason/internal/generator"
	"github.com/mason-build/mason/internal/input"
	"github.com/mason-build/mason/internal/output"
	"github.com/mason-build/mason/internal/scaffold"
	"github.com/mason-build/mason/internal/workspace"
)

// CreateCmd creates and returns the 'create' command for scaffolding modules.
func CreateCmd() *cobra.Command {
	var dryRun, force, diff, noLink bool

	cmd := &cobra.Command{
		Use:   "create <archetype> [name]",
		Short: "Scaffold a new module and link it into the app",
		Long: `Scaffolds a module of the given archetype (core, data, feature, common)
and links it into the app target's dependency list. Feature modules also get
a development harness app registered as a top-level Xcode target.

Existing files are skipped, not overwritten, so re-running is safe.

Example:
  mason create feature Login`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			arch, err := archetype.Lookup(args[0])
			if err != nil {
				return err
			}

			name := ""
			if len(args) > 1 {
				name = args[1]
			} else {
				name = input.Prompt("Module name", "")
			}
			if name == "" {
				return fmt.Errorf("module name is required")
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

			output.Verbose(fmt.Sprintf("Workspace root: %s", root))
			output.Verbose(fmt.Sprintf("Scaffolding %s module: %s", arch.Kind, name))

			ops, err := scaffold.New(root).Plan(arch, name)
			if err != nil {
				return err
			}

			ctx := context.Background()
			result, err := generator.Execute(ctx, ops, generator.ExecuteOptions{
				DryRun:   dryRun,
				Resolver: generator.NewResolver(force, diff),
				Writer:   output.Writer,
			})
			if err != nil {
				return err
			}
			output.Verbose(fmt.Sprintf("Created %d files, skipped %d", len(result.Created), len(result.Skipped)))

			if dryRun {
				output.Info("Dry run: no dependency links were written")
				return nil
			}

			if !noLink {
				if err := linkModule(cfg, root, arch, name); err != nil {
					return err
				}
			}

			output.Success(fmt.Sprintf("Created %s module: %s", arch.Kind, name))
			output.Info("Next steps:")
			output.Step(fmt.Sprintf("bazel build %s", arch.Label(name)))
			if arch.DevHarness {
				output.Step(fmt.Sprintf("bazel run %s", arch.HarnessLabel(name)))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show planned operations without writing anything")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files instead of skipping them")
	cmd.Flags().BoolVar(&diff, "diff", false, "Show a diff and ask before touching existing files")
	cmd.Flags().BoolVar(&noLink, "no-link", false, "Scaffold only; do not edit any declaration files")

	return cmd
}

// linkModule wires a freshly scaffolded module into the consuming
// declaration files: the app target's deps list, and for features also the
// root declaration's top_level_targets.
func linkModule(cfg *workspace.Config, root string, arch archetype.Archetype, name string) error {
	appDecl := cfg.AppDeclarationPath(root)
	res, err := buildfile.LinkDep(appDecl, arch.Label(name), arch.Category)
	if err != nil {
		return fmt.Errorf("linking %s into %s: %w", arch.Label(name), cfg.AppDeclaration, err)
	}
	reportLink(arch.Label(name), cfg.AppDeclaration, res)

	if arch.DevHarness {
		rootDecl := cfg.RootDeclarationPath(root)
		res, err := buildfile.LinkTopLevelTarget(rootDecl, arch.HarnessLabel(name))
		if err != nil {
			return fmt.Errorf("registering %s in %s: %w", arch.HarnessLabel(name), cfg.RootDeclaration, err)
		}
		reportLink(arch.HarnessLabel(name), cfg.RootDeclaration, res)
	}

	return nil
}

func reportLink(ref, file string, res buildfile.LinkResult) {
	if res == buildfile.AlreadyLinked {
		output.Warn(fmt.Sprintf("%s already linked in %s", ref, file))
	} else {
		output.Info(fmt.Sprintf("Linked %s in %s", ref, file))
	}
}
