package workspace

import (
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/mason-build/mason/internal/archetype"
)

// Module is one scaffolded module discovered in the workspace.
type Module struct {
	Name      string
	Archetype string
	Dir       string // workspace-relative package path
}

// Modules scans each archetype's parent directory for module packages. A
// subdirectory counts as a module when it carries a BUILD.bazel. Missing
// parent directories are fine; a fresh workspace simply has no modules yet.
func Modules(root string) ([]Module, error) {
	var modules []Module

	for _, a := range archetype.All() {
		parent := filepath.Join(root, a.Parent)
		entries, err := os.ReadDir(parent)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}

		var names []string
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			buildFile := filepath.Join(parent, entry.Name(), "BUILD.bazel")
			if _, err := os.Stat(buildFile); err == nil {
				names = append(names, entry.Name())
			}
		}
		sort.Strings(names)

		for _, name := range names {
			modules = append(modules, Module{
				Name:      name,
				Archetype: a.Kind,
				Dir:       path.Join(a.Parent, name),
			})
		}
	}

	return modules, nil
}
