// Package scaffold renders module archetypes into directory trees and
// source stubs. It only plans operations; execution (and the skip-if-exists
// policy) lives in the generator executor.
package scaffold

import (
	"embed"
	"fmt"
	"path/filepath"

	"github.com/mason-build/mason/internal/archetype"
	"github.com/mason-build/mason/internal/generator"
)

//go:embed templates
var templatesFS embed.FS

// Data is the substitution context available to every template, including
// target-path templates.
type Data struct {
	Name     string // module name, used verbatim as an identifier
	BundleID string // bundle identifier for the dev harness app
}

// Scaffolder plans module creation inside a workspace.
type Scaffolder struct {
	root     string
	renderer *generator.Renderer
}

// New creates a scaffolder rooted at the workspace directory.
func New(root string) *Scaffolder {
	return &Scaffolder{
		root:     root,
		renderer: generator.NewRenderer(),
	}
}

// Plan returns the operations that materialize a module of the given
// archetype: one MkdirOp per subdirectory followed by one WriteFileOp per
// rendered template. Directory creation is idempotent; file conflicts are
// resolved by the executor (skipped by default).
func (s *Scaffolder) Plan(arch archetype.Archetype, name string) ([]generator.Operation, error) {
	if name == "" {
		return nil, fmt.Errorf("module name must not be empty")
	}

	data := Data{
		Name:     name,
		BundleID: "dev.mason." + arch.Kind + "." + name,
	}

	moduleDir := filepath.Join(s.root, arch.Dir(name))

	var ops []generator.Operation
	for _, sub := range arch.Subdirs {
		ops = append(ops, &generator.MkdirOp{Path: filepath.Join(moduleDir, filepath.FromSlash(sub))})
	}

	for _, tmpl := range arch.Templates {
		target, err := s.renderer.RenderString("target:"+tmpl.Source, tmpl.Target, data)
		if err != nil {
			return nil, fmt.Errorf("rendering target path for %s: %w", tmpl.Source, err)
		}

		content, err := s.renderer.RenderFS(templatesFS, "templates/"+tmpl.Source, data)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", tmpl.Source, err)
		}

		ops = append(ops, &generator.WriteFileOp{
			Path:    filepath.Join(moduleDir, filepath.FromSlash(string(target))),
			Content: content,
			Mode:    0644,
		})
	}

	return ops, nil
}
