// Package archetype defines the closed set of module kinds mason can
// scaffold. Each archetype is one table entry: its parent directory, the
// subdirectories to create, the templates to render and the insertion
// category used when linking the module into the app's dependency list.
// Adding an archetype is adding a row, not a branch.
package archetype

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/mason-build/mason/internal/buildfile"
)

// ErrInvalidArchetype is returned for any kind outside the registry.
var ErrInvalidArchetype = errors.New("invalid archetype")

// Archetype describes one module kind. Immutable once looked up; the whole
// downstream file layout is a deterministic function of archetype and name.
type Archetype struct {
	Kind       string              // CLI name: core, data, feature, common
	Parent     string              // parent directory in the workspace
	Subdirs    []string            // module-relative directories to create
	Templates  []Template          // files to render, in emission order
	Category   buildfile.Category  // where the module lands in deps lists
	DevHarness bool                // whether a standalone dev app target exists
}

// Template pairs an embedded template with its module-relative target path.
// The target path is itself rendered, so it can reference the module name.
type Template struct {
	Source string // path inside the scaffold template FS
	Target string // module-relative output path template
}

var registry = []Archetype{
	{
		Kind:    "core",
		Parent:  "Core",
		Subdirs: []string{"Sources", "Tests"},
		Templates: []Template{
			{Source: "core/BUILD.bazel.tmpl", Target: "BUILD.bazel"},
			{Source: "core/Module.swift.tmpl", Target: "Sources/{{.Name}}.swift"},
			{Source: "core/Tests.swift.tmpl", Target: "Tests/{{.Name}}Tests.swift"},
		},
		Category: buildfile.CategoryCore,
	},
	{
		Kind:    "data",
		Parent:  "Data",
		Subdirs: []string{"Sources/Repositories", "Sources/DataSources", "Tests"},
		Templates: []Template{
			{Source: "data/BUILD.bazel.tmpl", Target: "BUILD.bazel"},
			{Source: "data/Repository.swift.tmpl", Target: "Sources/Repositories/{{.Name}}Repository.swift"},
			{Source: "data/DataSource.swift.tmpl", Target: "Sources/DataSources/{{.Name}}DataSource.swift"},
			{Source: "data/Tests.swift.tmpl", Target: "Tests/{{.Name}}Tests.swift"},
		},
		Category: buildfile.CategoryData,
	},
	{
		Kind:   "feature",
		Parent: "Features",
		Subdirs: []string{
			"Sources/Domain/Entities",
			"Sources/Domain/UseCases",
			"Sources/Data/Repositories",
			"Sources/Presentation/ViewModels",
			"Sources/Presentation/Views",
			"DevApp",
			"Tests",
		},
		Templates: []Template{
			{Source: "feature/BUILD.bazel.tmpl", Target: "BUILD.bazel"},
			{Source: "feature/Entity.swift.tmpl", Target: "Sources/Domain/Entities/{{.Name}}Entity.swift"},
			{Source: "feature/UseCase.swift.tmpl", Target: "Sources/Domain/UseCases/{{.Name}}UseCase.swift"},
			{Source: "feature/Repository.swift.tmpl", Target: "Sources/Data/Repositories/{{.Name}}Repository.swift"},
			{Source: "feature/ViewModel.swift.tmpl", Target: "Sources/Presentation/ViewModels/{{.Name}}ViewModel.swift"},
			{Source: "feature/View.swift.tmpl", Target: "Sources/Presentation/Views/{{.Name}}View.swift"},
			{Source: "feature/DevApp.swift.tmpl", Target: "DevApp/{{.Name}}DevApp.swift"},
			{Source: "feature/Info.plist.tmpl", Target: "DevApp/Info.plist"},
			{Source: "feature/Tests.swift.tmpl", Target: "Tests/{{.Name}}Tests.swift"},
		},
		Category:   buildfile.CategoryFeature,
		DevHarness: true,
	},
	{
		Kind:    "common",
		Parent:  "Common",
		Subdirs: []string{"Sources", "Tests"},
		Templates: []Template{
			{Source: "common/BUILD.bazel.tmpl", Target: "BUILD.bazel"},
			{Source: "common/Helpers.swift.tmpl", Target: "Sources/{{.Name}}Helpers.swift"},
			{Source: "common/Tests.swift.tmpl", Target: "Tests/{{.Name}}Tests.swift"},
		},
		Category: buildfile.CategoryCommon,
	},
}

// Lookup resolves a CLI archetype name to its registry entry.
func Lookup(kind string) (Archetype, error) {
	kind = strings.ToLower(kind)
	for _, a := range registry {
		if a.Kind == kind {
			return a, nil
		}
	}
	return Archetype{}, fmt.Errorf("%w: %q (expected one of %s)",
		ErrInvalidArchetype, kind, strings.Join(Kinds(), ", "))
}

// Kinds lists the valid archetype names in registry order.
func Kinds() []string {
	kinds := make([]string, len(registry))
	for i, a := range registry {
		kinds[i] = a.Kind
	}
	return kinds
}

// All returns the full registry.
func All() []Archetype {
	return registry
}

// Dir is the module root directory relative to the workspace root.
func (a Archetype) Dir(name string) string {
	return filepath.Join(a.Parent, name)
}

// PackagePath is the Bazel package path of the module.
func (a Archetype) PackagePath(name string) string {
	return path.Join(a.Parent, name)
}

// Label is the module's library target label, e.g. "//Features/Login:Login".
func (a Archetype) Label(name string) string {
	return "//" + a.PackagePath(name) + ":" + name
}

// HarnessLabel is the development-harness app target label,
// e.g. "//Features/Login:LoginDevApp". Only meaningful when DevHarness is set.
func (a Archetype) HarnessLabel(name string) string {
	return "//" + a.PackagePath(name) + ":" + name + "DevApp"
}
