package scaffold_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mason-build/mason/internal/archetype"
	"github.com/mason-build/mason/internal/generator"
	"github.com/mason-build/mason/internal/scaffold"
)

func plan(t *testing.T, root, kind, name string) []generator.Operation {
	t.Helper()
	arch, err := archetype.Lookup(kind)
	require.NoError(t, err)
	ops, err := scaffold.New(root).Plan(arch, name)
	require.NoError(t, err)
	return ops
}

func execute(t *testing.T, ops []generator.Operation) *generator.Result {
	t.Helper()
	var buf bytes.Buffer
	result, err := generator.Execute(context.Background(), ops, generator.ExecuteOptions{Writer: &buf})
	require.NoError(t, err, "executor output:\n%s", buf.String())
	return result
}

func TestScaffoldFeature(t *testing.T) {
	root := t.TempDir()

	execute(t, plan(t, root, "feature", "Login"))

	moduleDir := filepath.Join(root, "Features", "Login")
	build, err := os.ReadFile(filepath.Join(moduleDir, "BUILD.bazel"))
	require.NoError(t, err)

	assert.Contains(t, string(build), `name = "Login"`)
	assert.Contains(t, string(build), `name = "LoginDevApp"`, "feature must declare its dev harness")
	assert.Contains(t, string(build), `bundle_id = "dev.mason.feature.Login"`)

	for _, rel := range []string{
		"Sources/Domain/Entities/LoginEntity.swift",
		"Sources/Domain/UseCases/LoginUseCase.swift",
		"Sources/Data/Repositories/LoginRepository.swift",
		"Sources/Presentation/ViewModels/LoginViewModel.swift",
		"Sources/Presentation/Views/LoginView.swift",
		"DevApp/LoginDevApp.swift",
		"DevApp/Info.plist",
		"Tests/LoginTests.swift",
	} {
		assert.FileExists(t, filepath.Join(moduleDir, rel))
	}
}

func TestScaffoldCore(t *testing.T) {
	root := t.TempDir()

	result := execute(t, plan(t, root, "core", "Logging"))
	assert.Len(t, result.Created, 3)

	build, err := os.ReadFile(filepath.Join(root, "Core", "Logging", "BUILD.bazel"))
	require.NoError(t, err)
	assert.Contains(t, string(build), `module_name = "Logging"`)
	assert.NotContains(t, string(build), "ios_application", "core modules have no dev harness")
}

func TestScaffoldIsIdempotent(t *testing.T) {
	root := t.TempDir()

	execute(t, plan(t, root, "data", "Net"))

	// Hand-edit the declaration file, then re-run the scaffold.
	buildPath := filepath.Join(root, "Data", "Net", "BUILD.bazel")
	edited := []byte("# hand edit\n")
	require.NoError(t, os.WriteFile(buildPath, edited, 0644))

	result := execute(t, plan(t, root, "data", "Net"))

	assert.Empty(t, result.Created, "second run must not rewrite anything")
	assert.Len(t, result.Skipped, 4, "every file reported as already existing")

	data, err := os.ReadFile(buildPath)
	require.NoError(t, err)
	assert.Equal(t, edited, data, "hand edits must survive re-scaffolding")
}

func TestScaffoldRejectsEmptyName(t *testing.T) {
	arch, err := archetype.Lookup("core")
	require.NoError(t, err)

	_, err = scaffold.New(t.TempDir()).Plan(arch, "")
	assert.Error(t, err)
}

func TestScaffoldDryRunWritesNothing(t *testing.T) {
	root := t.TempDir()

	var buf bytes.Buffer
	_, err := generator.Execute(context.Background(), plan(t, root, "common", "UI"), generator.ExecuteOptions{
		DryRun: true,
		Writer: &buf,
	})
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(root, "Common", "UI", "BUILD.bazel"))
	assert.Contains(t, buf.String(), "[DRY RUN]")
}
