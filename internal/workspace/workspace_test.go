package workspace_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mason-build/mason/internal/workspace"
)

func newWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "MODULE.bazel"), []byte("module(name = \"app\")\n"), 0644))
	return root
}

func TestFindRoot_WalksUp(t *testing.T) {
	root := newWorkspace(t)
	nested := filepath.Join(root, "Features", "Login", "Sources")
	require.NoError(t, os.MkdirAll(nested, 0755))

	found, err := workspace.FindRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, root, found)
}

func TestFindRoot_NoWorkspace(t *testing.T) {
	_, err := workspace.FindRoot(t.TempDir())
	assert.Error(t, err)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := workspace.LoadConfig(newWorkspace(t))
	require.NoError(t, err)

	assert.Equal(t, "App/BUILD.bazel", cfg.AppDeclaration)
	assert.Equal(t, "BUILD.bazel", cfg.RootDeclaration)
}

func TestLoadConfig_FromFile(t *testing.T) {
	root := newWorkspace(t)
	config := `project:
  name: ShopApp
  declaration: Project/BUILD.bazel
app:
  declaration: Apps/Shop/BUILD.bazel
`
	require.NoError(t, os.WriteFile(filepath.Join(root, workspace.ConfigFileName), []byte(config), 0644))

	cfg, err := workspace.LoadConfig(root)
	require.NoError(t, err)

	assert.Equal(t, "Apps/Shop/BUILD.bazel", cfg.AppDeclaration)
	assert.Equal(t, "Project/BUILD.bazel", cfg.RootDeclaration)
	assert.Equal(t, filepath.Join(root, "Apps", "Shop", "BUILD.bazel"), cfg.AppDeclarationPath(root))
	assert.Equal(t, "ShopApp", workspace.ProjectName(root))
}

func TestProjectName_MissingFile(t *testing.T) {
	assert.Equal(t, "", workspace.ProjectName(t.TempDir()))
}

func TestModules(t *testing.T) {
	root := newWorkspace(t)

	// Two scaffolded modules and one stray directory without a BUILD file.
	for _, dir := range []string{"Features/Login", "Core/Logging", "Features/Draft"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0755))
	}
	for _, dir := range []string{"Features/Login", "Core/Logging"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, dir, "BUILD.bazel"), []byte("# build\n"), 0644))
	}

	modules, err := workspace.Modules(root)
	require.NoError(t, err)

	require.Len(t, modules, 2)
	assert.Equal(t, "core", modules[0].Archetype)
	assert.Equal(t, "Core/Logging", modules[0].Dir)
	assert.Equal(t, "feature", modules[1].Archetype)
	assert.Equal(t, "Login", modules[1].Name)
}
