// Package workspace locates the Bazel workspace mason operates on and loads
// its configuration.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the mason project configuration file at the workspace root.
const ConfigFileName = "mason.yml"

// markerFiles identify a workspace root, in detection order.
var markerFiles = []string{"MODULE.bazel", "WORKSPACE.bazel", "WORKSPACE", ConfigFileName}

// IsWorkspace reports whether dir is a workspace root.
func IsWorkspace(dir string) bool {
	for _, marker := range markerFiles {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

// FindRoot walks up from start looking for a workspace marker file, so
// commands can run from any subdirectory.
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}

	for {
		if IsWorkspace(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no Bazel workspace found above %s (looked for %v)", start, markerFiles)
		}
		dir = parent
	}
}

// ProjectName reads the project name from mason.yml, if present.
// Returns "" when the file or field is missing.
func ProjectName(root string) string {
	data, err := os.ReadFile(filepath.Join(root, ConfigFileName))
	if err != nil {
		return ""
	}

	var config struct {
		Project struct {
			Name string `yaml:"name"`
		} `yaml:"project"`
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return ""
	}
	return config.Project.Name
}
