package workspace

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the workspace settings mason reads from mason.yml. All
// fields have defaults; a workspace without mason.yml works out of the box.
type Config struct {
	// AppDeclaration is the declaration file of the consuming app target,
	// relative to the workspace root. New modules are linked into its deps.
	AppDeclaration string

	// RootDeclaration is the root project-generation declaration holding the
	// top_level_targets list, relative to the workspace root.
	RootDeclaration string
}

// LoadConfig reads mason.yml from the workspace root. A missing file yields
// the defaults; a malformed file is an error.
func LoadConfig(root string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("mason")
	v.SetConfigType("yaml")
	v.AddConfigPath(root)

	v.SetDefault("app.declaration", "App/BUILD.bazel")
	v.SetDefault("project.declaration", "BUILD.bazel")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read %s: %w", ConfigFileName, err)
		}
	}

	return &Config{
		AppDeclaration:  v.GetString("app.declaration"),
		RootDeclaration: v.GetString("project.declaration"),
	}, nil
}

// AppDeclarationPath is the absolute path of the app declaration file.
func (c *Config) AppDeclarationPath(root string) string {
	return filepath.Join(root, filepath.FromSlash(c.AppDeclaration))
}

// RootDeclarationPath is the absolute path of the root declaration file.
func (c *Config) RootDeclarationPath(root string) string {
	return filepath.Join(root, filepath.FromSlash(c.RootDeclaration))
}
