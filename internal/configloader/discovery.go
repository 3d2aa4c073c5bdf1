package configloader

import (
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"
)

// ConfigPaths lists the configuration files that apply to a run. An empty
// field means no file was found for that layer.
type ConfigPaths struct {
	// User is $XDG_CONFIG_HOME/linegrep/config.yaml or .yml.
	User string

	// Project is the nearest .linegrep.yml above the working directory.
	Project string

	// Explicit comes from --config.
	Explicit string
}

//nolint:gochecknoglobals // Read-only lookup tables.
var (
	projectConfigFiles = []string{ProjectConfigName, ".linegrep.yaml", "linegrep.yml", "linegrep.yaml"}
	userConfigFiles    = []string{"config.yaml", "config.yml"}
	vcsRootMarkers     = []string{".git", ".hg", ".svn"}
)

// DiscoverPaths locates the user and project configuration files for workDir.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("discover config: %w", err)
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	return &ConfigPaths{User: findUserConfig(), Project: project}, nil
}

func findUserConfig() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return firstExisting(filepath.Join(configHome, "linegrep"), userConfigFiles)
}

// FindProjectConfig walks upward from startDir and returns the first project
// config file it finds. The walk ends after a VCS root or the home directory
// has been checked. An empty startDir means the working directory.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		startDir = wd
	}

	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	home, _ := os.UserHomeDir()

	for dir := range ancestors(absDir) {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("find project config: %w", err)
		}
		if path := firstExisting(dir, projectConfigFiles); path != "" {
			return path, nil
		}
		if isVCSRoot(dir) || (home != "" && dir == home) {
			break
		}
	}
	return "", nil
}

// ancestors yields dir and each of its parents up to the filesystem root.
func ancestors(dir string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			if !yield(dir) {
				return
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				return
			}
			dir = parent
		}
	}
}

func firstExisting(dir string, names []string) string {
	for _, name := range names {
		if path := filepath.Join(dir, name); fileExists(path) {
			return path
		}
	}
	return ""
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

// fileExists reports whether path names a regular file or symlink to one.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
