package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Package  packageConfig  `toml:"package"`
	Paths    pathsConfig    `toml:"paths"`
	Build    buildConfig    `toml:"build"`
	Families familiesConfig `toml:"families"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type pathsConfig struct {
	Source    string `toml:"source"`
	Output    string `toml:"output"`
	Configure string `toml:"configure"`
}

type buildConfig struct {
	CFlags []string `toml:"cflags"`
}

// familiesConfig provides defaults for the family toggles; CLI flags win.
// Pointers distinguish "unset" from an explicit false.
type familiesConfig struct {
	OSX  *bool `toml:"osx"`
	IOS  *bool `toml:"ios"`
	TVOS *bool `toml:"tvos"`
}

func findDarwingenToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "darwingen.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findDarwingenToml(startDir)
	if err != nil || !ok {
		return nil, false, err
	}
	var config projectConfig
	if _, err := toml.DecodeFile(manifestPath, &config); err != nil {
		return nil, false, fmt.Errorf("failed to parse %s: %w", manifestPath, err)
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: config,
	}, true, nil
}

// resolveManifestPath turns a manifest-relative path into one usable from
// the current working directory.
func resolveManifestPath(manifest *projectManifest, value string) string {
	if value == "" || filepath.IsAbs(value) {
		return value
	}
	return filepath.Join(manifest.Root, value)
}
