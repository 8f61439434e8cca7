// Package locate resolves where the opencode-ai package is installed and
// where its bundled @ai-sdk/google dependency ended up. Exact paths vary
// by package manager (npm keeps a flat node_modules, pnpm hides packages
// behind .pnpm/<pkg>@<ver>/node_modules), so the dependency is found by
// searching for its uniquely named marker file rather than by fixed path.
package locate

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"agpatch/internal/model"
	"agpatch/internal/ui"
)

// ErrNotFound is returned when every candidate strategy comes up empty.
var ErrNotFound = errors.New("opencode-ai installation not found")

// InstallDir evaluates the candidate strategies in order and returns the
// first directory that exists on disk. Fallbacks past the first candidate
// are reported as dim diagnostics so the user can see which path was taken.
func InstallDir(strategies []Strategy) (string, error) {
	for i, s := range strategies {
		dir, ok := s.Resolve()
		if !ok {
			continue
		}
		if i > 0 {
			ui.Dimf("resolved install dir via %s", s.Name())
		}
		return dir, nil
	}
	return "", ErrNotFound
}

// errFoundMarker stops the walk early once the marker file is seen.
var errFoundMarker = errors.New("marker found")

// DependencyRoot searches the package's dependency tree for the marker
// file and derives the dependency's root from its location. The marker
// lives at <root>/dist/<marker>, so the root is two levels up. Backup
// siblings written by earlier runs never match.
func DependencyRoot(base string) (string, error) {
	modules := filepath.Join(base, "node_modules")
	if !model.DirExists(modules) {
		return "", fmt.Errorf("no node_modules under %s", base)
	}

	var marker string
	err := filepath.WalkDir(modules, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtree: skip it, the marker may live elsewhere.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if d.Name() == model.MarkerFile && !strings.Contains(path, model.BackupSuffix) {
			marker = path
			return errFoundMarker
		}
		return nil
	})
	if err != nil && !errors.Is(err, errFoundMarker) {
		return "", err
	}
	if marker == "" {
		return "", fmt.Errorf("marker file %s not found under %s", model.MarkerFile, modules)
	}
	return filepath.Dir(filepath.Dir(marker)), nil
}

// Paths runs the full discovery: install dir, dist dir, dependency root.
func Paths(override string) (model.InstallPaths, error) {
	base, err := InstallDir(DefaultStrategies(override))
	if err != nil {
		return model.InstallPaths{}, err
	}
	root, err := DependencyRoot(base)
	if err != nil {
		return model.InstallPaths{}, err
	}
	return model.InstallPaths{
		Base:         base,
		Dist:         filepath.Join(base, "dist"),
		ProviderRoot: root,
	}, nil
}
