package locate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agpatch/internal/model"
)

func TestInstallDirFirstExistingWins(t *testing.T) {
	good := t.TempDir()
	strategies := []Strategy{
		DirStrategy{Dir: filepath.Join(good, "does-not-exist")},
		DirStrategy{Dir: good},
		DirStrategy{Dir: t.TempDir()}, // also exists, but never reached
	}

	dir, err := InstallDir(strategies)
	require.NoError(t, err)
	assert.Equal(t, good, dir)
}

func TestInstallDirExhausted(t *testing.T) {
	strategies := []Strategy{
		OverrideStrategy{Source: "--base", Dir: ""},
		DirStrategy{Dir: filepath.Join(t.TempDir(), "nope")},
	}

	_, err := InstallDir(strategies)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOverrideStrategy(t *testing.T) {
	dir := t.TempDir()

	_, ok := OverrideStrategy{Source: "--base", Dir: ""}.Resolve()
	assert.False(t, ok, "empty override never resolves")

	resolved, ok := OverrideStrategy{Source: "--base", Dir: dir}.Resolve()
	assert.True(t, ok)
	assert.Equal(t, dir, resolved)
}

func TestCommandStrategy(t *testing.T) {
	// echo stands in for `npm root -g`: it prints a node_modules root.
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, model.PackageName), 0755))

	dir, ok := CommandStrategy{Command: "echo", Args: []string{root}}.Resolve()
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(root, model.PackageName), dir)
}

func TestCommandStrategyUnavailable(t *testing.T) {
	_, ok := CommandStrategy{Command: "definitely-not-a-command-xyz"}.Resolve()
	assert.False(t, ok, "missing command means try next candidate")
}

func plantMarker(t *testing.T, base string, rel ...string) string {
	t.Helper()
	dist := filepath.Join(append([]string{base}, rel...)...)
	require.NoError(t, os.MkdirAll(dist, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dist, model.MarkerFile), []byte("js"), 0644))
	return filepath.Dir(dist)
}

func TestDependencyRootFlatLayout(t *testing.T) {
	base := t.TempDir()
	want := plantMarker(t, base, "node_modules", "@ai-sdk", "google", "dist")

	root, err := DependencyRoot(base)
	require.NoError(t, err)
	assert.Equal(t, want, root)
}

func TestDependencyRootPnpmLayout(t *testing.T) {
	base := t.TempDir()
	want := plantMarker(t, base,
		"node_modules", ".pnpm", "@ai-sdk+google@2.0.1", "node_modules", "@ai-sdk", "google", "dist")

	root, err := DependencyRoot(base)
	require.NoError(t, err)
	assert.Equal(t, want, root)
}

func TestDependencyRootIgnoresBackups(t *testing.T) {
	base := t.TempDir()
	dist := filepath.Join(base, "node_modules", "@ai-sdk", "google", "dist")
	require.NoError(t, os.MkdirAll(dist, 0755))
	backup := filepath.Join(dist, model.MarkerFile+model.BackupSuffix)
	require.NoError(t, os.WriteFile(backup, []byte("js"), 0644))

	_, err := DependencyRoot(base)
	assert.ErrorContains(t, err, "not found")
}

func TestDependencyRootNoNodeModules(t *testing.T) {
	_, err := DependencyRoot(t.TempDir())
	assert.ErrorContains(t, err, "node_modules")
}
