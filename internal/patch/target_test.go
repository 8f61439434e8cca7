package patch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agpatch/internal/model"
)

// fakeInstall lays out a minimal opencode-ai installation: the provider
// bundle, the generated-models bundle, and optionally some chunks.
func fakeInstall(t *testing.T, chunks map[string]string) model.InstallPaths {
	t.Helper()
	base := t.TempDir()
	dist := filepath.Join(base, "dist")
	providerRoot := filepath.Join(base, "node_modules", "@ai-sdk", "google")
	providerDist := filepath.Join(providerRoot, "dist")
	require.NoError(t, os.MkdirAll(dist, 0755))
	require.NoError(t, os.MkdirAll(providerDist, 0755))

	writeFile(t, providerDist, model.MarkerFile,
		"var ANTIGRAVITY_CLIENT_VERSION = \"1.0.0\";\n"+
			"var ua = `antigravity/${ANTIGRAVITY_CLIENT_VERSION} foo/bar`;\n")
	writeFile(t, dist, "models-generated.js", modelTableAnchor+"\n};\n")

	for name, content := range chunks {
		writeFile(t, dist, name, content)
	}

	return model.InstallPaths{Base: base, Dist: dist, ProviderRoot: providerRoot}
}

func TestPlanZeroChunks(t *testing.T) {
	paths := fakeInstall(t, nil)

	targets, err := Plan(paths)
	require.NoError(t, err)
	// Version + platform + model table, nothing else.
	assert.Len(t, targets, 3)
	for _, target := range targets {
		assert.True(t, target.Required)
	}
}

func TestPlanExpandsChunks(t *testing.T) {
	paths := fakeInstall(t, map[string]string{
		"chunk-aaa111.js": "x",
		"chunk-bbb222.js": "y",
	})

	targets, err := Plan(paths)
	require.NoError(t, err)
	assert.Len(t, targets, 3+2*len(chunkPatches))
}

func TestPlanMissingProviderBundle(t *testing.T) {
	paths := fakeInstall(t, nil)
	require.NoError(t, os.Remove(filepath.Join(paths.ProviderRoot, "dist", model.MarkerFile)))

	_, err := Plan(paths)
	assert.ErrorContains(t, err, "provider bundle missing")
}

func TestPlanMissingModelsBundle(t *testing.T) {
	paths := fakeInstall(t, nil)
	require.NoError(t, os.Remove(filepath.Join(paths.Dist, "models-generated.js")))

	_, err := Plan(paths)
	assert.ErrorContains(t, err, "generated-models bundle missing")
}

// Running the whole plan twice must leave the tree byte-identical after
// the second pass, with every target reporting already-applied.
func TestPlanApplyTwiceIsIdempotent(t *testing.T) {
	paths := fakeInstall(t, map[string]string{
		"chunk-aaa111.js": `{google:()=>import("@ai-sdk/google")}`,
	})

	targets, err := Plan(paths)
	require.NoError(t, err)

	for _, target := range targets {
		_, err := Apply(target, false)
		require.NoError(t, err)
	}

	snapshot := map[string]string{}
	for _, target := range targets {
		snapshot[target.File] = readFile(t, target.File)
	}

	for _, target := range targets {
		res, err := Apply(target, false)
		require.NoError(t, err)
		// Chunks that never contained a pattern stay missing; everything
		// that was patched reports already-applied.
		assert.Contains(t,
			[]Outcome{AlreadyApplied, PatternMissing}, res.Outcome,
			target.Description)
	}
	for file, content := range snapshot {
		assert.Equal(t, content, readFile(t, file), file)
	}
}

func TestStatusStates(t *testing.T) {
	paths := fakeInstall(t, nil)

	targets, err := Plan(paths)
	require.NoError(t, err)

	for _, s := range StatusAll(targets) {
		assert.Equal(t, model.StatePending, s.State, s.Description)
	}

	for _, target := range targets {
		_, err := Apply(target, false)
		require.NoError(t, err)
	}

	for _, s := range StatusAll(targets) {
		assert.Equal(t, model.StateApplied, s.State, s.Description)
	}
}

func TestStatusMissingFile(t *testing.T) {
	s := Status(Target{
		Kind: KindLiteral,
		File: filepath.Join(t.TempDir(), "chunk-gone.js"),
		Find: "a", Replace: "b",
	})
	assert.Equal(t, model.StateMissingFile, s.State)
}

func TestPlatformPairSpelling(t *testing.T) {
	pair := PlatformPair()
	assert.NotContains(t, pair, "windows") // node spells it win32
	assert.NotContains(t, pair, "amd64")   // node spells it x64
	assert.Contains(t, pair, "/")
}
