// Package patch builds and applies the fixed set of textual patches that
// keep the Antigravity provider integration working inside an upgraded
// opencode-ai installation. Every patch is idempotent: its own completion
// is detectable from the file's current contents, so re-running the tool
// is always safe.
package patch

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"agpatch/internal/model"
)

// Kind selects the engine a target is applied with.
type Kind int

const (
	KindLiteral  Kind = iota // exact substring, replaced once
	KindVersion              // rewrite the value of KEY = "x.y.z"
	KindPlatform             // rewrite the os/arch pair after a fixed marker
)

// Target is one patch to one file. Only the fields relevant to its Kind
// are set.
type Target struct {
	Kind        Kind
	File        string
	Description string
	Required    bool // file must exist; a missing Required file aborts the run

	// KindLiteral
	Find    string
	Replace string

	// KindVersion
	Key     string
	Version string

	// KindPlatform
	Marker string
	Pair   string
}

// ClientVersion is the Antigravity client version the provider bundle is
// pinned to. Bump this when the upstream service stops accepting older
// client identifiers.
const ClientVersion = "1.15.8"

// versionKey is the constant rewritten inside the provider bundle.
const versionKey = "ANTIGRAVITY_CLIENT_VERSION"

// platformMarker precedes the os/arch pair inside the bundle's user-agent
// template. The interpolation is left untouched; only the pair after it
// is rewritten.
const platformMarker = "antigravity/${ANTIGRAVITY_CLIENT_VERSION} "

// generatedModelsFile is the bundle holding the runtime's generated model
// table, relative to the dist directory.
const generatedModelsFile = "models-generated.js"

// chunkGlob matches the hashed distribution chunks that carry the provider
// registry and transport code.
const chunkGlob = "chunk-*.js"

// chunkPatches are the literal spot patches applied to every distribution
// chunk that contains them. Most chunks contain neither; that is normal.
var chunkPatches = []struct {
	find, replace, desc string
}{
	{
		find:    `google:()=>import("@ai-sdk/google")`,
		replace: `google:()=>import("@ai-sdk/google"),antigravity:()=>import("@ai-sdk/google")`,
		desc:    "register antigravity provider alias",
	},
	{
		find:    `"x-goog-api-key":this.apiKey`,
		replace: `"x-goog-api-key":this.apiKey,"x-antigravity-auth":"oauth"`,
		desc:    "forward antigravity auth header",
	},
}

// PlatformPair returns the running platform in the node-style spelling the
// bundle expects (win32/x64, darwin/arm64, ...).
func PlatformPair() string {
	osName := runtime.GOOS
	if osName == "windows" {
		osName = "win32"
	}
	arch := runtime.GOARCH
	if arch == "amd64" {
		arch = "x64"
	}
	return osName + "/" + arch
}

// Plan expands the fixed patch set against the resolved installation.
// The provider bundle and the generated-models bundle must exist; the
// distribution chunks are discovered by glob and zero matches is fine.
func Plan(paths model.InstallPaths) ([]Target, error) {
	provider := filepath.Join(paths.ProviderRoot, "dist", model.MarkerFile)
	if !model.FileExists(provider) {
		return nil, fmt.Errorf("provider bundle missing: %s", provider)
	}
	models := filepath.Join(paths.Dist, generatedModelsFile)
	if !model.FileExists(models) {
		return nil, fmt.Errorf("generated-models bundle missing: %s", models)
	}

	targets := []Target{
		{
			Kind:        KindVersion,
			File:        provider,
			Description: "pin Antigravity client version",
			Required:    true,
			Key:         versionKey,
			Version:     ClientVersion,
		},
		{
			Kind:        KindPlatform,
			File:        provider,
			Description: "set platform identifier",
			Required:    true,
			Marker:      platformMarker,
			Pair:        PlatformPair(),
		},
		{
			Kind:        KindLiteral,
			File:        models,
			Description: "insert Antigravity model table",
			Required:    true,
			Find:        modelTableAnchor,
			Replace:     modelTableAnchor + modelTable,
		},
	}

	chunks, err := filepath.Glob(filepath.Join(paths.Dist, chunkGlob))
	if err != nil {
		return nil, err
	}
	for _, chunk := range chunks {
		// Glob pattern ends in .js so backup siblings can't match, but
		// keep the exclusion explicit in case the glob ever loosens.
		if strings.Contains(chunk, model.BackupSuffix) {
			continue
		}
		for _, p := range chunkPatches {
			targets = append(targets, Target{
				Kind:        KindLiteral,
				File:        chunk,
				Description: fmt.Sprintf("%s (%s)", p.desc, filepath.Base(chunk)),
				Find:        p.find,
				Replace:     p.replace,
			})
		}
	}
	return targets, nil
}
