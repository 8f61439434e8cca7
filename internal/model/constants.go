package model

// Version of agpatch itself, used by --version and the update check.
const Version = "0.4.1"

// GitHub coordinates for the --update release check.
const (
	GithubOwner = "opencode-tools"
	GithubRepo  = "agpatch"
)

// Well-known names and paths of the patched installation.
const (
	// PackageName is the npm package the locator resolves.
	PackageName = "opencode-ai"

	// EnvInstallDir overrides every other locator candidate when set.
	EnvInstallDir = "AGPATCH_OPENCODE_DIR"

	// MarkerFile uniquely identifies the bundled @ai-sdk/google dependency.
	// Its location varies by package-manager layout, so it is found by search.
	MarkerFile = "google-provider.js"

	// BackupSuffix marks the pre-patch backup sibling written before any modification.
	BackupSuffix = ".prepatch.bak"
)

// User configuration files, relative to the home directory.
const (
	AllowlistFile = ".config/opencode/opencode.json"
	OverridesFile = ".config/opencode/antigravity-models.json"
)

// ProviderID is the provider key the Antigravity integration registers under.
const ProviderID = "antigravity"

// AntigravityModels are the model ids the integration exposes. The order is
// the insertion order used when seeding configuration files.
var AntigravityModels = []string{
	"gemini-3-pro",
	"gemini-3-flash",
	"claude-sonnet-4-5",
	"claude-sonnet-4-5-thinking",
	"gpt-oss-120b",
}

// QualifiedModels returns the provider-qualified ids ("antigravity/<id>")
// used as allowlist keys.
func QualifiedModels() []string {
	out := make([]string, len(AntigravityModels))
	for i, id := range AntigravityModels {
		out[i] = ProviderID + "/" + id
	}
	return out
}

// Centralized icons for status output
// Using simple single-width characters for consistent terminal rendering
const (
	IconApplied = "✓" // Check (already patched)
	IconPending = "±" // Plus-minus (patch would change the file)
	IconMissing = "✗" // Thin X (file or pattern missing)
)
