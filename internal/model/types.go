package model

// InstallPaths holds the directories resolved by the locator at startup.
// Read-only after resolution; every later stage receives it by value.
type InstallPaths struct {
	Base         string `json:"base"`          // opencode-ai package root (e.g. /usr/local/lib/node_modules/opencode-ai)
	Dist         string `json:"dist"`          // <Base>/dist, where the bundled chunks live
	ProviderRoot string `json:"provider_root"` // root of the bundled @ai-sdk/google dependency
}

// PatchState classifies a patch target's relationship to the file on disk.
type PatchState string

const (
	StateApplied        PatchState = "applied"         // new text already present, nothing to do
	StatePending        PatchState = "pending"         // old text present, patch would change the file
	StateMissingFile    PatchState = "missing-file"    // target file does not exist
	StateMissingPattern PatchState = "missing-pattern" // neither old nor new text present
)

// TargetStatus is the read-only evaluation of one patch target,
// consumed by the status TUI and the --json report.
type TargetStatus struct {
	Description string     `json:"description"`
	File        string     `json:"file"`
	State       PatchState `json:"state"`
	Detail      string     `json:"detail,omitempty"` // e.g. "1.12.0 -> 1.15.8"
}

// Report is the --json output document.
type Report struct {
	Paths   InstallPaths   `json:"paths"`
	Targets []TargetStatus `json:"targets"`
}
