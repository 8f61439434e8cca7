package main

import (
	"encoding/json"
	"fmt"
	"os"

	"agpatch/internal/config"
	"agpatch/internal/locate"
	"agpatch/internal/model"
	"agpatch/internal/patch"
	"agpatch/internal/tui"
	"agpatch/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      model.GithubOwner,
		Repository: model.GithubRepo,
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Printf("👉 Download it from https://github.com/%s/%s/releases\n", model.GithubOwner, model.GithubRepo)
	} else {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: agpatch [options]\n\n")
		fmt.Fprintf(os.Stderr, "agpatch re-applies the Antigravity provider integration to a locally\n")
		fmt.Fprintf(os.Stderr, "installed opencode-ai package after an upgrade. It patches the bundled\n")
		fmt.Fprintf(os.Stderr, "distribution files in place (writing %s backups) and seeds\n", model.BackupSuffix)
		fmt.Fprintf(os.Stderr, "the user-level model allowlist and override files.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  agpatch             # Locate, patch, and update config\n")
		fmt.Fprintf(os.Stderr, "  agpatch dry-run     # Report what would change, touch nothing\n")
		fmt.Fprintf(os.Stderr, "  agpatch --status    # Interactive per-target status view\n")
		fmt.Fprintf(os.Stderr, "  agpatch --json      # Resolved paths and patch states as JSON\n")
	}

	dryRunFlag := pflag.BoolP("dry-run", "n", false, "Report every patch without modifying any file")
	statusFlag := pflag.BoolP("status", "s", false, "Interactive read-only status view (TUI)")
	jsonFlag := pflag.BoolP("json", "j", false, "Output resolved paths and patch states as JSON")
	baseFlag := pflag.StringP("base", "b", "", "Explicit opencode-ai install directory (overrides discovery)")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("agpatch version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	// The original script took a bare "dry-run" argument; keep accepting it.
	dryRun := *dryRunFlag
	for _, arg := range pflag.Args() {
		if arg == "dry-run" {
			dryRun = true
		}
	}

	if *statusFlag {
		runStatusMode(*baseFlag)
		return
	}

	if *jsonFlag {
		runJsonMode(*baseFlag)
		return
	}

	runPipeline(*baseFlag, dryRun)
}

// runPipeline is the default mode: locate, patch, merge, sequentially.
func runPipeline(base string, dryRun bool) {
	ui.Infof("agpatch %s — Antigravity integration patcher", model.Version)
	if dryRun {
		ui.Dimf("dry-run: no files will be modified")
	}

	paths, err := locate.Paths(base)
	if err != nil {
		ui.Fatalf("%v", err)
	}
	ui.Dimf("install dir: %s", paths.Base)
	ui.Dimf("provider root: %s", paths.ProviderRoot)

	targets, err := patch.Plan(paths)
	if err != nil {
		ui.Fatalf("%v", err)
	}

	ui.Infof("Patching bundles:")
	for _, t := range targets {
		res, err := patch.Apply(t, dryRun)
		if err != nil {
			if t.Required {
				ui.Fatalf("%v", err)
			}
			ui.Errorf("%v", err)
			continue
		}
		if res.Warning != "" {
			ui.Warnf("%s: %s", t.Description, res.Warning)
		}
		switch res.Outcome {
		case patch.Applied:
			if res.Detail != "" {
				ui.Successf("%s (%s)", t.Description, res.Detail)
			} else {
				ui.Successf("%s", t.Description)
			}
		case patch.WouldApply:
			if res.Detail != "" {
				ui.Dimf("would patch: %s (%s)", t.Description, res.Detail)
			} else {
				ui.Dimf("would patch: %s", t.Description)
			}
		case patch.AlreadyApplied:
			ui.Dimf("already patched: %s", t.Description)
		case patch.PatternMissing:
			ui.Warnf("%s: pattern not found, may need manual update", t.Description)
		case patch.FileMissing:
			// Optional chunk gone between glob and read; nothing to report.
		}
	}

	ui.Infof("Updating configuration:")
	allowlist := model.HomePath(model.AllowlistFile)
	added, skipped, err := config.MergeAllowlist(allowlist, model.QualifiedModels(), dryRun)
	if err != nil {
		ui.Fatalf("allowlist merge: %v", err)
	}
	switch {
	case skipped:
		ui.Warnf("%s not found, skipping allowlist merge", allowlist)
	case added == 0:
		ui.Dimf("allowlist already up to date")
	case dryRun:
		ui.Dimf("would add %d allowlist entries", added)
	default:
		ui.Successf("added %d allowlist entries to %s", added, allowlist)
	}

	overrides := model.HomePath(model.OverridesFile)
	created, err := config.WriteOverrides(overrides, dryRun)
	if err != nil {
		ui.Fatalf("override bootstrap: %v", err)
	}
	switch {
	case created && dryRun:
		ui.Dimf("would create %s", overrides)
	case created:
		ui.Successf("created %s", overrides)
	default:
		ui.Dimf("override file already present: %s", overrides)
	}

	ui.Infof("Done.")
}

// runJsonMode prints the resolved paths and per-target states as JSON.
func runJsonMode(base string) {
	paths, err := locate.Paths(base)
	if err != nil {
		ui.Fatalf("%v", err)
	}
	targets, err := patch.Plan(paths)
	if err != nil {
		ui.Fatalf("%v", err)
	}

	report := model.Report{
		Paths:   paths,
		Targets: patch.StatusAll(targets),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(report)
}

func runStatusMode(base string) {
	m := tui.InitialModel(base)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
