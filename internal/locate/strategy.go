package locate

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"agpatch/internal/model"
)

// Strategy is one candidate way of resolving the opencode-ai install
// directory. Strategies are evaluated left to right; the first one that
// yields an existing directory wins.
type Strategy interface {
	Name() string
	Resolve() (string, bool)
}

// OverrideStrategy resolves from an explicit directory (the --base flag
// or the AGPATCH_OPENCODE_DIR environment variable).
type OverrideStrategy struct {
	Source string // where the override came from, for diagnostics
	Dir    string
}

func (s OverrideStrategy) Name() string {
	return "override (" + s.Source + ")"
}

func (s OverrideStrategy) Resolve() (string, bool) {
	if s.Dir == "" {
		return "", false
	}
	dir := model.ExpandTilde(s.Dir)
	return dir, model.DirExists(dir)
}

// DirStrategy checks a conventional global-install location.
type DirStrategy struct {
	Dir string
}

func (s DirStrategy) Name() string {
	return s.Dir
}

func (s DirStrategy) Resolve() (string, bool) {
	dir := model.ExpandTilde(s.Dir)
	return dir, model.DirExists(dir)
}

// CommandStrategy asks a package manager where its global node_modules
// lives (npm root -g / pnpm root -g). A missing command or non-zero exit
// just means "try the next candidate" — never fatal.
type CommandStrategy struct {
	Command string
	Args    []string
}

func (s CommandStrategy) Name() string {
	return s.Command + " " + strings.Join(s.Args, " ")
}

func (s CommandStrategy) Resolve() (string, bool) {
	out, err := exec.Command(s.Command, s.Args...).Output()
	if err != nil {
		return "", false
	}
	root := strings.TrimSpace(string(out))
	if root == "" {
		return "", false
	}
	dir := filepath.Join(root, model.PackageName)
	return dir, model.DirExists(dir)
}

// DefaultStrategies returns the ordered candidate list: explicit override,
// environment variable, the two conventional npm global locations, then
// the two package-manager queries.
func DefaultStrategies(override string) []Strategy {
	return []Strategy{
		OverrideStrategy{Source: "--base", Dir: override},
		OverrideStrategy{Source: model.EnvInstallDir, Dir: os.Getenv(model.EnvInstallDir)},
		DirStrategy{Dir: "/usr/local/lib/node_modules/" + model.PackageName},
		DirStrategy{Dir: "~/.npm-global/lib/node_modules/" + model.PackageName},
		CommandStrategy{Command: "npm", Args: []string{"root", "-g"}},
		CommandStrategy{Command: "pnpm", Args: []string{"root", "-g"}},
	}
}
