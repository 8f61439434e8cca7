package tui

import (
	"agpatch/internal/model"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel holds the TUI state for the read-only status view.
type AppModel struct {
	// Data
	Paths   model.InstallPaths
	Targets []model.TargetStatus
	Loading bool
	Err     error

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg

	// Components
	DetailsViewport viewport.Model

	// Resolution input
	BaseOverride string // --base flag, threaded into the discovery command
}

// InitialModel returns the initial state.
func InitialModel(baseOverride string) AppModel {
	return AppModel{
		Loading:      true,
		SelectedIdx:  0,
		BaseOverride: baseOverride,
	}
}
