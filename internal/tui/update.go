package tui

import (
	"agpatch/internal/locate"
	"agpatch/internal/model"
	"agpatch/internal/patch"

	tea "github.com/charmbracelet/bubbletea"
)

// MsgPlanReady indicates discovery and evaluation have completed.
type MsgPlanReady struct {
	Paths   model.InstallPaths
	Targets []model.TargetStatus
}

// MsgError indicates an error occurred.
type MsgError error

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.DetailsViewport.Width = msg.Width / 2
		m.DetailsViewport.Height = msg.Height - 4 // minus footer/header
		m.DetailsViewport.SetContent(m.detailContent())
		return m, nil

	case MsgPlanReady:
		m.Loading = false
		m.Paths = msg.Paths
		m.Targets = msg.Targets
		m.SelectedIdx = 0
		m.DetailsViewport.SetContent(m.detailContent())
		return m, nil

	case MsgError:
		m.Err = msg
		m.Loading = false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
				m.DetailsViewport.SetContent(m.detailContent())
			}
		case "down", "j":
			if m.SelectedIdx < len(m.Targets)-1 {
				m.SelectedIdx++
				m.DetailsViewport.SetContent(m.detailContent())
			}
		case "g":
			m.SelectedIdx = 0
			m.DetailsViewport.SetContent(m.detailContent())
		case "G":
			if len(m.Targets) > 0 {
				m.SelectedIdx = len(m.Targets) - 1
				m.DetailsViewport.SetContent(m.detailContent())
			}
		}
	}

	return m, nil
}

// InitPlanCmd resolves the installation and evaluates every patch target
// in the background. Strictly read-only: the TUI never writes.
func InitPlanCmd(baseOverride string) tea.Cmd {
	return func() tea.Msg {
		paths, err := locate.Paths(baseOverride)
		if err != nil {
			return MsgError(err)
		}
		targets, err := patch.Plan(paths)
		if err != nil {
			return MsgError(err)
		}
		return MsgPlanReady{Paths: paths, Targets: patch.StatusAll(targets)}
	}
}
