package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"agpatch/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(lipgloss.Color("205")) // Pinkish

	unselectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(4).
				Foreground(lipgloss.Color("252"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	detailStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63"))

	appliedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))  // Green
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")) // Orange
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // Red
)

// stateIcon renders the one-character state marker for a target.
func stateIcon(s model.PatchState) string {
	switch s {
	case model.StateApplied:
		return appliedStyle.Render(model.IconApplied)
	case model.StatePending:
		return pendingStyle.Render(model.IconPending)
	default:
		return missingStyle.Render(model.IconMissing)
	}
}

func (m AppModel) View() string {
	if m.Loading {
		return "\n  Inspecting installation... please wait.\n"
	}
	if m.Err != nil {
		return fmt.Sprintf("\n  Error: %v\n\n  Press q to quit.\n", m.Err)
	}

	width := m.WindowSize.Width
	height := m.WindowSize.Height

	netWidth := width - 6
	if netWidth < 20 {
		netWidth = 20
	}
	leftWidth := netWidth / 2
	rightWidth := netWidth - leftWidth

	boxHeight := height - 6
	if boxHeight < 6 {
		boxHeight = 6
	}
	interiorHeight := boxHeight - 2
	if interiorHeight < 2 {
		interiorHeight = 2
	}

	// LEFT PANEL: patch target list
	var leftView strings.Builder
	leftView.WriteString(titleStyle.Render("Patch Targets"))
	leftView.WriteString("\n\n")

	// Windowing: header takes 2 lines
	visibleItems := interiorHeight - 2
	if visibleItems < 1 {
		visibleItems = 1
	}
	start := 0
	if m.SelectedIdx >= visibleItems {
		start = m.SelectedIdx - visibleItems + 1
	}
	end := start + visibleItems
	if end > len(m.Targets) {
		end = len(m.Targets)
	}

	for i := start; i < end; i++ {
		t := m.Targets[i]
		line := stateIcon(t.State) + " " + t.Description
		if i == m.SelectedIdx {
			leftView.WriteString(selectedItemStyle.Render("> " + line))
		} else {
			leftView.WriteString(unselectedItemStyle.Render(line))
		}
		leftView.WriteString("\n")
	}

	leftBox := detailStyle.
		Width(leftWidth - 4).
		Height(interiorHeight).
		Render(leftView.String())

	// RIGHT PANEL: selected target detail
	m.DetailsViewport.Width = rightWidth - 4
	m.DetailsViewport.Height = interiorHeight
	rightBox := detailStyle.
		Width(rightWidth - 4).
		Height(interiorHeight).
		Render(m.DetailsViewport.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, leftBox, rightBox)

	footer := dimStyle.Render("  ↑/↓ move · q quit · status view is read-only, run agpatch to apply")

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("agpatch %s — %s", model.Version, m.Paths.Base)),
		body,
		footer,
	)
}

// detailContent builds the right-panel text for the selected target.
func (m AppModel) detailContent() string {
	if m.SelectedIdx >= len(m.Targets) {
		return ""
	}
	t := m.Targets[m.SelectedIdx]

	var b strings.Builder
	b.WriteString(t.Description + "\n\n")
	b.WriteString("File:  " + t.File + "\n")
	b.WriteString("State: " + string(t.State) + "\n")
	if t.Detail != "" {
		b.WriteString("Change: " + t.Detail + "\n")
	}

	switch t.State {
	case model.StatePending:
		b.WriteString("\nRunning agpatch will modify this file (a " +
			model.BackupSuffix + " backup is written first).")
	case model.StateMissingPattern:
		b.WriteString("\nNeither the original nor the patched text was found.\n" +
			"The bundle layout may have changed; manual update may be needed.")
	case model.StateMissingFile:
		b.WriteString("\nThe target file is not on disk. Optional chunks are\n" +
			"skipped; required bundles abort the run.")
	}
	return b.String()
}

func (m AppModel) Init() tea.Cmd {
	return InitPlanCmd(m.BaseOverride)
}
