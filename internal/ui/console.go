// Package ui prints the color-coded diagnostic lines every stage reports
// through. There is no log file: agpatch is a one-shot console tool and
// stdout/stderr are the whole observability surface.
package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")) // Green

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // Orange

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")) // Red

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")) // Sky Blue/Cyan

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Grey
)

// Successf reports a completed action (a patch applied, a file written).
func Successf(format string, args ...any) {
	fmt.Println(successStyle.Render("  ✓ " + fmt.Sprintf(format, args...)))
}

// Warnf reports a recoverable condition; the run continues.
func Warnf(format string, args ...any) {
	fmt.Println(warnStyle.Render("  ! " + fmt.Sprintf(format, args...)))
}

// Errorf reports a failure without exiting.
func Errorf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("  ✗ "+fmt.Sprintf(format, args...)))
}

// Infof reports a stage heading or neutral progress line.
func Infof(format string, args ...any) {
	fmt.Println(infoStyle.Render(fmt.Sprintf(format, args...)))
}

// Dimf reports low-signal detail (skipped files, fallback strategies taken).
func Dimf(format string, args ...any) {
	fmt.Println(dimStyle.Render("  · " + fmt.Sprintf(format, args...)))
}

// Fatalf prints an error line and aborts the run.
func Fatalf(format string, args ...any) {
	Errorf(format, args...)
	os.Exit(1)
}
