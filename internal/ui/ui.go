// Package ui renders the user-facing status lines printed by the commands.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// Success prints a green check line.
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, successStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Fail prints a red cross line.
func Fail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, failStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}

// Error prints an indented red detail line, typically under Fail.
func Error(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, failStyle.Render("  "+fmt.Sprintf(format, args...)))
}

// Warn prints a yellow line.
func Warn(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf(format, args...)))
}

// Info prints a blue line.
func Info(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, infoStyle.Render(fmt.Sprintf(format, args...)))
}

// Hint prints a cyan line, used for suggested commands.
func Hint(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, hintStyle.Render(fmt.Sprintf(format, args...)))
}
