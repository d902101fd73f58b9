// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - terminal output styling for the non-TUI commands.
package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
)

// Successf prints a green checkmarked line.
func Successf(format string, a ...any) {
	fmt.Println(successStyle.Render("✓ ") + fmt.Sprintf(format, a...))
}

// Errorf prints a red crossed line to stderr.
func Errorf(format string, a ...any) {
	fmt.Println(errorStyle.Render("✗ ") + fmt.Sprintf(format, a...))
}

// Mutedf prints a dim informational line.
func Mutedf(format string, a ...any) {
	fmt.Println(mutedStyle.Render(fmt.Sprintf(format, a...)))
}
