// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatpaat-tui/internal/ui/styles"
	"github.com/jeranaias/chatpaat-tui/internal/util"
)

// =============================================================================
// STATUS BAR
// =============================================================================

// StatusInfo is everything the status bar displays.
type StatusInfo struct {
	Username string
	Theme    string
	Sending  bool
	Width    int
}

// Shortcut is one key hint in the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// DefaultShortcuts are the hints shown in the chat screen.
var DefaultShortcuts = []Shortcut{
	{"ctrl+n", "new chat"},
	{"tab", "sidebar"},
	{"ctrl+t", "theme"},
	{"ctrl+s", "settings"},
	{"ctrl+c", "quit"},
}

// RenderStatusBar draws the bottom status line: identity on the left,
// key hints on the right, truncated to fit.
func RenderStatusBar(theme *styles.Theme, info StatusInfo, shortcuts []Shortcut) string {
	width := info.Width
	if width <= 0 {
		width = 80
	}

	var left string
	if info.Username != "" {
		left = info.Username + " · " + info.Theme
	} else {
		left = "signed out"
	}
	if info.Sending {
		left += " · thinking…"
	}

	parts := make([]string, 0, len(shortcuts))
	for _, sc := range shortcuts {
		parts = append(parts,
			theme.ShortcutKey.Render(sc.Key)+" "+theme.ShortcutDesc.Render(sc.Desc))
	}
	right := strings.Join(parts, "  ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		// Not enough room: drop the hints first, then truncate the left.
		right = ""
		gap = width - lipgloss.Width(left) - 2
		if gap < 1 {
			left = util.TruncateWidth(left, width-3)
			gap = 1
		}
	}

	return theme.StatusBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
