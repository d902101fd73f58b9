// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatpaat-tui/internal/notify"
	"github.com/jeranaias/chatpaat-tui/internal/ui/styles"
)

// =============================================================================
// TOAST RENDERING
// =============================================================================

// RenderToast renders one toast notification.
func RenderToast(theme *styles.Theme, toast notify.Toast, width int) string {
	maxWidth := 60
	if width > 0 && width-8 < maxWidth {
		maxWidth = width - 8
	}
	if maxWidth < 30 {
		maxWidth = 30
	}

	var box lipgloss.Style
	var icon string
	switch toast.Kind {
	case notify.KindError:
		box = theme.ToastError
		icon = "✗"
	case notify.KindSuccess:
		box = theme.ToastSuccess
		icon = "✓"
	case notify.KindWarning:
		box = theme.ToastWarning
		icon = "⚠"
	default:
		box = theme.ToastInfo
		icon = "ℹ"
	}

	message := toast.Message
	if len(message) > maxWidth-10 {
		message = wrapText(message, maxWidth-10)
	}
	content := icon + " " + message

	if toast.Dismissible {
		hints := []string{"[x] Dismiss"}
		if secs := int(toast.Remaining(time.Now()).Seconds()); secs > 0 {
			hints = append(hints, itoa(secs)+"s")
		}
		hint := lipgloss.NewStyle().
			Foreground(styles.Color(theme.Palette.Muted)).
			Italic(true).
			Render(strings.Join(hints, "  "))
		content += "\n" + hint
	}

	return box.MaxWidth(maxWidth).Render(content)
}

// RenderToastStack renders the active toasts stacked in the bottom-right
// corner, newest at the bottom.
func RenderToastStack(theme *styles.Theme, toasts []notify.Toast, width, height int) string {
	if len(toasts) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(toasts))
	for _, toast := range toasts {
		rendered = append(rendered, RenderToast(theme, toast, width))
	}

	stack := lipgloss.JoinVertical(lipgloss.Right, rendered...)
	positioned := lipgloss.NewStyle().
		MarginRight(2).
		MarginBottom(1).
		Render(stack)

	if width > 0 && height > 0 {
		return lipgloss.Place(width, height, lipgloss.Right, lipgloss.Bottom, positioned)
	}
	return positioned
}

// wrapText word-wraps text to the given width.
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return text
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var lines []string
	var line strings.Builder
	for _, word := range words {
		switch {
		case line.Len() == 0:
			line.WriteString(word)
		case line.Len()+1+len(word) <= maxWidth:
			line.WriteString(" ")
			line.WriteString(word)
		default:
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(word)
		}
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
