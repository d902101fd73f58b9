// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatpaat-tui/internal/ui/styles"
)

// =============================================================================
// WELCOME / SIGN-IN PROMPT
// =============================================================================

const logo = `
   ________          __  ____              __
  / ____/ /_  ____ _/ /_/ __ \____ _____ _/ /_
 / /   / __ \/ __ ` + "`" + `/ __/ /_/ / __ ` + "`" + `/ __ ` + "`" + `/ __/
/ /___/ / / / /_/ / /_/ ____/ /_/ / /_/ / /_
\____/_/ /_/\__,_/\__/_/    \__,_/\__,_/\__/
`

// RenderSignInPrompt draws the screen shown to an unauthenticated user.
// No chat machinery is active behind it.
func RenderSignInPrompt(theme *styles.Theme, width, height int) string {
	var b strings.Builder
	b.WriteString(theme.WelcomeLogo.Render(strings.TrimLeft(logo, "\n")))
	b.WriteString("\n\n")
	b.WriteString(theme.WelcomeInfo.Render("Sign in to start chatting"))
	b.WriteString("\n\n")
	b.WriteString(theme.WelcomeKey.Render("enter") + theme.WelcomeMuted.Render("  sign in"))
	b.WriteString("\n")
	b.WriteString(theme.WelcomeKey.Render("ctrl+r") + theme.WelcomeMuted.Render(" register"))
	b.WriteString("\n")
	b.WriteString(theme.WelcomeKey.Render("ctrl+c") + theme.WelcomeMuted.Render(" quit"))

	box := theme.WelcomeBox.Render(b.String())
	if width > 0 && height > 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

// RenderEmptyTranscript draws the placeholder for a chat with no
// messages yet.
func RenderEmptyTranscript(theme *styles.Theme, width, height int) string {
	msg := theme.WelcomeMuted.Render("Type a message to get started")
	if width > 0 && height > 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}
	return msg
}
