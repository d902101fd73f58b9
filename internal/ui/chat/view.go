// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat is the root Bubble Tea model for the terminal client.
package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatpaat-tui/internal/api"
	"github.com/jeranaias/chatpaat-tui/internal/conversation"
	"github.com/jeranaias/chatpaat-tui/internal/ui/components"
	"github.com/jeranaias/chatpaat-tui/internal/ui/styles"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the active screen.
func (m Model) View() string {
	if !m.ready {
		return "Loading…"
	}
	theme := m.deps.Prefs.Theme()

	switch m.screen {
	case ScreenAuth:
		return m.authForm.Render(theme, m.width, m.height)
	case ScreenSettings:
		return m.settings.Render(theme, m.deps.Prefs.Settings(), m.width, m.height)
	case ScreenProfile:
		return m.profForm.Render(theme, m.width, m.height)
	}

	if !m.deps.Session.SignedIn() {
		return components.RenderSignInPrompt(theme, m.width, m.height)
	}
	return m.renderChatScreen(theme)
}

// renderChatScreen composes sidebar, transcript, input, and status bar.
func (m Model) renderChatScreen(theme *styles.Theme) string {
	main := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(theme),
		m.viewport.View(),
		m.renderInput(theme),
	)

	var body string
	if m.sidebarOpen {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.Render(theme), main)
	} else {
		body = main
	}

	username := ""
	if user, ok := m.deps.Session.User(); ok {
		username = user.Username
	}
	status := components.RenderStatusBar(theme, components.StatusInfo{
		Username: username,
		Theme:    string(m.deps.Prefs.Settings().Theme),
		Sending:  m.sending,
		Width:    m.width,
	}, components.DefaultShortcuts)

	screen := lipgloss.JoinVertical(lipgloss.Left, body, status)

	if toasts := m.deps.Toasts.Active(); len(toasts) > 0 {
		stack := components.RenderToastStack(theme, toasts, m.width, 0)
		screen = lipgloss.JoinVertical(lipgloss.Left, screen, stack)
	}
	return screen
}

// renderHeader draws the chat title line.
func (m Model) renderHeader(theme *styles.Theme) string {
	title := "New chat"
	if chat, ok := m.deps.List.Find(m.deps.Conv.ChatID()); ok {
		title = chat.Title
	}

	line := theme.HeaderTitle.Render(title)
	if m.sending {
		line += "  " + theme.Spinner.Render(m.spinner.View()) +
			theme.ThinkingText.Render(" thinking…")
	}
	return theme.Header.Width(m.viewport.Width).Render(line)
}

// renderInput draws the message composer.
func (m Model) renderInput(theme *styles.Theme) string {
	prompt := theme.InputPrompt.Render("› ")
	return theme.InputContainer.Width(m.viewport.Width).Render(prompt + m.input.View())
}

// =============================================================================
// TRANSCRIPT ENTRIES
// =============================================================================

// renderEntry renders one transcript entry. User messages show as plain
// bubbles; assistant messages get markdown rendering, with fenced code
// routed through the syntax highlighter instead.
func renderEntry(theme *styles.Theme, md *components.MarkdownRenderer, e conversation.Entry, width int, dark bool) string {
	switch e.Role {
	case api.RoleUser:
		content := e.Content
		if e.Edited {
			content += " (edited)"
		}
		block := theme.UserBubble.MaxWidth(width).Render(content)
		if e.Reaction != "" {
			block += "\n" + theme.WelcomeMuted.Render(e.Reaction)
		}
		return block

	case api.RoleAssistant:
		if e.Failed {
			return theme.ErrorBox.MaxWidth(width).Render(e.Content)
		}
		var body string
		if strings.Contains(e.Content, "```") {
			body = components.ParseCodeBlocks(theme, e.Content, width-4)
		} else {
			body = md.Render(e.Content, width-4, dark)
		}
		block := theme.AssistantBubble.MaxWidth(width).Render(body)
		if e.Reaction != "" {
			block += "\n" + theme.WelcomeMuted.Render(e.Reaction)
		}
		return block

	default:
		return theme.SystemBubble.MaxWidth(width).Render(e.Content)
	}
}
