// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat is the root Bubble Tea model for the terminal client.
package chat

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/chatpaat-tui/internal/api"
	"github.com/jeranaias/chatpaat-tui/internal/notify"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update is the root message handler.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.FocusMsg:
		// The terminal regained focus; the chat list may be stale.
		if m.deps.Session.SignedIn() {
			return m, RefreshChatsCmd(m.deps.List, m.deps.Session.Token())
		}
		return m, nil

	case spinner.TickMsg:
		if !m.sending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case notify.TickMsg:
		m.deps.Toasts.Prune()
		if m.deps.Toasts.Empty() {
			m.ticking = false
			return m, nil
		}
		return m, notify.TickCmd()

	case SessionEventMsg:
		return m.handleSessionEvent()

	case AuthResultMsg:
		if msg.Err != nil {
			m.authForm.SetError(authErrorText(msg.Err))
		}
		// Success arrives separately as a SessionEventMsg.
		return m, nil

	case ResetRequestedMsg:
		if msg.OK {
			// The emailed token is entered in the confirm step.
			m.authForm.SetMode(ModeResetConfirm)
		}
		return m, m.startToastTick()

	case ResetConfirmedMsg:
		if msg.OK {
			m.authForm.Reset()
			m.authForm.SetMode(ModeSignIn)
		}
		return m, m.startToastTick()

	case BucketsRefreshedMsg:
		m.sidebar.ClampCursor()
		return m, nil

	case ChatDeletedMsg:
		if msg.Err != nil {
			m.deps.Toasts.Error("Failed to delete chat")
		} else if msg.ID == m.deps.Conv.ChatID() {
			// The open chat is gone; start a fresh one.
			return m, tea.Batch(m.openChat(""), m.startToastTick())
		}
		m.sidebar.ClampCursor()
		return m, m.startToastTick()

	case TranscriptLoadedMsg:
		if msg.Gen == m.nav.Gen {
			m.rebuildTranscript()
		}
		return m, nil

	case SendFinishedMsg:
		if msg.Gen == m.nav.Gen {
			m.sending = false
			m.rebuildTranscriptAfterCmd()
		}
		return m, nil

	case SearchLoggedMsg:
		return m, nil

	case ProfileLoadedMsg:
		if msg.Profile != nil {
			m.profForm.Populate(*msg.Profile)
		}
		return m, m.startToastTick()

	case ProfileSavedMsg:
		if msg.Profile != nil {
			m.profForm.Populate(*msg.Profile)
		}
		// A nil profile on an email change means a forced re-auth is
		// already on its way via the session subscription.
		return m, m.startToastTick()

	case PasswordChangedMsg:
		if msg.OK {
			m.profForm.ClearPasswords()
		}
		return m, m.startToastTick()

	case AccountDeletedMsg:
		return m, m.startToastTick()

	case ConfigReloadedMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// resize propagates new terminal dimensions to every pane.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.ready = true

	sidebarWidth := 0
	if m.sidebarOpen {
		m.sidebar.Width = 32
		if m.sidebar.Compact {
			m.sidebar.Width = 20
		}
		sidebarWidth = m.sidebar.Width
	}
	m.sidebar.Height = height - 1

	m.viewport.Width = width - sidebarWidth
	m.viewport.Height = height - 5 // header, input, status
	if m.viewport.Height < 3 {
		m.viewport.Height = 3
	}
	m.input.Width = m.viewport.Width - 6
	m.search.Width = sidebarWidth - 6

	m.rebuildTranscript()
}

// startToastTick arms the toast timer when toasts are visible and the
// timer is not already running.
func (m *Model) startToastTick() tea.Cmd {
	if m.ticking || m.deps.Toasts.Empty() {
		return nil
	}
	m.ticking = true
	return notify.TickCmd()
}

// handleSessionEvent reacts to a session change from any source: the
// auth form, a forced re-auth, or a sign-out.
func (m Model) handleSessionEvent() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{WaitForSessionCmd(m.sessionCh)}

	if m.deps.Session.SignedIn() {
		m.screen = ScreenChat
		m.focus = FocusInput
		m.input.Focus()
		m.authForm.Reset()
		m.nav = m.deps.Conv.Open("")
		m.rebuildTranscript()
		cmds = append(cmds, RefreshChatsCmd(m.deps.List, m.deps.Session.Token()))
	} else {
		m.screen = ScreenAuth
		m.authForm.SetMode(ModeSignIn)
		m.deps.List.Clear()
		m.deps.Conv.Close()
		m.sidebar.Query = ""
		m.sidebar.Selected = 0
		m.searching = false
		m.search.Reset()
		m.sending = false
	}

	if cmd := m.startToastTick(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// =============================================================================
// KEY DISPATCH
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMap.Quit) {
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenAuth:
		return m.handleAuthKey(msg)
	case ScreenSettings:
		return m.handleSettingsKey(msg)
	case ScreenProfile:
		return m.handleProfileKey(msg)
	default:
		return m.handleChatKey(msg)
	}
}

func (m Model) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.SwitchMode):
		m.authForm.CycleMode()
		return m, nil

	case msg.String() == "tab" || msg.String() == "down":
		m.authForm.NextField()
		return m, nil

	case key.Matches(msg, m.keyMap.Submit):
		if !m.authForm.Validate() {
			return m, nil
		}
		username, email, password, _ := m.authForm.Values()
		switch m.authForm.Mode {
		case ModeRegister:
			return m, RegisterCmd(m.deps.Session, username, email, password)
		case ModeReset:
			return m, RequestResetCmd(m.deps.Profile, email)
		case ModeResetConfirm:
			token, newPassword, confirm := m.authForm.ResetValues()
			return m, ConfirmResetCmd(m.deps.Profile, token, newPassword, confirm)
		default:
			return m, SignInCmd(m.deps.Session, email, password)
		}
	}

	return m, m.authForm.Update(msg)
}

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.deps.Session.SignedIn() {
		switch {
		case key.Matches(msg, m.keyMap.Submit):
			m.screen = ScreenAuth
			m.authForm.SetMode(ModeSignIn)
		case key.Matches(msg, m.keyMap.SwitchMode):
			m.screen = ScreenAuth
			m.authForm.SetMode(ModeRegister)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keyMap.NewChat):
		m.focus = FocusInput
		m.input.Focus()
		return m, m.openChat("")

	case key.Matches(msg, m.keyMap.FocusSidebar):
		if m.focus == FocusInput {
			m.focus = FocusSidebar
			m.input.Blur()
		} else {
			m.focus = FocusInput
			m.input.Focus()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.ToggleDark):
		m.deps.Prefs.ToggleDarkMode()
		m.rebuildTranscript()
		return m, nil

	case key.Matches(msg, m.keyMap.Settings):
		m.screen = ScreenSettings
		return m, nil

	case key.Matches(msg, m.keyMap.Profile):
		m.screen = ScreenProfile
		return m, LoadProfileCmd(m.deps.Profile)
	}

	if m.focus == FocusSidebar {
		return m.handleSidebarKey(msg)
	}
	return m.handleInputKey(msg)
}

func (m Model) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch {
		case key.Matches(msg, m.keyMap.Submit):
			return m, m.commitSearch()
		case key.Matches(msg, m.keyMap.Back):
			m.searching = false
			m.search.Reset()
			m.sidebar.Query = ""
			m.sidebar.ClampCursor()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.sidebar.Query = m.search.Value()
		m.sidebar.ClampCursor()
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keyMap.Search):
		m.searching = true
		m.search.Focus()
		return m, nil

	case key.Matches(msg, m.keyMap.Up):
		m.sidebar.MoveUp()
		return m, nil

	case key.Matches(msg, m.keyMap.Down):
		m.sidebar.MoveDown()
		return m, nil

	case key.Matches(msg, m.keyMap.Submit):
		chat, ok := m.sidebar.SelectedChat()
		if !ok {
			return m, nil
		}
		m.focus = FocusInput
		m.input.Focus()
		return m, m.openChat(chat.ID)

	case key.Matches(msg, m.keyMap.Favorite):
		if chat, ok := m.sidebar.SelectedChat(); ok {
			m.deps.List.ToggleFavorite(chat.ID)
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Archive):
		if chat, ok := m.sidebar.SelectedChat(); ok {
			m.deps.List.ToggleArchive(chat.ID)
			m.sidebar.ClampCursor()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Archived):
		m.sidebar.ShowArchived = !m.sidebar.ShowArchived
		m.sidebar.ClampCursor()
		return m, nil

	case key.Matches(msg, m.keyMap.Delete):
		if chat, ok := m.sidebar.SelectedChat(); ok {
			return m, DeleteChatCmd(m.deps.List, m.deps.Session.Token(), chat.ID)
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Back):
		m.focus = FocusInput
		m.input.Focus()
		return m, nil
	}

	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Submit):
		return m, m.submitPrompt()

	case key.Matches(msg, m.keyMap.Up):
		m.viewport.LineUp(1)
		return m, nil

	case key.Matches(msg, m.keyMap.Down):
		m.viewport.LineDown(1)
		return m, nil

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.HalfViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Back), key.Matches(msg, m.keyMap.Settings):
		m.screen = ScreenChat
		m.sidebar.Compact = m.deps.Prefs.Settings().CompactSidebar
		m.resize(m.width, m.height)
		return m, nil

	case key.Matches(msg, m.keyMap.Up):
		m.settings.MoveUp()
		return m, nil

	case key.Matches(msg, m.keyMap.Down):
		m.settings.MoveDown()
		return m, nil

	case msg.String() == "left":
		m.settings.Adjust(m.deps.Prefs, -1)
		return m, nil

	case msg.String() == "right":
		m.settings.Adjust(m.deps.Prefs, 1)
		return m, nil

	case msg.String() == " " || key.Matches(msg, m.keyMap.Submit):
		m.settings.Toggle(m.deps.Prefs)
		return m, nil
	}

	return m, nil
}

func (m Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Back):
		m.profForm.DisarmDelete()
		m.screen = ScreenChat
		return m, nil

	case msg.String() == "tab":
		m.profForm.DisarmDelete()
		m.profForm.NextField()
		return m, nil

	case msg.String() == "ctrl+d":
		if m.profForm.ArmDelete() {
			return m, DeleteAccountCmd(m.deps.Profile)
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Submit):
		m.profForm.DisarmDelete()
		if !m.profForm.Loaded() {
			return m, nil
		}
		if m.profForm.InPasswordSection() {
			old, newPassword, confirm := m.profForm.Passwords()
			return m, ChangePasswordCmd(m.deps.Profile, old, newPassword, confirm)
		}
		return m, SaveProfileCmd(m.deps.Profile, m.profForm.Profile())
	}

	return m, m.profForm.Update(msg)
}

// authErrorText maps an auth failure onto the form error line.
func authErrorText(err error) string {
	switch {
	case api.IsAuth(err):
		return "Invalid email or password"
	case api.IsNetwork(err):
		return "Cannot reach the server"
	default:
		return err.Error()
	}
}
