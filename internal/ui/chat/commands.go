// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat is the root Bubble Tea model for the terminal client.
//
// This file defines the command creators. Each command runs one blocking
// store or API call off the update loop and reports back with a message.
package chat

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/chatpaat-tui/internal/api"
	"github.com/jeranaias/chatpaat-tui/internal/auth"
	"github.com/jeranaias/chatpaat-tui/internal/chatlist"
	"github.com/jeranaias/chatpaat-tui/internal/conversation"
	"github.com/jeranaias/chatpaat-tui/internal/history"
	"github.com/jeranaias/chatpaat-tui/internal/profile"
)

// =============================================================================
// SESSION COMMANDS
// =============================================================================

// SignInCmd attempts a credential sign-in. Session state changes arrive
// separately through the session subscription.
func SignInCmd(session *auth.Store, email, password string) tea.Cmd {
	return func() tea.Msg {
		return AuthResultMsg{Err: session.SignIn(context.Background(), email, password)}
	}
}

// RegisterCmd attempts account registration.
func RegisterCmd(session *auth.Store, username, email, password string) tea.Cmd {
	return func() tea.Msg {
		return AuthResultMsg{Err: session.Register(context.Background(), username, email, password)}
	}
}

// WaitForSessionCmd blocks until the session store signals a change. The
// handler must re-arm it after every SessionEventMsg.
func WaitForSessionCmd(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return SessionEventMsg{}
	}
}

// RequestResetCmd asks the backend to start a password reset.
func RequestResetCmd(svc *profile.Service, email string) tea.Cmd {
	return func() tea.Msg {
		return ResetRequestedMsg{OK: svc.RequestPasswordReset(context.Background(), email)}
	}
}

// ConfirmResetCmd completes the reset flow with the emailed token.
func ConfirmResetCmd(svc *profile.Service, token, password, confirm string) tea.Cmd {
	return func() tea.Msg {
		return ResetConfirmedMsg{OK: svc.ConfirmPasswordReset(context.Background(), token, password, confirm)}
	}
}

// =============================================================================
// CHAT LIST COMMANDS
// =============================================================================

// RefreshChatsCmd reloads all three recency buckets.
func RefreshChatsCmd(list *chatlist.Store, token string) tea.Cmd {
	return func() tea.Msg {
		list.RefreshAll(context.Background(), token)
		return BucketsRefreshedMsg{}
	}
}

// DeleteChatCmd deletes a chat on the backend and, on success, drops it
// from the list store.
func DeleteChatCmd(list *chatlist.Store, token, id string) tea.Cmd {
	return func() tea.Msg {
		return ChatDeletedMsg{ID: id, Err: list.Delete(context.Background(), token, id)}
	}
}

// LogSearchCmd records a committed sidebar search query on the backend
// and in the local search history. Both are best effort.
func LogSearchCmd(client *api.Client, hist *history.Store, token, query string) tea.Cmd {
	return func() tea.Msg {
		client.StoreSearch(context.Background(), token, query)
		if hist != nil {
			_ = hist.Add(context.Background(), query)
		}
		return SearchLoggedMsg{}
	}
}

// =============================================================================
// TRANSCRIPT COMMANDS
// =============================================================================

// LoadTranscriptCmd fetches the transcript ticketed by nav.
func LoadTranscriptCmd(conv *conversation.View, nav conversation.Navigation, token string) tea.Cmd {
	return func() tea.Msg {
		conv.Load(nav, token)
		return TranscriptLoadedMsg{Gen: nav.Gen}
	}
}

// SendPromptCmd posts a prompt under nav's ticket.
func SendPromptCmd(conv *conversation.View, nav conversation.Navigation, token, content string) tea.Cmd {
	return func() tea.Msg {
		conv.Send(nav, token, content)
		return SendFinishedMsg{Gen: nav.Gen}
	}
}

// =============================================================================
// PROFILE COMMANDS
// =============================================================================

// LoadProfileCmd fetches the profile for the editor.
func LoadProfileCmd(svc *profile.Service) tea.Cmd {
	return func() tea.Msg {
		return ProfileLoadedMsg{Profile: svc.Load(context.Background())}
	}
}

// SaveProfileCmd submits profile edits.
func SaveProfileCmd(svc *profile.Service, p api.Profile) tea.Cmd {
	return func() tea.Msg {
		return ProfileSavedMsg{Profile: svc.Update(context.Background(), p)}
	}
}

// ChangePasswordCmd submits a password change.
func ChangePasswordCmd(svc *profile.Service, old, newPassword, confirm string) tea.Cmd {
	return func() tea.Msg {
		return PasswordChangedMsg{OK: svc.ChangePassword(context.Background(), old, newPassword, confirm)}
	}
}

// DeleteAccountCmd deletes the signed-in account.
func DeleteAccountCmd(svc *profile.Service) tea.Cmd {
	return func() tea.Msg {
		return AccountDeletedMsg{OK: svc.DeleteAccount(context.Background())}
	}
}
