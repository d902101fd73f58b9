// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat is the root Bubble Tea model for the terminal client.
//
// This file defines the Bubble Tea message types. Messages carry the
// navigation generation where staleness matters; the stores already drop
// stale state internally, the generation here only gates view rebuilds.
package chat

import (
	"github.com/jeranaias/chatpaat-tui/internal/api"
)

// =============================================================================
// SESSION MESSAGES
// =============================================================================

// SessionEventMsg signals that the auth session changed (sign-in,
// sign-out, or forced re-auth). The handler re-reads the session store.
type SessionEventMsg struct{}

// AuthResultMsg reports the outcome of a sign-in or registration attempt.
type AuthResultMsg struct {
	Err error
}

// ResetConfirmedMsg reports the token-and-new-password confirmation leg
// of the reset flow.
type ResetConfirmedMsg struct {
	OK bool
}

// ResetRequestedMsg reports a password reset request round trip.
type ResetRequestedMsg struct {
	OK bool
}

// =============================================================================
// CHAT LIST MESSAGES
// =============================================================================

// BucketsRefreshedMsg signals that all three recency buckets reloaded.
type BucketsRefreshedMsg struct{}

// ChatDeletedMsg reports a chat deletion attempt.
type ChatDeletedMsg struct {
	ID  string
	Err error
}

// SearchLoggedMsg signals that a sidebar search query was recorded.
type SearchLoggedMsg struct{}

// =============================================================================
// TRANSCRIPT MESSAGES
// =============================================================================

// TranscriptLoadedMsg signals that a transcript fetch finished.
type TranscriptLoadedMsg struct {
	Gen uint64
}

// SendFinishedMsg signals that a prompt round trip finished.
type SendFinishedMsg struct {
	Gen uint64
}

// =============================================================================
// PROFILE MESSAGES
// =============================================================================

// ProfileLoadedMsg delivers the profile for the editor, nil on failure.
type ProfileLoadedMsg struct {
	Profile *api.Profile
}

// ProfileSavedMsg reports a profile update. Profile is nil when the save
// failed or when the email changed and a re-login is required.
type ProfileSavedMsg struct {
	Profile *api.Profile
}

// PasswordChangedMsg reports a password change attempt.
type PasswordChangedMsg struct {
	OK bool
}

// AccountDeletedMsg reports an account deletion attempt.
type AccountDeletedMsg struct {
	OK bool
}

// =============================================================================
// CONFIG MESSAGES
// =============================================================================

// ConfigReloadedMsg signals that the config file watcher applied a new
// configuration.
type ConfigReloadedMsg struct{}
