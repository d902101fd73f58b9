// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat is the root Bubble Tea model for the terminal client.
//
// The model owns four screens: the auth form, the chat screen with its
// sidebar and transcript, the settings panel, and the profile editor.
// Long-lived state (session, preferences, chat list, conversation, toasts)
// lives in the stores under internal/; this package only wires keyboard
// and message traffic to them and renders their current state.
package chat
