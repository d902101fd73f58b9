// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the reusable UI pieces of the chatpaat TUI:
// the chat sidebar, toast overlay, status bar, markdown and code block
// rendering, and the welcome screens. Components are pure view helpers;
// state lives in the domain stores and the root model.
package components
