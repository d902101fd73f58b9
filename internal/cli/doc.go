// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli parses command line arguments and implements the
// non-interactive commands: login/logout, one-shot ask, the line-mode
// chat REPL, config inspection, and search history management. The
// default command starts the full-screen TUI; main wires that up.
package cli
