// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the chatpaat TUI.
//
// This package contains common helper functions used throughout the
// application for string manipulation and file operations.
//
// # Key Functions
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe string truncation with ellipsis
//   - TruncateWidth: display-column truncation via go-runewidth
//   - CleanTitle: strips stray quoting from backend chat titles
//   - ContainsFold: case-folded substring matching for search
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
package util
