// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the chatpaat TUI.
package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
)

// UNICODE: Rune-aware truncation preserves multi-byte characters.
// Chat titles come back from the backend unsanitized and may contain
// arbitrary UTF-8, so all truncation here counts characters or display
// columns, never bytes.

// TruncateRunes truncates a string to a maximum number of runes (characters).
// If the string is truncated, "..." is appended.
func TruncateRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	if maxRunes <= 3 {
		return string(runes[:maxRunes])
	}
	return string(runes[:maxRunes-3]) + "..."
}

// TruncateWidth truncates a string to a maximum display width, appending
// "..." when something was cut. Double-width (CJK) characters count as two
// columns via go-runewidth.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// StringWidth returns the display width of a string in terminal columns.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// CleanTitle strips a single pair of surrounding quotes from a chat title.
// The backend's title generator sometimes wraps titles in quotes verbatim.
func CleanTitle(title string) string {
	if len(title) >= 2 {
		first := title[0]
		last := title[len(title)-1]
		if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
			return title[1 : len(title)-1]
		}
	}
	return title
}

// RuneLen returns the number of runes (characters) in a string.
func RuneLen(s string) int {
	return len([]rune(s))
}

// SafeSubstring returns a substring using rune indices (not byte indices).
func SafeSubstring(s string, start, end int) string {
	runes := []rune(s)
	if start < 0 {
		start = 0
	}
	if start > len(runes) {
		return ""
	}
	if end < 0 || end > len(runes) {
		end = len(runes)
	}
	if start >= end {
		return ""
	}
	return string(runes[start:end])
}

// foldCaser performs Unicode case folding, which handles cases plain
// ToLower misses (e.g. Kelvin sign, dotless i).
var foldCaser = cases.Fold()

// ContainsFold reports whether substr occurs in s under Unicode case
// folding. Used by the sidebar search filter.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(foldCaser.String(s), foldCaser.String(substr))
}
