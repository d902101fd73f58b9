// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestStatusBarShowsIdentity(t *testing.T) {
	out := RenderStatusBar(testTheme(), StatusInfo{
		Username: "mara",
		Theme:    "dark",
		Width:    120,
	}, DefaultShortcuts)
	if !strings.Contains(out, "mara") || !strings.Contains(out, "dark") {
		t.Fatalf("identity missing:\n%s", out)
	}
	if !strings.Contains(out, "ctrl+n") {
		t.Fatal("shortcut hints missing at full width")
	}
}

func TestStatusBarSignedOut(t *testing.T) {
	out := RenderStatusBar(testTheme(), StatusInfo{Width: 120}, nil)
	if !strings.Contains(out, "signed out") {
		t.Fatalf("expected signed out marker:\n%s", out)
	}
}

func TestStatusBarSendingIndicator(t *testing.T) {
	out := RenderStatusBar(testTheme(), StatusInfo{
		Username: "mara",
		Theme:    "dark",
		Sending:  true,
		Width:    120,
	}, nil)
	if !strings.Contains(out, "thinking") {
		t.Fatalf("expected thinking indicator:\n%s", out)
	}
}

func TestStatusBarDropsHintsWhenNarrow(t *testing.T) {
	out := RenderStatusBar(testTheme(), StatusInfo{
		Username: "mara",
		Theme:    "dark",
		Width:    24,
	}, DefaultShortcuts)
	if strings.Contains(out, "settings") {
		t.Fatalf("hints should be dropped at width 24:\n%s", out)
	}
	if w := lipgloss.Width(out); w > 24 {
		t.Fatalf("bar width = %d, want <= 24", w)
	}
}
