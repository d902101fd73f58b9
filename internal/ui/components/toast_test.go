// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/chatpaat-tui/internal/notify"
)

func makeToast(kind notify.Kind, msg string) notify.Toast {
	return notify.Toast{
		ID:          uuid.NewString(),
		Message:     msg,
		Kind:        kind,
		CreatedAt:   time.Now(),
		Duration:    4 * time.Second,
		Dismissible: true,
	}
}

func TestRenderToastCarriesMessage(t *testing.T) {
	out := RenderToast(testTheme(), makeToast(notify.KindSuccess, "Profile updated successfully"), 100)
	if !strings.Contains(out, "Profile updated successfully") {
		t.Fatalf("message missing:\n%s", out)
	}
	if !strings.Contains(out, "✓") {
		t.Fatal("success icon missing")
	}
}

func TestRenderToastKindIcons(t *testing.T) {
	cases := []struct {
		kind notify.Kind
		icon string
	}{
		{notify.KindError, "✗"},
		{notify.KindSuccess, "✓"},
		{notify.KindInfo, "ℹ"},
		{notify.KindWarning, "⚠"},
	}
	for _, tc := range cases {
		out := RenderToast(testTheme(), makeToast(tc.kind, "hello"), 100)
		if !strings.Contains(out, tc.icon) {
			t.Fatalf("kind %v: icon %q missing:\n%s", tc.kind, tc.icon, out)
		}
	}
}

func TestRenderToastWrapsLongMessage(t *testing.T) {
	long := strings.Repeat("word ", 40)
	out := RenderToast(testTheme(), makeToast(notify.KindInfo, long), 100)
	if !strings.Contains(out, "\n") {
		t.Fatal("long message not wrapped")
	}
}

func TestRenderToastStackEmpty(t *testing.T) {
	if out := RenderToastStack(testTheme(), nil, 80, 24); out != "" {
		t.Fatalf("empty stack rendered %q", out)
	}
}

func TestRenderToastStackAll(t *testing.T) {
	toasts := []notify.Toast{
		makeToast(notify.KindError, "first"),
		makeToast(notify.KindInfo, "second"),
	}
	out := RenderToastStack(testTheme(), toasts, 80, 24)
	if !strings.Contains(out, "first") || !strings.Contains(out, "second") {
		t.Fatalf("stack missing toasts:\n%s", out)
	}
}

func TestWrapTextPreservesWords(t *testing.T) {
	out := wrapText("alpha beta gamma", 7)
	for _, line := range strings.Split(out, "\n") {
		if len(line) > 7 {
			t.Fatalf("line %q exceeds width", line)
		}
	}
	joined := strings.ReplaceAll(out, "\n", " ")
	if joined != "alpha beta gamma" {
		t.Fatalf("words altered: %q", joined)
	}
}
