// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
)

func TestMarkdownRenderPlainText(t *testing.T) {
	m := NewMarkdownRenderer()
	out := m.Render("hello there", 80, true)
	if !strings.Contains(out, "hello there") {
		t.Fatalf("plain text lost: %q", out)
	}
	if strings.HasPrefix(out, "\n") || strings.HasSuffix(out, "\n") {
		t.Fatal("output not trimmed")
	}
}

func TestMarkdownRenderHeading(t *testing.T) {
	m := NewMarkdownRenderer()
	out := m.Render("# Title\n\nbody text", 80, true)
	if !strings.Contains(out, "Title") || !strings.Contains(out, "body text") {
		t.Fatalf("heading render dropped content:\n%s", out)
	}
}

func TestMarkdownRendererReusedAcrossCalls(t *testing.T) {
	m := NewMarkdownRenderer()
	m.Render("one", 80, true)
	first := m.renderer
	m.Render("two", 80, true)
	if m.renderer != first {
		t.Fatal("renderer rebuilt without a width or darkness change")
	}
	m.Render("three", 100, true)
	if m.renderer == first {
		t.Fatal("renderer not rebuilt after width change")
	}
}

func TestMarkdownRenderClampsTinyWidth(t *testing.T) {
	m := NewMarkdownRenderer()
	out := m.Render("short", 1, false)
	if out == "" {
		t.Fatal("empty output at tiny width")
	}
}
