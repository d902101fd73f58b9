// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
)

func TestCodeBlockRenderKeepsSource(t *testing.T) {
	cb := NewCodeBlock("go", "package main\n\nfunc main() {}\n")
	cb.SetMaxWidth(80)
	out := cb.Render(testTheme())
	if !strings.Contains(out, "main") {
		t.Fatalf("rendered block lost source:\n%s", out)
	}
	if !strings.Contains(out, "go") {
		t.Fatal("language badge missing")
	}
}

func TestParseCodeBlocksPassesProseThrough(t *testing.T) {
	in := "just a sentence\nand another"
	out := ParseCodeBlocks(testTheme(), in, 80)
	if !strings.Contains(out, "just a sentence") || !strings.Contains(out, "and another") {
		t.Fatalf("prose mangled:\n%s", out)
	}
}

func TestParseCodeBlocksFencedSection(t *testing.T) {
	in := "before\n```python\nprint(\"hi\")\n```\nafter"
	out := ParseCodeBlocks(testTheme(), in, 80)
	for _, want := range []string{"before", "print", "after"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "```") {
		t.Fatal("fence markers leaked into output")
	}
}

func TestParseCodeBlocksUnclosedFence(t *testing.T) {
	in := "intro\n```\nleft open"
	out := ParseCodeBlocks(testTheme(), in, 80)
	if !strings.Contains(out, "left open") {
		t.Fatalf("unclosed fence content dropped:\n%s", out)
	}
}

func TestHighlightCodeUnknownLanguageFallsBack(t *testing.T) {
	src := "totally plain text"
	out := highlightCode(src, "nosuchlang9", true)
	if out == "" {
		t.Fatal("empty highlight output")
	}
}

func TestItoa(t *testing.T) {
	cases := map[int]string{0: "0", 7: "7", 42: "42", 100: "100"}
	for n, want := range cases {
		if got := itoa(n); got != want {
			t.Fatalf("itoa(%d) = %q, want %q", n, got, want)
		}
	}
}
