// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// =============================================================================
// MARKDOWN RENDERER
// =============================================================================

// MarkdownRenderer renders assistant messages as terminal markdown.
// Building a glamour renderer is expensive, so one is cached per
// width/darkness pair and rebuilt only when either changes.
type MarkdownRenderer struct {
	mu       sync.Mutex
	renderer *glamour.TermRenderer
	width    int
	dark     bool
}

// NewMarkdownRenderer creates an empty renderer; the first Render builds
// the glamour instance.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render renders markdown at the given wrap width. On any renderer
// failure the raw text comes back unchanged, so a markdown edge case can
// never blank a message.
func (m *MarkdownRenderer) Render(content string, width int, dark bool) string {
	if width < 20 {
		width = 20
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.renderer == nil || m.width != width || m.dark != dark {
		styleOpt := glamour.WithStandardStyle("light")
		if dark {
			styleOpt = glamour.WithStandardStyle("dark")
		}
		r, err := glamour.NewTermRenderer(
			styleOpt,
			glamour.WithWordWrap(width),
			glamour.WithEmoji(),
		)
		if err != nil {
			return content
		}
		m.renderer = r
		m.width = width
		m.dark = dark
	}

	out, err := m.renderer.Render(content)
	if err != nil {
		return content
	}
	// Glamour pads with leading/trailing blank lines; the transcript
	// controls its own spacing.
	return strings.Trim(out, "\n")
}
