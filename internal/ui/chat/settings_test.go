// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"testing"

	"github.com/jeranaias/chatpaat-tui/internal/prefs"
	"github.com/jeranaias/chatpaat-tui/internal/store"
	"github.com/jeranaias/chatpaat-tui/internal/ui/styles"
)

func newPrefsStore(t *testing.T) *prefs.Store {
	t.Helper()
	local, err := store.NewWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	return prefs.NewStoreWithDetect(local, func() bool { return true })
}

func TestSettingsPanelCursorBounds(t *testing.T) {
	p := SettingsPanel{}
	p.MoveUp()
	if p.Row != rowTheme {
		t.Fatalf("row = %d after MoveUp at top", p.Row)
	}
	for i := 0; i < 50; i++ {
		p.MoveDown()
	}
	if p.Row != rowCount-1 {
		t.Fatalf("row = %d, want %d", p.Row, rowCount-1)
	}
}

func TestSettingsPanelAdjustTheme(t *testing.T) {
	ps := newPrefsStore(t)
	p := SettingsPanel{Row: rowTheme}

	start := ps.Settings().Theme
	p.Adjust(ps, 1)
	next := ps.Settings().Theme
	if next == start {
		t.Fatal("theme did not advance")
	}

	// Stepping back returns to the start.
	p.Adjust(ps, -1)
	if got := ps.Settings().Theme; got != start {
		t.Fatalf("theme = %q, want %q", got, start)
	}
}

func TestSettingsPanelAdjustWrapsThemeList(t *testing.T) {
	ps := newPrefsStore(t)
	p := SettingsPanel{Row: rowTheme}

	start := ps.Settings().Theme
	for range styles.ThemeNames {
		p.Adjust(ps, 1)
	}
	if got := ps.Settings().Theme; got != start {
		t.Fatalf("theme = %q after full cycle, want %q", got, start)
	}
}

func TestSettingsPanelAdjustAccent(t *testing.T) {
	ps := newPrefsStore(t)
	p := SettingsPanel{Row: rowAccent}

	p.Adjust(ps, 1)
	if got := ps.Settings().Accent; got != styles.AccentColors[1].Value {
		t.Fatalf("accent = %q, want %q", got, styles.AccentColors[1].Value)
	}
}

func TestSettingsPanelToggleRows(t *testing.T) {
	ps := newPrefsStore(t)

	tests := []struct {
		row settingRow
		get func(prefs.Settings) bool
	}{
		{rowHighContrast, func(s prefs.Settings) bool { return s.HighContrast }},
		{rowWarmPalette, func(s prefs.Settings) bool { return s.WarmPalette }},
		{rowAutoScroll, func(s prefs.Settings) bool { return s.AutoScroll }},
		{rowNotifications, func(s prefs.Settings) bool { return s.Notifications }},
		{rowSound, func(s prefs.Settings) bool { return s.SoundEnabled }},
		{rowCompactSidebar, func(s prefs.Settings) bool { return s.CompactSidebar }},
	}
	for _, tt := range tests {
		p := SettingsPanel{Row: tt.row}
		before := tt.get(ps.Settings())
		p.Toggle(ps)
		if after := tt.get(ps.Settings()); after == before {
			t.Fatalf("row %d did not toggle", tt.row)
		}
	}
}

func TestSettingsPanelFontSizeCycle(t *testing.T) {
	ps := newPrefsStore(t)
	p := SettingsPanel{Row: rowFontSize}

	p.Adjust(ps, 1)
	if got := ps.Settings().FontSize; got != prefs.FontSizeLarge {
		t.Fatalf("font size = %q, want large", got)
	}
	p.Adjust(ps, 1)
	if got := ps.Settings().FontSize; got != prefs.FontSizeSmall {
		t.Fatalf("font size = %q after wrap, want small", got)
	}
}

func TestSettingsPanelRenderSmoke(t *testing.T) {
	ps := newPrefsStore(t)
	p := SettingsPanel{}
	out := p.Render(ps.Theme(), ps.Settings(), 100, 40)
	if out == "" {
		t.Fatal("empty settings render")
	}
}
