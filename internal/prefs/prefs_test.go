// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package prefs

import (
	"testing"

	"github.com/jeranaias/chatpaat-tui/internal/store"
	"github.com/jeranaias/chatpaat-tui/internal/ui/styles"
)

func newTestPrefs(t *testing.T, osDark bool) (*Store, *store.Store) {
	t.Helper()
	local, err := store.NewWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	return NewStoreWithDetect(local, func() bool { return osDark }), local
}

func TestInitFallsBackToOSPreference(t *testing.T) {
	dark, _ := newTestPrefs(t, true)
	if dark.Settings().Theme != styles.ThemeDark {
		t.Fatalf("theme = %s, want dark", dark.Settings().Theme)
	}

	light, _ := newTestPrefs(t, false)
	if light.Settings().Theme != styles.ThemeLight {
		t.Fatalf("theme = %s, want light", light.Settings().Theme)
	}
}

func TestPersistedThemeWinsOverOS(t *testing.T) {
	local, err := store.NewWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := local.SetString(store.KeyTheme, string(styles.ThemeNord)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s := NewStoreWithDetect(local, func() bool { return false })
	if s.Settings().Theme != styles.ThemeNord {
		t.Fatalf("theme = %s, want nord", s.Settings().Theme)
	}
}

func TestCorruptPersistedThemeIgnored(t *testing.T) {
	local, err := store.NewWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := local.SetString(store.KeyTheme, "mauve-dream"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s := NewStoreWithDetect(local, func() bool { return true })
	if s.Settings().Theme != styles.ThemeDark {
		t.Fatalf("theme = %s, want dark fallback", s.Settings().Theme)
	}
}

func TestSetThemeRebuildsWholeTheme(t *testing.T) {
	s, _ := newTestPrefs(t, true)
	before := s.Theme()

	s.SetTheme(styles.ThemeDracula)
	after := s.Theme()

	if after == before {
		t.Fatal("theme must be rebuilt, not mutated in place")
	}
	if after.Name != styles.ThemeDracula {
		t.Fatalf("name = %s", after.Name)
	}
	want := styles.Presets[styles.ThemeDracula]
	if after.Palette.Background != want.Background {
		t.Fatalf("background = %s, want %s", after.Palette.Background, want.Background)
	}
	if after.Palette.Primary == before.Palette.Primary && want.Primary != styles.Presets[styles.ThemeDark].Primary {
		t.Fatal("stale primary role survived theme switch")
	}
}

func TestSetThemeRejectsUnknown(t *testing.T) {
	s, _ := newTestPrefs(t, true)
	s.SetTheme("chartreuse")
	if s.Settings().Theme != styles.ThemeDark {
		t.Fatalf("theme = %s", s.Settings().Theme)
	}
}

func TestToggleDarkModeNarrows(t *testing.T) {
	tests := []struct {
		start styles.ThemeName
		want  styles.ThemeName
	}{
		{styles.ThemeLight, styles.ThemeDark},
		{styles.ThemeDark, styles.ThemeLight},
		{styles.ThemeNord, styles.ThemeDark},
		{styles.ThemeCatppuccin, styles.ThemeDark},
		{styles.ThemeDracula, styles.ThemeDark},
		{styles.ThemeSolarized, styles.ThemeDark},
	}
	for _, tt := range tests {
		s, _ := newTestPrefs(t, true)
		s.SetTheme(tt.start)
		s.ToggleDarkMode()
		if got := s.Settings().Theme; got != tt.want {
			t.Errorf("toggle from %s = %s, want %s", tt.start, got, tt.want)
		}
	}

	// Narrowing is one-way: nord toggles to dark, and from there the pair
	// is plain light/dark, never back to nord.
	s, _ := newTestPrefs(t, true)
	s.SetTheme(styles.ThemeNord)
	s.ToggleDarkMode()
	s.ToggleDarkMode()
	if got := s.Settings().Theme; got != styles.ThemeLight {
		t.Fatalf("double toggle = %s, want light", got)
	}
	s.ToggleDarkMode()
	if got := s.Settings().Theme; got != styles.ThemeDark {
		t.Fatalf("third toggle = %s, want dark", got)
	}
}

func TestMutationsPersistEveryField(t *testing.T) {
	s, local := newTestPrefs(t, true)

	s.SetAccent(styles.AccentColors[1].Value)
	s.SetHighContrast(true)
	s.SetFontSize(FontSizeLarge)
	s.SetMessageDensity(DensityCompact)
	s.SetCompactSidebar(true)

	restored := NewStoreWithDetect(local, func() bool { return false }).Settings()
	if restored.Accent != styles.AccentColors[1].Value {
		t.Fatalf("accent = %s", restored.Accent)
	}
	if !restored.HighContrast {
		t.Fatal("high contrast not persisted")
	}
	if restored.FontSize != FontSizeLarge {
		t.Fatalf("font size = %s", restored.FontSize)
	}
	if restored.MessageDensity != DensityCompact {
		t.Fatalf("density = %s", restored.MessageDensity)
	}
	if !restored.CompactSidebar {
		t.Fatal("compact sidebar not persisted")
	}
}

func TestHighContrastAppliedToPalette(t *testing.T) {
	s, _ := newTestPrefs(t, true)
	plain := s.Theme().Palette

	s.SetHighContrast(true)
	contrast := s.Theme().Palette

	want := styles.Resolve(styles.ThemeDark, s.Settings().Accent, true, false)
	if contrast != want {
		t.Fatalf("palette = %+v, want %+v", contrast, want)
	}
	if contrast == plain {
		t.Fatal("high contrast changed nothing")
	}
}

func TestInvalidEnumSettersIgnored(t *testing.T) {
	s, _ := newTestPrefs(t, true)
	s.SetFontSize("giant")
	s.SetMessageDensity("sparse")
	s.SetAccent("#123456")

	set := s.Settings()
	if set.FontSize != FontSizeMedium || set.MessageDensity != DensityComfortable || set.Accent != styles.DefaultAccent {
		t.Fatalf("settings mutated by invalid values: %+v", set)
	}
}
