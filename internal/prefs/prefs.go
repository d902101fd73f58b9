// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package prefs is the preference store: appearance and behavior settings,
// each persisted under its own storage key so one corrupt value never
// takes the rest down.
package prefs

import (
	"sync"

	"github.com/muesli/termenv"

	"github.com/jeranaias/chatpaat-tui/internal/store"
	"github.com/jeranaias/chatpaat-tui/internal/ui/styles"
)

// =============================================================================
// SETTING VALUES
// =============================================================================

// FontSize selects the transcript type scale.
type FontSize string

const (
	FontSizeSmall  FontSize = "small"
	FontSizeMedium FontSize = "medium"
	FontSizeLarge  FontSize = "large"
)

// Density selects transcript message spacing.
type Density string

const (
	DensityComfortable Density = "comfortable"
	DensityCompact     Density = "compact"
)

// Settings is the full preference set. The zero value is not meaningful;
// use Defaults.
type Settings struct {
	Theme          styles.ThemeName
	Accent         string
	HighContrast   bool
	WarmPalette    bool
	FontSize       FontSize
	MessageDensity Density
	AutoScroll     bool
	Notifications  bool
	SoundEnabled   bool
	CompactSidebar bool
}

// Defaults returns the out-of-box settings. The theme is filled in later
// from the OS preference when nothing is persisted.
func Defaults() Settings {
	return Settings{
		Theme:          styles.ThemeDark,
		Accent:         styles.DefaultAccent,
		FontSize:       FontSizeMedium,
		MessageDensity: DensityComfortable,
		AutoScroll:     true,
		Notifications:  true,
		SoundEnabled:   false,
		CompactSidebar: false,
	}
}

// =============================================================================
// PREFERENCE STORE
// =============================================================================

// Store holds the live settings and the theme derived from them. Every
// mutation rebuilds the theme wholesale from the new settings, so no
// style from the previous theme can survive a switch.
type Store struct {
	mu       sync.Mutex
	local    *store.Store
	settings Settings
	theme    *styles.Theme

	// osDark reports the terminal background preference. Swappable in tests.
	osDark func() bool
}

// NewStore restores persisted settings, falling back field by field to
// defaults. A missing theme falls back to the OS light/dark preference,
// then to dark.
func NewStore(local *store.Store) *Store {
	return NewStoreWithDetect(local, termenv.HasDarkBackground)
}

// NewStoreWithDetect is NewStore with an explicit terminal background
// detector.
func NewStoreWithDetect(local *store.Store, osDark func() bool) *Store {
	s := &Store{
		local:  local,
		osDark: osDark,
	}
	s.settings = s.restore()
	s.rebuildLocked()
	return s
}

func (s *Store) restore() Settings {
	set := Defaults()

	if name, err := s.local.GetString(store.KeyTheme); err == nil && styles.ValidTheme(styles.ThemeName(name)) {
		set.Theme = styles.ThemeName(name)
	} else if s.osDark() {
		set.Theme = styles.ThemeDark
	} else {
		set.Theme = styles.ThemeLight
	}

	if accent, err := s.local.GetString(store.KeyAccentColor); err == nil && styles.ValidAccent(accent) {
		set.Accent = accent
	}
	if size, err := s.local.GetString(store.KeyFontSize); err == nil {
		switch FontSize(size) {
		case FontSizeSmall, FontSizeMedium, FontSizeLarge:
			set.FontSize = FontSize(size)
		}
	}
	if density, err := s.local.GetString(store.KeyMessageDensity); err == nil {
		switch Density(density) {
		case DensityComfortable, DensityCompact:
			set.MessageDensity = Density(density)
		}
	}

	set.HighContrast = s.local.GetBool(store.KeyHighContrast, set.HighContrast)
	set.WarmPalette = s.local.GetBool(store.KeyWarmPalette, set.WarmPalette)
	set.AutoScroll = s.local.GetBool(store.KeyAutoScroll, set.AutoScroll)
	set.Notifications = s.local.GetBool(store.KeyNotifications, set.Notifications)
	set.SoundEnabled = s.local.GetBool(store.KeySoundEnabled, set.SoundEnabled)
	set.CompactSidebar = s.local.GetBool(store.KeyCompactSidebar, set.CompactSidebar)

	return set
}

// rebuildLocked derives the theme from the current settings and persists
// every field. Caller must hold s.mu or be the constructor.
func (s *Store) rebuildLocked() {
	palette := styles.Resolve(
		s.settings.Theme,
		s.settings.Accent,
		s.settings.HighContrast,
		s.settings.WarmPalette,
	)
	s.theme = styles.NewTheme(s.settings.Theme, palette)

	_ = s.local.SetString(store.KeyTheme, string(s.settings.Theme))
	_ = s.local.SetString(store.KeyAccentColor, s.settings.Accent)
	_ = s.local.SetBool(store.KeyHighContrast, s.settings.HighContrast)
	_ = s.local.SetBool(store.KeyWarmPalette, s.settings.WarmPalette)
	_ = s.local.SetString(store.KeyFontSize, string(s.settings.FontSize))
	_ = s.local.SetString(store.KeyMessageDensity, string(s.settings.MessageDensity))
	_ = s.local.SetBool(store.KeyAutoScroll, s.settings.AutoScroll)
	_ = s.local.SetBool(store.KeyNotifications, s.settings.Notifications)
	_ = s.local.SetBool(store.KeySoundEnabled, s.settings.SoundEnabled)
	_ = s.local.SetBool(store.KeyCompactSidebar, s.settings.CompactSidebar)
}

// =============================================================================
// READ SIDE
// =============================================================================

// Settings returns a copy of the current settings.
func (s *Store) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Theme returns the theme derived from the current settings.
func (s *Store) Theme() *styles.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// IsDark reports whether the active theme is a dark one.
func (s *Store) IsDark() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return styles.IsDarkTheme(s.settings.Theme)
}

// =============================================================================
// MUTATIONS
// =============================================================================

// SetTheme switches the named theme. Unknown names are ignored.
func (s *Store) SetTheme(name styles.ThemeName) {
	if !styles.ValidTheme(name) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Theme = name
	s.rebuildLocked()
}

// ToggleDarkMode narrows the theme to plain light or dark. Only dark
// itself toggles to light; every other preset, nord included, lands on
// dark, and the next toggle never returns to the original preset.
func (s *Store) ToggleDarkMode() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings.Theme == styles.ThemeDark {
		s.settings.Theme = styles.ThemeLight
	} else {
		s.settings.Theme = styles.ThemeDark
	}
	s.rebuildLocked()
}

// SetAccent switches the accent color. Unknown values are ignored.
func (s *Store) SetAccent(hex string) {
	if !styles.ValidAccent(hex) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Accent = hex
	s.rebuildLocked()
}

// SetHighContrast toggles the high-contrast overlay.
func (s *Store) SetHighContrast(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.HighContrast = on
	s.rebuildLocked()
}

// SetWarmPalette toggles the warm-palette overlay.
func (s *Store) SetWarmPalette(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.WarmPalette = on
	s.rebuildLocked()
}

// SetFontSize selects the type scale. Unknown values are ignored.
func (s *Store) SetFontSize(size FontSize) {
	switch size {
	case FontSizeSmall, FontSizeMedium, FontSizeLarge:
	default:
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.FontSize = size
	s.rebuildLocked()
}

// SetMessageDensity selects message spacing. Unknown values are ignored.
func (s *Store) SetMessageDensity(d Density) {
	switch d {
	case DensityComfortable, DensityCompact:
	default:
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.MessageDensity = d
	s.rebuildLocked()
}

// SetAutoScroll toggles follow-mode on the transcript viewport.
func (s *Store) SetAutoScroll(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.AutoScroll = on
	s.rebuildLocked()
}

// SetNotifications toggles toast notifications for background events.
func (s *Store) SetNotifications(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Notifications = on
	s.rebuildLocked()
}

// SetSoundEnabled toggles the terminal bell on assistant replies.
func (s *Store) SetSoundEnabled(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.SoundEnabled = on
	s.rebuildLocked()
}

// SetCompactSidebar toggles the narrow sidebar layout.
func (s *Store) SetCompactSidebar(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.CompactSidebar = on
	s.rebuildLocked()
}
