// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the chatpaat TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// THEME NAMES
// =============================================================================

// ThemeName identifies one of the named color presets.
type ThemeName string

const (
	ThemeLight      ThemeName = "light"
	ThemeDark       ThemeName = "dark"
	ThemeDracula    ThemeName = "dracula"
	ThemeNord       ThemeName = "nord"
	ThemeSolarized  ThemeName = "solarized"
	ThemeMaterial   ThemeName = "material"
	ThemeCatppuccin ThemeName = "catppuccin"
)

// ThemeNames lists every preset in settings-panel display order.
var ThemeNames = []ThemeName{
	ThemeLight,
	ThemeDark,
	ThemeDracula,
	ThemeNord,
	ThemeSolarized,
	ThemeMaterial,
	ThemeCatppuccin,
}

// ValidTheme reports whether name is a known preset.
func ValidTheme(name ThemeName) bool {
	_, ok := Presets[name]
	return ok
}

// =============================================================================
// PALETTE
// =============================================================================

// Palette holds the eight semantic color roles every theme must define.
// The whole palette is always applied as a unit; partial application would
// leave roles from a previous theme behind.
type Palette struct {
	Label       string
	Description string

	Background  string
	Foreground  string
	Primary     string
	Secondary   string
	Accent      string
	Muted       string
	Border      string
	Destructive string
}

// Roles returns the palette as a role-name → color map. The settings panel
// and the apply-completeness tests iterate this rather than hardcoding the
// field list.
func (p Palette) Roles() map[string]string {
	return map[string]string{
		"background":  p.Background,
		"foreground":  p.Foreground,
		"primary":     p.Primary,
		"secondary":   p.Secondary,
		"accent":      p.Accent,
		"muted":       p.Muted,
		"border":      p.Border,
		"destructive": p.Destructive,
	}
}

// Presets maps each theme name to its fixed palette.
var Presets = map[ThemeName]Palette{
	ThemeLight: {
		Label:       "Light",
		Description: "Clean, bright interface",
		Background:  "#FFFFFF",
		Foreground:  "#18181B",
		Primary:     "#27272A",
		Secondary:   "#F4F4F5",
		Accent:      "#F4F4F5",
		Muted:       "#A1A1AA",
		Border:      "#E4E4E7",
		Destructive: "#DC2626",
	},
	ThemeDark: {
		Label:       "Dark",
		Description: "Easy on the eyes",
		Background:  "#18181B",
		Foreground:  "#FAFAFA",
		Primary:     "#E4E4E7",
		Secondary:   "#3F3F46",
		Accent:      "#52525B",
		Muted:       "#71717A",
		Border:      "#33333A",
		Destructive: "#F87171",
	},
	ThemeDracula: {
		Label:       "Dracula",
		Description: "Dark theme with vibrant colors",
		Background:  "#282A36",
		Foreground:  "#F8F8F2",
		Primary:     "#BD93F9",
		Secondary:   "#6272A4",
		Accent:      "#FF79C6",
		Muted:       "#44475A",
		Border:      "#44475A",
		Destructive: "#FF5555",
	},
	ThemeNord: {
		Label:       "Nord",
		Description: "Arctic, north-bluish color palette",
		Background:  "#2E3440",
		Foreground:  "#ECEFF4",
		Primary:     "#81A1C1",
		Secondary:   "#5E81AC",
		Accent:      "#88C0D0",
		Muted:       "#4C566A",
		Border:      "#3B4252",
		Destructive: "#BF616A",
	},
	ThemeSolarized: {
		Label:       "Solarized",
		Description: "Precision colors for dark backgrounds",
		Background:  "#002B36",
		Foreground:  "#EEE8D5",
		Primary:     "#268BD2",
		Secondary:   "#6C71C4",
		Accent:      "#CB4B16",
		Muted:       "#586E75",
		Border:      "#073642",
		Destructive: "#DC322F",
	},
	ThemeMaterial: {
		Label:       "Material Design",
		Description: "Google Material Design colors",
		Background:  "#212121",
		Foreground:  "#EEEEEE",
		Primary:     "#9575CD",
		Secondary:   "#BA68C8",
		Accent:      "#FFB74D",
		Muted:       "#616161",
		Border:      "#424242",
		Destructive: "#E57373",
	},
	ThemeCatppuccin: {
		Label:       "Catppuccin",
		Description: "Soothing pastel color palette",
		Background:  "#1E1E2E",
		Foreground:  "#CDD6F4",
		Primary:     "#CBA6F7",
		Secondary:   "#F5C2E7",
		Accent:      "#94E2D5",
		Muted:       "#45475A",
		Border:      "#313244",
		Destructive: "#F38BA8",
	},
}

// IsDarkTheme reports whether a preset renders on a dark background.
// Only "light" is a light theme; every other preset is dark.
func IsDarkTheme(name ThemeName) bool {
	return name != ThemeLight
}

// =============================================================================
// ACCENT COLORS
// =============================================================================

// AccentColor is one of the user-selectable accent swatches.
type AccentColor struct {
	Name  string
	Value string
}

// AccentColors lists the selectable accent swatches in display order.
// The first entry is the default.
var AccentColors = []AccentColor{
	{Name: "Blue", Value: "#3B82F6"},
	{Name: "Purple", Value: "#A855F7"},
	{Name: "Green", Value: "#22C55E"},
	{Name: "Orange", Value: "#F97316"},
	{Name: "Pink", Value: "#EC4899"},
	{Name: "Cyan", Value: "#06B6D4"},
}

// DefaultAccent is the accent used before the user picks one.
var DefaultAccent = AccentColors[0].Value

// ValidAccent reports whether value is one of the selectable swatches.
func ValidAccent(value string) bool {
	for _, a := range AccentColors {
		if a.Value == value {
			return true
		}
	}
	return false
}

// =============================================================================
// OVERLAYS
// =============================================================================

// Overlays are orthogonal adjustments applied after the base palette.
// Order matters: accent first, then high contrast, then warm palette, so a
// high-contrast foreground is never washed out by the warm tint.

// WithAccent replaces the palette accent role with the user's swatch.
func (p Palette) WithAccent(accent string) Palette {
	if accent != "" {
		p.Accent = accent
	}
	return p
}

// WithHighContrast pushes foreground and border toward maximum contrast
// against the background.
func (p Palette) WithHighContrast(dark bool) Palette {
	if dark {
		p.Foreground = "#FFFFFF"
		p.Border = "#9CA3AF"
		p.Muted = "#D1D5DB"
	} else {
		p.Foreground = "#000000"
		p.Border = "#4B5563"
		p.Muted = "#374151"
	}
	return p
}

// WithWarmPalette tints surfaces toward warmer hues for reduced blue light.
func (p Palette) WithWarmPalette(dark bool) Palette {
	if dark {
		p.Background = "#211D18"
		p.Secondary = "#3A342B"
	} else {
		p.Background = "#FDF6EC"
		p.Secondary = "#F5EBDD"
	}
	return p
}

// Resolve applies the overlay chain for the given preference flags and
// returns the palette that should actually be presented.
func Resolve(name ThemeName, accent string, highContrast, warmPalette bool) Palette {
	base, ok := Presets[name]
	if !ok {
		base = Presets[ThemeDark]
		name = ThemeDark
	}
	dark := IsDarkTheme(name)
	p := base.WithAccent(accent)
	if highContrast {
		p = p.WithHighContrast(dark)
	}
	if warmPalette {
		p = p.WithWarmPalette(dark)
	}
	return p
}

// Color converts a palette value into a lipgloss terminal color.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}
