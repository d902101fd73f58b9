// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat is the root Bubble Tea model for the terminal client.
package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatpaat-tui/internal/prefs"
	"github.com/jeranaias/chatpaat-tui/internal/ui/styles"
)

// =============================================================================
// SETTINGS PANEL
// =============================================================================

// settingRow enumerates the panel rows in display order.
type settingRow int

const (
	rowTheme settingRow = iota
	rowAccent
	rowFontSize
	rowDensity
	rowHighContrast
	rowWarmPalette
	rowAutoScroll
	rowNotifications
	rowSound
	rowCompactSidebar
	rowCount
)

var fontSizes = []prefs.FontSize{prefs.FontSizeSmall, prefs.FontSizeMedium, prefs.FontSizeLarge}
var densities = []prefs.Density{prefs.DensityComfortable, prefs.DensityCompact}

// SettingsPanel is the cursor state for the settings screen. All values
// it displays come from the preferences store; the panel itself only
// remembers which row is selected.
type SettingsPanel struct {
	Row settingRow
}

// MoveUp moves the cursor up one row.
func (p *SettingsPanel) MoveUp() {
	if p.Row > 0 {
		p.Row--
	}
}

// MoveDown moves the cursor down one row.
func (p *SettingsPanel) MoveDown() {
	if p.Row < rowCount-1 {
		p.Row++
	}
}

// Adjust applies a left/right step on the selected row. Toggle rows
// flip on any step.
func (p *SettingsPanel) Adjust(store *prefs.Store, delta int) {
	s := store.Settings()
	switch p.Row {
	case rowTheme:
		idx := themeIndex(s.Theme)
		store.SetTheme(styles.ThemeNames[wrap(idx+delta, len(styles.ThemeNames))])
	case rowAccent:
		idx := accentIndex(s.Accent)
		store.SetAccent(styles.AccentColors[wrap(idx+delta, len(styles.AccentColors))].Value)
	case rowFontSize:
		idx := indexOfFontSize(s.FontSize)
		store.SetFontSize(fontSizes[wrap(idx+delta, len(fontSizes))])
	case rowDensity:
		idx := indexOfDensity(s.MessageDensity)
		store.SetMessageDensity(densities[wrap(idx+delta, len(densities))])
	default:
		p.Toggle(store)
	}
}

// Toggle flips the selected boolean row; on non-boolean rows it steps
// forward.
func (p *SettingsPanel) Toggle(store *prefs.Store) {
	s := store.Settings()
	switch p.Row {
	case rowHighContrast:
		store.SetHighContrast(!s.HighContrast)
	case rowWarmPalette:
		store.SetWarmPalette(!s.WarmPalette)
	case rowAutoScroll:
		store.SetAutoScroll(!s.AutoScroll)
	case rowNotifications:
		store.SetNotifications(!s.Notifications)
	case rowSound:
		store.SetSoundEnabled(!s.SoundEnabled)
	case rowCompactSidebar:
		store.SetCompactSidebar(!s.CompactSidebar)
	case rowTheme, rowAccent, rowFontSize, rowDensity:
		p.Adjust(store, 1)
	}
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

func themeIndex(name styles.ThemeName) int {
	for i, t := range styles.ThemeNames {
		if t == name {
			return i
		}
	}
	return 0
}

func accentIndex(value string) int {
	for i, a := range styles.AccentColors {
		if a.Value == value {
			return i
		}
	}
	return 0
}

func indexOfFontSize(s prefs.FontSize) int {
	for i, v := range fontSizes {
		if v == s {
			return i
		}
	}
	return 1
}

func indexOfDensity(d prefs.Density) int {
	for i, v := range densities {
		if v == d {
			return i
		}
	}
	return 0
}

// =============================================================================
// RENDERING
// =============================================================================

// Render draws the settings screen.
func (p *SettingsPanel) Render(theme *styles.Theme, s prefs.Settings, width, height int) string {
	var b strings.Builder

	b.WriteString(theme.HeaderTitle.Render("Settings"))
	b.WriteString("\n\n")

	b.WriteString(p.sectionLabel(theme, rowTheme, "Theme"))
	b.WriteString("\n")
	b.WriteString(p.renderThemeGrid(theme, s))
	b.WriteString("\n\n")

	b.WriteString(p.sectionLabel(theme, rowAccent, "Accent"))
	b.WriteString("\n")
	b.WriteString(p.renderAccentRow(theme, s))
	b.WriteString("\n\n")

	b.WriteString(p.valueRow(theme, rowFontSize, "Font size", string(s.FontSize)))
	b.WriteString(p.valueRow(theme, rowDensity, "Message density", string(s.MessageDensity)))
	b.WriteString(p.toggleRow(theme, rowHighContrast, "High contrast", s.HighContrast))
	b.WriteString(p.toggleRow(theme, rowWarmPalette, "Warm palette", s.WarmPalette))
	b.WriteString(p.toggleRow(theme, rowAutoScroll, "Auto-scroll", s.AutoScroll))
	b.WriteString(p.toggleRow(theme, rowNotifications, "Notifications", s.Notifications))
	b.WriteString(p.toggleRow(theme, rowSound, "Sound", s.SoundEnabled))
	b.WriteString(p.toggleRow(theme, rowCompactSidebar, "Compact sidebar", s.CompactSidebar))

	b.WriteString("\n")
	b.WriteString(theme.WelcomeMuted.Render("up/down select · left/right change · space toggle · esc back"))

	box := theme.SettingsBox.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (p *SettingsPanel) sectionLabel(theme *styles.Theme, row settingRow, label string) string {
	if p.Row == row {
		return theme.FormFocused.Render("› " + label)
	}
	return theme.SettingsSection.Render("  " + label)
}

func (p *SettingsPanel) renderThemeGrid(theme *styles.Theme, s prefs.Settings) string {
	cards := make([]string, 0, len(styles.ThemeNames))
	for _, name := range styles.ThemeNames {
		style := theme.ThemeCard
		if name == s.Theme {
			style = theme.ThemeCardSelected
		}
		cards = append(cards, style.Render(string(name)))
	}
	// Two rows so seven presets fit a narrow terminal.
	half := (len(cards) + 1) / 2
	top := lipgloss.JoinHorizontal(lipgloss.Top, cards[:half]...)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, cards[half:]...)
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

func (p *SettingsPanel) renderAccentRow(theme *styles.Theme, s prefs.Settings) string {
	swatches := make([]string, 0, len(styles.AccentColors))
	for _, a := range styles.AccentColors {
		style := theme.AccentSwatch.Foreground(styles.Color(a.Value))
		if a.Value == s.Accent {
			style = theme.AccentSwatchSelected.Foreground(styles.Color(a.Value))
		}
		swatches = append(swatches, style.Render("●")+" "+theme.SettingsSection.Render(a.Name))
	}
	return strings.Join(swatches, "  ")
}

func (p *SettingsPanel) valueRow(theme *styles.Theme, row settingRow, label, value string) string {
	return p.sectionLabel(theme, row, label) + "  " + theme.FormLabel.Render("‹ "+value+" ›") + "\n"
}

func (p *SettingsPanel) toggleRow(theme *styles.Theme, row settingRow, label string, on bool) string {
	state := theme.ToggleOff.Render("off")
	if on {
		state = theme.ToggleOn.Render("on")
	}
	return p.sectionLabel(theme, row, label) + "  " + state + "\n"
}
