// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the chatpaat TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application, derived from a
// single resolved Palette. A theme switch rebuilds every style from scratch;
// nothing is patched in place, so no style can carry a stale color from a
// previous palette.
type Theme struct {
	// Source palette and identity
	Name    ThemeName
	Palette Palette

	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	SystemBubble    lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// SIDEBAR / CHAT LIST STYLES
	// ==========================================================================

	Sidebar           lipgloss.Style
	SidebarGroupLabel lipgloss.Style
	ChatItem          lipgloss.Style
	ChatItemActive    lipgloss.Style
	ChatItemFavorite  lipgloss.Style
	ChatItemArchived  lipgloss.Style
	SearchBox         lipgloss.Style

	// ==========================================================================
	// SETTINGS PANEL STYLES
	// ==========================================================================

	SettingsBox          lipgloss.Style
	SettingsSection      lipgloss.Style
	ThemeCard            lipgloss.Style
	ThemeCardSelected    lipgloss.Style
	AccentSwatch         lipgloss.Style
	AccentSwatchSelected lipgloss.Style
	ToggleOn             lipgloss.Style
	ToggleOff            lipgloss.Style

	// ==========================================================================
	// AUTH FORM STYLES
	// ==========================================================================

	FormBox     lipgloss.Style
	FormLabel   lipgloss.Style
	FormError   lipgloss.Style
	FormButton  lipgloss.Style
	FormFocused lipgloss.Style

	// ==========================================================================
	// TOAST STYLES
	// ==========================================================================

	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	ToastInfo    lipgloss.Style
	ToastWarning lipgloss.Style

	// ==========================================================================
	// SPINNER AND LOADING STYLES
	// ==========================================================================

	Spinner      lipgloss.Style
	ThinkingText lipgloss.Style

	// ==========================================================================
	// CODE BLOCK STYLES
	// ==========================================================================

	CodeBlock     lipgloss.Style
	CodeLangBadge lipgloss.Style

	// ==========================================================================
	// ERROR BOX STYLES
	// ==========================================================================

	ErrorBox     lipgloss.Style
	ErrorTitle   lipgloss.Style
	ErrorMessage lipgloss.Style

	// ==========================================================================
	// WELCOME SCREEN STYLES
	// ==========================================================================

	WelcomeBox   lipgloss.Style
	WelcomeLogo  lipgloss.Style
	WelcomeInfo  lipgloss.Style
	WelcomeKey   lipgloss.Style
	WelcomeMuted lipgloss.Style
}

// NewTheme builds the full style set for a resolved palette.
func NewTheme(name ThemeName, p Palette) *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		Name:         name,
		Palette:      p,
		IsDark:       IsDarkTheme(name),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles from the palette.
func (t *Theme) initStyles() {
	p := t.Palette

	background := Color(p.Background)
	foreground := Color(p.Foreground)
	primary := Color(p.Primary)
	secondary := Color(p.Secondary)
	accent := Color(p.Accent)
	muted := Color(p.Muted)
	border := Color(p.Border)
	destructive := Color(p.Destructive)

	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(primary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 2).
		Align(lipgloss.Center)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(primary)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(muted).
		Italic(true)

	// Message bubbles
	t.UserBubble = lipgloss.NewStyle().
		Foreground(background).
		Background(primary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(primary).
		Padding(0, 2).
		MarginLeft(4)

	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(foreground).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 2).
		MarginRight(4)

	t.SystemBubble = lipgloss.NewStyle().
		Foreground(muted).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(border).
		Padding(0, 2).
		Align(lipgloss.Center)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(border).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true)

	t.InputText = lipgloss.NewStyle().
		Foreground(foreground)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(muted).
		Italic(true)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(secondary).
		Foreground(foreground).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(muted)

	// Sidebar / chat list
	t.Sidebar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(border).
		Padding(0, 1)

	t.SidebarGroupLabel = lipgloss.NewStyle().
		Foreground(muted).
		Bold(true)

	t.ChatItem = lipgloss.NewStyle().
		Foreground(foreground).
		Padding(0, 1)

	t.ChatItemActive = lipgloss.NewStyle().
		Background(primary).
		Foreground(background).
		Bold(true).
		Padding(0, 1)

	t.ChatItemFavorite = lipgloss.NewStyle().
		Foreground(accent).
		Padding(0, 1)

	t.ChatItemArchived = lipgloss.NewStyle().
		Foreground(muted).
		Italic(true).
		Padding(0, 1)

	t.SearchBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)

	// Settings panel
	t.SettingsBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2)

	t.SettingsSection = lipgloss.NewStyle().
		Foreground(primary).
		Bold(true)

	t.ThemeCard = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)

	t.ThemeCardSelected = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Foreground(accent).
		Bold(true).
		Padding(0, 1)

	t.AccentSwatch = lipgloss.NewStyle().
		Padding(0, 1)

	t.AccentSwatchSelected = lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Padding(0, 1)

	t.ToggleOn = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true)

	t.ToggleOff = lipgloss.NewStyle().
		Foreground(muted)

	// Auth forms
	t.FormBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 3)

	t.FormLabel = lipgloss.NewStyle().
		Foreground(muted)

	t.FormError = lipgloss.NewStyle().
		Foreground(destructive).
		Bold(true)

	t.FormButton = lipgloss.NewStyle().
		Foreground(foreground).
		Background(secondary).
		Padding(0, 2).
		MarginRight(1)

	t.FormFocused = lipgloss.NewStyle().
		Foreground(background).
		Background(primary).
		Bold(true).
		Padding(0, 2).
		MarginRight(1)

	// Toasts
	t.ToastSuccess = lipgloss.NewStyle().
		Foreground(background).
		Background(Color("#22C55E")).
		Padding(0, 2)

	t.ToastError = lipgloss.NewStyle().
		Foreground(background).
		Background(destructive).
		Padding(0, 2)

	t.ToastInfo = lipgloss.NewStyle().
		Foreground(background).
		Background(primary).
		Padding(0, 2)

	t.ToastWarning = lipgloss.NewStyle().
		Foreground(background).
		Background(Color("#F59E0B")).
		Padding(0, 2)

	// Spinner and loading
	t.Spinner = lipgloss.NewStyle().
		Foreground(accent)

	t.ThinkingText = lipgloss.NewStyle().
		Foreground(muted)

	// Code blocks
	t.CodeBlock = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)

	t.CodeLangBadge = lipgloss.NewStyle().
		Foreground(muted).
		Background(secondary).
		Padding(0, 1).
		Bold(true)

	// Error boxes
	t.ErrorBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(destructive).
		Padding(1, 2)

	t.ErrorTitle = lipgloss.NewStyle().
		Foreground(destructive).
		Bold(true)

	t.ErrorMessage = lipgloss.NewStyle().
		Foreground(foreground)

	// Welcome screen
	t.WelcomeBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(primary).
		Padding(2, 4).
		Align(lipgloss.Center)

	t.WelcomeLogo = lipgloss.NewStyle().
		Foreground(primary).
		Bold(true)

	t.WelcomeInfo = lipgloss.NewStyle().
		Foreground(foreground)

	t.WelcomeKey = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true)

	t.WelcomeMuted = lipgloss.NewStyle().
		Foreground(muted).
		Italic(true)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns: sidebar hidden
	LayoutMedium                   // 60-100 columns: compact sidebar
	LayoutWide                     // > 100 columns: full sidebar
)
