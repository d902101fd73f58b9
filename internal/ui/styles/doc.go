// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the chatpaat TUI.
//
// It defines the seven named color presets (light, dark, dracula, nord,
// solarized, material, catppuccin), each mapping to a fixed Palette of
// eight semantic roles, plus the orthogonal overlays (accent color, high
// contrast, warm palette) that are applied on top of the base palette.
//
// Theme is the resolved set of lipgloss styles. It is always rebuilt in
// full from a resolved palette so a theme switch cannot leave stale roles
// behind.
package styles
