// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatpaat-tui/internal/chatlist"
	"github.com/jeranaias/chatpaat-tui/internal/ui/styles"
	"github.com/jeranaias/chatpaat-tui/internal/util"
)

// =============================================================================
// SIDEBAR
// =============================================================================

// Sidebar is the chat list panel: a search box, the favorites group, and
// the three recency groups, with a cursor for keyboard navigation.
type Sidebar struct {
	List         *chatlist.Store
	Query        string
	ShowArchived bool
	Compact      bool
	Selected     int
	Width        int
	Height       int
}

// NewSidebar creates a sidebar over the given chat list.
func NewSidebar(list *chatlist.Store) *Sidebar {
	return &Sidebar{List: list, Width: 32}
}

// Item is one selectable sidebar row.
type Item struct {
	Chat  chatlist.Chat
	Group string
}

// Items returns the selectable rows in display order: favorites first,
// then the three buckets narrowed by the search query and archive toggle.
func (s *Sidebar) Items() []Item {
	var items []Item
	for _, c := range s.List.Favorites() {
		if s.Query != "" && !util.ContainsFold(c.Title, s.Query) {
			continue
		}
		items = append(items, Item{Chat: c, Group: "Favorites"})
	}
	for b := chatlist.BucketToday; b <= chatlist.BucketWeek; b++ {
		for _, c := range s.List.Filtered(b, s.Query, s.ShowArchived) {
			items = append(items, Item{Chat: c, Group: b.Label()})
		}
	}
	return items
}

// SelectedChat returns the chat under the cursor.
func (s *Sidebar) SelectedChat() (chatlist.Chat, bool) {
	items := s.Items()
	if s.Selected < 0 || s.Selected >= len(items) {
		return chatlist.Chat{}, false
	}
	return items[s.Selected].Chat, true
}

// MoveUp moves the cursor up one row.
func (s *Sidebar) MoveUp() {
	if s.Selected > 0 {
		s.Selected--
	}
}

// MoveDown moves the cursor down one row.
func (s *Sidebar) MoveDown() {
	if s.Selected < len(s.Items())-1 {
		s.Selected++
	}
}

// ClampCursor pulls the cursor back in range after the list shrinks.
func (s *Sidebar) ClampCursor() {
	n := len(s.Items())
	if n == 0 {
		s.Selected = 0
		return
	}
	if s.Selected >= n {
		s.Selected = n - 1
	}
	if s.Selected < 0 {
		s.Selected = 0
	}
}

// =============================================================================
// RENDERING
// =============================================================================

// Render draws the sidebar at its configured width.
func (s *Sidebar) Render(theme *styles.Theme) string {
	width := s.Width
	if s.Compact {
		width = 20
	}
	inner := width - 4
	if inner < 8 {
		inner = 8
	}

	var b strings.Builder

	// Search box. The query is typed directly; an empty query shows the
	// placeholder.
	search := s.Query
	if search == "" {
		search = "Search chats…"
	}
	b.WriteString(theme.SearchBox.Width(inner).Render(util.TruncateWidth(search, inner)))
	b.WriteString("\n")

	if s.ShowArchived {
		b.WriteString(theme.ChatItemArchived.Render("Archived view"))
		b.WriteString("\n")
	}

	items := s.Items()
	if len(items) == 0 {
		b.WriteString("\n")
		b.WriteString(theme.WelcomeMuted.Render("No chats yet"))
	}

	lastGroup := ""
	for i, item := range items {
		if item.Group != lastGroup {
			b.WriteString("\n")
			b.WriteString(theme.SidebarGroupLabel.Render(item.Group))
			b.WriteString("\n")
			lastGroup = item.Group
		}

		title := util.TruncateWidth(item.Chat.Title, inner-2)
		marker := "  "
		if item.Chat.Favorite && item.Group != "Favorites" {
			marker = "★ "
		}

		style := theme.ChatItem
		switch {
		case i == s.Selected:
			style = theme.ChatItemActive
		case item.Chat.Archived:
			style = theme.ChatItemArchived
		case item.Chat.Favorite:
			style = theme.ChatItemFavorite
		}
		b.WriteString(style.Render(marker + title))
		b.WriteString("\n")
	}

	box := theme.Sidebar.Width(width)
	if s.Height > 0 {
		box = box.Height(s.Height)
	}
	return box.Render(lipgloss.NewStyle().MaxWidth(inner + 2).Render(b.String()))
}
