// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat is the root Bubble Tea model for the terminal client.
package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/chatpaat-tui/internal/api"
	"github.com/jeranaias/chatpaat-tui/internal/auth"
	"github.com/jeranaias/chatpaat-tui/internal/chatlist"
	"github.com/jeranaias/chatpaat-tui/internal/conversation"
	"github.com/jeranaias/chatpaat-tui/internal/history"
	"github.com/jeranaias/chatpaat-tui/internal/notify"
	"github.com/jeranaias/chatpaat-tui/internal/prefs"
	"github.com/jeranaias/chatpaat-tui/internal/profile"
	"github.com/jeranaias/chatpaat-tui/internal/ui/components"
)

// =============================================================================
// SCREENS
// =============================================================================

// Screen selects which top-level view is active.
type Screen int

const (
	ScreenAuth Screen = iota
	ScreenChat
	ScreenSettings
	ScreenProfile
)

// Focus selects which pane receives plain keystrokes on the chat screen.
type Focus int

const (
	FocusInput Focus = iota
	FocusSidebar
)

// =============================================================================
// MODEL
// =============================================================================

// Deps bundles the long-lived stores the model operates on. The caller
// constructs them once at startup and owns their lifetimes.
type Deps struct {
	Client  *api.Client
	Session *auth.Store
	Prefs   *prefs.Store
	List    *chatlist.Store
	Conv    *conversation.View
	Toasts  *notify.Queue
	Profile *profile.Service
	History *history.Store // optional
}

// Model is the root Bubble Tea model.
type Model struct {
	deps Deps

	screen Screen
	focus  Focus
	width  int
	height int
	ready  bool

	nav conversation.Navigation

	// Chat screen components.
	viewport viewport.Model
	input    textinput.Model
	search   textinput.Model
	spinner  spinner.Model
	sidebar  *components.Sidebar
	markdown *components.MarkdownRenderer

	sidebarOpen bool
	searching   bool
	sending     bool

	// Other screens.
	authForm AuthForm
	settings SettingsPanel
	profForm ProfileForm

	keyMap    KeyMap
	sessionCh <-chan struct{}
	ticking   bool
}

// New builds the root model. The session subscription is armed in Init.
func New(deps Deps) Model {
	input := textinput.New()
	input.Placeholder = "Type a message…"
	input.CharLimit = 4000

	search := textinput.New()
	search.Placeholder = "Search chats…"
	search.CharLimit = 128

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		deps:        deps,
		viewport:    viewport.New(80, 20),
		input:       input,
		search:      search,
		spinner:     sp,
		sidebar:     components.NewSidebar(deps.List),
		markdown:    components.NewMarkdownRenderer(),
		sidebarOpen: true,
		authForm:    NewAuthForm(),
		profForm:    NewProfileForm(),
		keyMap:      DefaultKeyMap(),
		sessionCh:   deps.Session.Subscribe(),
	}
	m.sidebar.Compact = deps.Prefs.Settings().CompactSidebar

	if deps.Session.SignedIn() {
		m.screen = ScreenChat
		m.input.Focus()
		m.nav = deps.Conv.Open("")
	} else {
		m.screen = ScreenAuth
	}
	return m
}

// Init starts the session listener and, for a restored session, the
// initial chat load.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textinput.Blink,
		m.spinner.Tick,
		WaitForSessionCmd(m.sessionCh),
	}
	if m.deps.Session.SignedIn() {
		cmds = append(cmds, RefreshChatsCmd(m.deps.List, m.deps.Session.Token()))
	}
	return tea.Batch(cmds...)
}

// =============================================================================
// CHAT NAVIGATION
// =============================================================================

// openChat switches the conversation to the given chat id ("" for a new
// chat) and returns the load command for existing chats.
func (m *Model) openChat(id string) tea.Cmd {
	m.nav = m.deps.Conv.Open(id)
	m.sending = false
	m.rebuildTranscript()
	if m.nav.IsNew {
		return nil
	}
	return LoadTranscriptCmd(m.deps.Conv, m.nav, m.deps.Session.Token())
}

// submitPrompt validates and sends the composed message.
func (m *Model) submitPrompt() tea.Cmd {
	content := strings.TrimSpace(m.input.Value())
	if content == "" || m.deps.Conv.Sending() {
		return nil
	}
	m.input.Reset()
	m.sending = true

	cmds := []tea.Cmd{
		SendPromptCmd(m.deps.Conv, m.nav, m.deps.Session.Token(), content),
		m.spinner.Tick,
	}
	// The optimistic user entry is already visible.
	m.rebuildTranscriptAfterCmd()
	return tea.Batch(cmds...)
}

// commitSearch applies the search box content to the sidebar and logs
// non-empty queries.
func (m *Model) commitSearch() tea.Cmd {
	query := strings.TrimSpace(m.search.Value())
	m.sidebar.Query = query
	m.sidebar.ClampCursor()
	m.searching = false
	m.search.Blur()
	if query == "" {
		return nil
	}
	return LogSearchCmd(m.deps.Client, m.deps.History, m.deps.Session.Token(), query)
}

// =============================================================================
// TRANSCRIPT RENDERING
// =============================================================================

// transcriptWidth is the wrap width inside the viewport.
func (m *Model) transcriptWidth() int {
	w := m.viewport.Width - 2
	if w < 20 {
		w = 20
	}
	return w
}

// rebuildTranscript re-renders every entry into the viewport and keeps
// the scroll position pinned to the bottom when auto-scroll is on.
func (m *Model) rebuildTranscript() {
	theme := m.deps.Prefs.Theme()
	entries := m.deps.Conv.Entries()
	width := m.transcriptWidth()
	dark := m.deps.Prefs.IsDark()
	compact := m.deps.Prefs.Settings().MessageDensity == prefs.DensityCompact

	if len(entries) == 0 {
		m.viewport.SetContent(components.RenderEmptyTranscript(theme, width, m.viewport.Height))
		return
	}

	sep := "\n\n"
	if compact {
		sep = "\n"
	}

	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		blocks = append(blocks, renderEntry(theme, m.markdown, e, width, dark))
	}
	m.viewport.SetContent(strings.Join(blocks, sep))

	if m.deps.Prefs.Settings().AutoScroll {
		m.viewport.GotoBottom()
	}
}

// rebuildTranscriptAfterCmd rebuilds and pins to bottom regardless of
// the auto-scroll preference; the user just acted on the transcript.
func (m *Model) rebuildTranscriptAfterCmd() {
	m.rebuildTranscript()
	m.viewport.GotoBottom()
}
