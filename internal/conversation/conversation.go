// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package conversation holds the transcript for the open chat.
//
// Navigation is generation-counted: every Open cancels the previous
// chat's in-flight requests and bumps the generation, and any response
// carrying a stale generation is dropped instead of applied. A reply for
// a chat the user already left can never land in the wrong transcript.
package conversation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jeranaias/chatpaat-tui/internal/api"
)

// WelcomeText is the synthetic assistant greeting shown in a new chat.
// It is client-only and removed on the first send.
const WelcomeText = "Welcome! I'm here to assist you."

// =============================================================================
// TYPES
// =============================================================================

// Entry is one transcript item. Backend messages carry only role and
// content; the rest is client-side state.
type Entry struct {
	ID       string
	Role     string
	Content  string
	Reaction string
	Edited   bool
	Failed   bool
}

// Navigation is a ticket for one Open: async work started for it carries
// the ticket, and results are applied only while the ticket is current.
type Navigation struct {
	Gen    uint64
	Ctx    context.Context
	ChatID string
	IsNew  bool
}

// =============================================================================
// VIEW STATE
// =============================================================================

// View is the conversation state for the open chat.
type View struct {
	mu     sync.Mutex
	client *api.Client

	chatID  string
	isNew   bool
	entries []Entry
	sending bool

	gen    uint64
	cancel context.CancelFunc
}

// NewView creates an empty conversation view.
func NewView(client *api.Client) *View {
	return &View{client: client}
}

// Open navigates to a chat. An empty id means a new chat: a fresh uuid is
// minted and the transcript starts with the welcome greeting. A non-empty
// id starts with an empty transcript until Load fills it.
//
// Any in-flight request from the previous navigation is cancelled.
func (v *View) Open(chatID string) Navigation {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.cancel != nil {
		v.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	v.cancel = cancel
	v.gen++

	v.isNew = chatID == ""
	if v.isNew {
		chatID = uuid.NewString()
		v.entries = []Entry{{
			ID:      uuid.NewString(),
			Role:    api.RoleAssistant,
			Content: WelcomeText,
		}}
	} else {
		v.entries = nil
	}
	v.chatID = chatID
	v.sending = false

	return Navigation{Gen: v.gen, Ctx: ctx, ChatID: chatID, IsNew: v.isNew}
}

// Close cancels any in-flight request and clears the transcript. Used on
// sign-out.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.gen++
	v.chatID = ""
	v.isNew = false
	v.entries = nil
	v.sending = false
}

// Load fetches the transcript for an existing chat. A fetch failure or an
// empty result both yield the empty transcript; there is no error state
// on screen. Results for a superseded navigation are dropped.
func (v *View) Load(nav Navigation, token string) {
	if nav.IsNew {
		return
	}

	messages, err := v.client.GetChatMessages(nav.Ctx, token, nav.ChatID)

	v.mu.Lock()
	defer v.mu.Unlock()
	if nav.Gen != v.gen {
		return
	}
	if err != nil {
		v.entries = nil
		return
	}
	entries := make([]Entry, 0, len(messages))
	for _, m := range messages {
		entries = append(entries, Entry{
			ID:      uuid.NewString(),
			Role:    m.Role,
			Content: m.Content,
		})
	}
	v.entries = entries
}

// =============================================================================
// SENDING
// =============================================================================

// Send posts a prompt. The user entry is appended optimistically and the
// welcome greeting removed before any network traffic. On success the
// assistant reply is appended; on failure a synthesized assistant error
// entry is appended instead, never a toast. Stale results are dropped.
//
// The returned id belongs to the optimistic user entry.
func (v *View) Send(nav Navigation, token, content string) string {
	userID := uuid.NewString()

	v.mu.Lock()
	if nav.Gen != v.gen {
		v.mu.Unlock()
		return ""
	}
	v.removeWelcomeLocked()
	v.entries = append(v.entries, Entry{
		ID:      userID,
		Role:    api.RoleUser,
		Content: content,
	})
	v.isNew = false
	v.sending = true
	v.mu.Unlock()

	resp, err := v.client.SendPrompt(nav.Ctx, token, nav.ChatID, content)

	v.mu.Lock()
	defer v.mu.Unlock()
	if nav.Gen != v.gen {
		return userID
	}
	v.sending = false

	if err != nil {
		v.entries = append(v.entries, Entry{
			ID:      uuid.NewString(),
			Role:    api.RoleAssistant,
			Content: "⚠️ Error: Please log in to use the service. " + err.Error(),
			Failed:  true,
		})
		return userID
	}
	if resp.Reply != "" {
		v.entries = append(v.entries, Entry{
			ID:      uuid.NewString(),
			Role:    api.RoleAssistant,
			Content: resp.Reply,
		})
	}
	return userID
}

func (v *View) removeWelcomeLocked() {
	kept := v.entries[:0]
	for _, e := range v.entries {
		if e.Content != WelcomeText {
			kept = append(kept, e)
		}
	}
	v.entries = kept
}

// =============================================================================
// READ SIDE
// =============================================================================

// ChatID returns the open chat's id, empty when nothing is open.
func (v *View) ChatID() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.chatID
}

// IsNew reports whether the open chat has never been sent to the backend.
func (v *View) IsNew() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.isNew
}

// Sending reports whether a prompt is in flight.
func (v *View) Sending() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.sending
}

// Entries returns a copy of the transcript in order.
func (v *View) Entries() []Entry {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]Entry, len(v.entries))
	copy(out, v.entries)
	return out
}

// =============================================================================
// LOCAL EDITS
// =============================================================================
// Edits, deletions, and reactions are presentation-only. They are not
// persisted and a reload restores the backend transcript.

// EditEntry replaces an entry's content and marks it edited.
func (v *View) EditEntry(id, content string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.entries {
		if v.entries[i].ID == id {
			v.entries[i].Content = content
			v.entries[i].Edited = true
			return true
		}
	}
	return false
}

// DeleteEntry removes an entry from the transcript.
func (v *View) DeleteEntry(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.entries {
		if v.entries[i].ID == id {
			v.entries = append(v.entries[:i], v.entries[i+1:]...)
			return true
		}
	}
	return false
}

// ReactEntry sets or toggles a reaction on an entry. Reacting with the
// current reaction clears it.
func (v *View) ReactEntry(id, reaction string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.entries {
		if v.entries[i].ID == id {
			if v.entries[i].Reaction == reaction {
				v.entries[i].Reaction = ""
			} else {
				v.entries[i].Reaction = reaction
			}
			return true
		}
	}
	return false
}
