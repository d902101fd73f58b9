// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package conversation

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jeranaias/chatpaat-tui/internal/api"
)

type promptServer struct {
	srv        *httptest.Server
	transcript []api.Message
	reply      atomic.Value // string
	failPrompt atomic.Bool
	slowFetch  atomic.Bool
}

func newPromptServer(t *testing.T) *promptServer {
	t.Helper()
	ps := &promptServer{
		transcript: []api.Message{
			{Role: api.RoleUser, Content: "earlier question"},
			{Role: api.RoleAssistant, Content: "earlier answer"},
		},
	}
	ps.reply.Store("Hi! How can I help you today?")

	mux := http.NewServeMux()
	mux.HandleFunc("GET /get_chat_messages/{id}/", func(w http.ResponseWriter, r *http.Request) {
		if ps.slowFetch.Load() {
			time.Sleep(200 * time.Millisecond)
		}
		if r.PathValue("id") == "missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(ps.transcript)
	})
	mux.HandleFunc("POST /prompt_gpt/", func(w http.ResponseWriter, r *http.Request) {
		if ps.failPrompt.Load() {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "token expired"})
			return
		}
		_ = json.NewEncoder(w).Encode(api.PromptResponse{Reply: ps.reply.Load().(string)})
	})

	ps.srv = httptest.NewServer(mux)
	t.Cleanup(ps.srv.Close)
	return ps
}

func newTestView(t *testing.T) (*View, *promptServer) {
	t.Helper()
	ps := newPromptServer(t)
	client := api.NewClientWithConfig(&api.ClientConfig{BaseURL: ps.srv.URL})
	return NewView(client), ps
}

func TestOpenNewChatMintsIDAndWelcome(t *testing.T) {
	v, _ := newTestView(t)
	nav := v.Open("")

	if !nav.IsNew || nav.ChatID == "" {
		t.Fatalf("nav = %+v", nav)
	}
	if len(nav.ChatID) != 36 {
		t.Fatalf("chat id %q is not a uuid", nav.ChatID)
	}

	entries := v.Entries()
	if len(entries) != 1 {
		t.Fatalf("entries = %d", len(entries))
	}
	if entries[0].Role != api.RoleAssistant || entries[0].Content != WelcomeText {
		t.Fatalf("welcome entry = %+v", entries[0])
	}
}

func TestOpenDistinctNewChatsGetDistinctIDs(t *testing.T) {
	v, _ := newTestView(t)
	first := v.Open("")
	second := v.Open("")
	if first.ChatID == second.ChatID {
		t.Fatal("new chats must not share an id")
	}
}

func TestLoadExistingTranscript(t *testing.T) {
	v, _ := newTestView(t)
	nav := v.Open("abc")
	v.Load(nav, "tok")

	entries := v.Entries()
	if len(entries) != 2 {
		t.Fatalf("entries = %d", len(entries))
	}
	if entries[0].Content != "earlier question" || entries[1].Content != "earlier answer" {
		t.Fatalf("transcript = %+v", entries)
	}
}

func TestLoadFailureYieldsEmptyTranscript(t *testing.T) {
	v, _ := newTestView(t)
	nav := v.Open("missing")
	v.Load(nav, "tok")

	if len(v.Entries()) != 0 {
		t.Fatalf("entries = %+v", v.Entries())
	}
}

func TestStaleLoadDropped(t *testing.T) {
	v, _ := newTestView(t)
	stale := v.Open("abc")
	fresh := v.Open("") // navigate away before the load lands

	v.Load(stale, "tok")

	entries := v.Entries()
	if len(entries) != 1 || entries[0].Content != WelcomeText {
		t.Fatalf("stale load applied: %+v", entries)
	}
	if v.ChatID() != fresh.ChatID {
		t.Fatalf("chat id = %s", v.ChatID())
	}
}

func TestSendHelloOrderingAndWelcomeRemoval(t *testing.T) {
	v, _ := newTestView(t)
	nav := v.Open("")

	v.Send(nav, "tok", "hello")

	entries := v.Entries()
	if len(entries) != 2 {
		t.Fatalf("entries = %d: %+v", len(entries), entries)
	}
	if entries[0].Role != api.RoleUser || entries[0].Content != "hello" {
		t.Fatalf("first = %+v", entries[0])
	}
	if entries[1].Role != api.RoleAssistant || entries[1].Content != "Hi! How can I help you today?" {
		t.Fatalf("second = %+v", entries[1])
	}
	for _, e := range entries {
		if e.Content == WelcomeText {
			t.Fatal("welcome survived first send")
		}
	}
	if v.IsNew() {
		t.Fatal("chat still new after first send")
	}
}

func TestSendFailureAppendsErrorEntry(t *testing.T) {
	v, ps := newTestView(t)
	nav := v.Open("")
	ps.failPrompt.Store(true)

	v.Send(nav, "tok", "hello")

	entries := v.Entries()
	if len(entries) != 2 {
		t.Fatalf("entries = %d", len(entries))
	}
	last := entries[1]
	if last.Role != api.RoleAssistant || !last.Failed {
		t.Fatalf("error entry = %+v", last)
	}
	if !strings.HasPrefix(last.Content, "⚠️ Error: Please log in to use the service.") {
		t.Fatalf("error text = %q", last.Content)
	}
	// The optimistic user entry stays.
	if entries[0].Role != api.RoleUser || entries[0].Content != "hello" {
		t.Fatalf("user entry = %+v", entries[0])
	}
}

func TestSendEmptyReplyAppendsNothing(t *testing.T) {
	v, ps := newTestView(t)
	nav := v.Open("")
	ps.reply.Store("")

	v.Send(nav, "tok", "hello")

	entries := v.Entries()
	if len(entries) != 1 || entries[0].Role != api.RoleUser {
		t.Fatalf("entries = %+v", entries)
	}
}

func TestStaleSendResponseDropped(t *testing.T) {
	v, _ := newTestView(t)
	stale := v.Open("")
	v.Open("abc") // navigate away

	v.Send(stale, "tok", "hello")

	// Neither the optimistic entry nor the reply may land in the new chat.
	if len(v.Entries()) != 0 {
		t.Fatalf("entries = %+v", v.Entries())
	}
}

func TestCloseClearsEverything(t *testing.T) {
	v, _ := newTestView(t)
	nav := v.Open("abc")
	v.Load(nav, "tok")

	v.Close()
	if v.ChatID() != "" || len(v.Entries()) != 0 {
		t.Fatal("state survived Close")
	}
	if nav.Ctx.Err() == nil {
		t.Fatal("in-flight context not cancelled")
	}
}

func TestOpenCancelsPreviousNavigation(t *testing.T) {
	v, _ := newTestView(t)
	first := v.Open("abc")
	v.Open("def")
	if first.Ctx.Err() == nil {
		t.Fatal("previous navigation context not cancelled")
	}
}

func TestLocalEditDeleteReact(t *testing.T) {
	v, _ := newTestView(t)
	nav := v.Open("abc")
	v.Load(nav, "tok")
	entries := v.Entries()

	if !v.EditEntry(entries[0].ID, "revised") {
		t.Fatal("edit failed")
	}
	got := v.Entries()[0]
	if got.Content != "revised" || !got.Edited {
		t.Fatalf("edited entry = %+v", got)
	}

	if !v.ReactEntry(entries[1].ID, "👍") {
		t.Fatal("react failed")
	}
	if v.Entries()[1].Reaction != "👍" {
		t.Fatal("reaction not set")
	}
	v.ReactEntry(entries[1].ID, "👍")
	if v.Entries()[1].Reaction != "" {
		t.Fatal("repeat reaction should clear")
	}

	if !v.DeleteEntry(entries[0].ID) {
		t.Fatal("delete failed")
	}
	if len(v.Entries()) != 1 {
		t.Fatalf("entries = %+v", v.Entries())
	}

	if v.EditEntry("nope", "x") || v.DeleteEntry("nope") || v.ReactEntry("nope", "x") {
		t.Fatal("unknown id must be a no-op")
	}

	// Reload restores the backend transcript; local edits are not durable.
	nav = v.Open("abc")
	v.Load(nav, "tok")
	if len(v.Entries()) != 2 || v.Entries()[0].Content != "earlier question" {
		t.Fatalf("reload = %+v", v.Entries())
	}
}
