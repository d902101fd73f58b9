// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jeranaias/chatpaat-tui/internal/api"
	"github.com/jeranaias/chatpaat-tui/internal/store"
)

func authServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/login/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "hunter22" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid email or password"})
			return
		}
		_ = json.NewEncoder(w).Encode(api.AuthResponse{
			Access:  "acc-1",
			Refresh: "ref-1",
			User:    api.User{Username: "mara", Email: body["email"]},
		})
	})
	mux.HandleFunc("POST /api/register/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		_ = json.NewEncoder(w).Encode(api.AuthResponse{
			Access:  "acc-new",
			Refresh: "ref-new",
			User:    api.User{Username: body["username"], Email: body["email"]},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestStore(t *testing.T, baseURL string) (*Store, *store.Store) {
	t.Helper()
	local, err := store.NewWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	client := api.NewClientWithConfig(&api.ClientConfig{BaseURL: baseURL})
	return NewStore(client, local), local
}

func TestSignInPopulatesAndPersists(t *testing.T) {
	srv := authServer(t)
	s, local := newTestStore(t, srv.URL)

	if s.SignedIn() {
		t.Fatal("fresh store should be signed out")
	}
	if err := s.SignIn(context.Background(), "mara@example.com", "hunter22"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	user, ok := s.User()
	if !ok || user.Email != "mara@example.com" {
		t.Fatalf("user = %+v, ok = %v", user, ok)
	}
	if user.Image == "" {
		t.Fatal("avatar should be derived when server sends none")
	}
	if s.Token() != "acc-1" {
		t.Fatalf("token = %q", s.Token())
	}

	// Both halves persisted.
	if _, err := local.GetSecret(store.KeyAccessToken); err != nil {
		t.Fatalf("access token not persisted: %v", err)
	}
	var persisted api.User
	if err := local.GetJSON(store.KeyUser, &persisted); err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
}

func TestSignInBadPasswordLeavesSignedOut(t *testing.T) {
	srv := authServer(t)
	s, _ := newTestStore(t, srv.URL)

	err := s.SignIn(context.Background(), "mara@example.com", "wrong")
	if err == nil {
		t.Fatal("want error")
	}
	if !api.IsAuth(err) {
		t.Fatalf("want auth error, got %v", err)
	}
	if s.SignedIn() {
		t.Fatal("failed sign-in must not install a session")
	}
}

func TestSignOutClearsUserAndTokensTogether(t *testing.T) {
	srv := authServer(t)
	s, local := newTestStore(t, srv.URL)

	if err := s.SignIn(context.Background(), "mara@example.com", "hunter22"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	s.SignOut()

	if s.SignedIn() {
		t.Fatal("still signed in after SignOut")
	}
	if s.Token() != "" {
		t.Fatal("token survived SignOut")
	}
	if err := local.GetJSON(store.KeyUser, &api.User{}); err == nil {
		t.Fatal("persisted user survived SignOut")
	}
	if _, err := local.GetSecret(store.KeyAccessToken); err == nil {
		t.Fatal("persisted token survived SignOut")
	}
}

func TestRestoreAcrossRestart(t *testing.T) {
	srv := authServer(t)
	dir := t.TempDir()
	local, err := store.NewWithDir(dir)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	client := api.NewClientWithConfig(&api.ClientConfig{BaseURL: srv.URL})

	first := NewStore(client, local)
	if err := first.SignIn(context.Background(), "mara@example.com", "hunter22"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	second := NewStore(client, local)
	user, ok := second.User()
	if !ok || user.Username != "mara" {
		t.Fatalf("restored user = %+v, ok = %v", user, ok)
	}
	if second.Token() != "acc-1" {
		t.Fatalf("restored token = %q", second.Token())
	}
}

func TestRestoreDiscardsHalfSessions(t *testing.T) {
	srv := authServer(t)
	dir := t.TempDir()
	local, err := store.NewWithDir(dir)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	client := api.NewClientWithConfig(&api.ClientConfig{BaseURL: srv.URL})

	first := NewStore(client, local)
	if err := first.SignIn(context.Background(), "mara@example.com", "hunter22"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	// Simulate a corrupted record: user present, token gone.
	if err := local.Delete(store.KeyAccessToken); err != nil {
		t.Fatalf("delete: %v", err)
	}

	second := NewStore(client, local)
	if second.SignedIn() {
		t.Fatal("half session must not restore")
	}
	if err := local.GetJSON(store.KeyUser, &api.User{}); err == nil {
		t.Fatal("orphaned user record should be purged")
	}
}

func TestSubscribeSignalsOnEveryMutation(t *testing.T) {
	srv := authServer(t)
	s, _ := newTestStore(t, srv.URL)

	ch := s.Subscribe()
	before := s.Epoch()

	if err := s.Register(context.Background(), "nadia", "nadia@example.com", "pw123456"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	select {
	case <-ch:
	default:
		t.Fatal("no signal after Register")
	}
	if s.Epoch() != before+1 {
		t.Fatalf("epoch = %d, want %d", s.Epoch(), before+1)
	}

	s.SignOut()
	select {
	case <-ch:
	default:
		t.Fatal("no signal after SignOut")
	}

	s.Unsubscribe(ch)
	s.SignInWithTokens("a", "r", api.User{Email: "x@example.com"})
	if _, open := <-ch; open {
		t.Fatal("unsubscribed channel should be closed")
	}
}

func TestAvatarURL(t *testing.T) {
	got := AvatarURL("a+b@example.com")
	want := avatarBase + "a%2Bb%40example.com"
	if got != want {
		t.Fatalf("AvatarURL = %q, want %q", got, want)
	}
}
