// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package auth holds the signed-in session: the user record and the bearer
// token pair, persisted across restarts.
package auth

import (
	"context"
	"net/url"
	"sync"

	"github.com/jeranaias/chatpaat-tui/internal/api"
	"github.com/jeranaias/chatpaat-tui/internal/store"
)

// avatarBase is the deterministic avatar service seeded by email, matching
// what the backend's web client displays for the same account.
const avatarBase = "https://api.dicebear.com/7.x/initials/svg?seed="

// =============================================================================
// SESSION STORE
// =============================================================================

// Store holds the current session. The user record and token pair are set
// and cleared together; no state ever exists with one present and the
// other absent.
//
// Dependents do not poll: every auth mutation notifies subscribers and
// bumps a monotonic epoch, and subscribers re-derive their own state.
type Store struct {
	mu sync.Mutex

	client *api.Client
	local  *store.Store

	user    *api.User
	access  string
	refresh string

	epoch uint64
	subs  []chan struct{}
}

// NewStore creates a session store, restoring any persisted session.
// A persisted record missing either half (user without token or vice
// versa) is discarded whole.
func NewStore(client *api.Client, local *store.Store) *Store {
	s := &Store{client: client, local: local}
	s.restore()
	return s
}

func (s *Store) restore() {
	var user api.User
	if err := s.local.GetJSON(store.KeyUser, &user); err != nil {
		s.clearPersisted()
		return
	}
	access, err := s.local.GetSecret(store.KeyAccessToken)
	if err != nil || access == "" {
		s.clearPersisted()
		return
	}
	// A missing refresh token is tolerated; it only matters for the web
	// client's silent renewal, which the TUI does not perform.
	refresh, _ := s.local.GetSecret(store.KeyRefreshToken)

	s.user = &user
	s.access = access
	s.refresh = refresh
}

func (s *Store) clearPersisted() {
	_ = s.local.DeleteAll(store.KeyUser, store.KeyAccessToken, store.KeyRefreshToken)
}

// =============================================================================
// READ SIDE
// =============================================================================

// User returns the signed-in user, or ok=false when signed out.
func (s *Store) User() (api.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return api.User{}, false
	}
	return *s.user, true
}

// Token returns the current access token, empty when signed out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access
}

// SignedIn reports whether a session is active.
func (s *Store) SignedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// Epoch returns the monotonic change counter. It increments on every
// mutation; dependents use it only to detect "something changed".
func (s *Store) Epoch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch
}

// =============================================================================
// SUBSCRIPTIONS
// =============================================================================

// Subscribe registers for auth-change notifications. The channel has a
// one-slot buffer and notifications are collapsed, not queued: a slow
// reader sees at least one signal for any burst of changes.
func (s *Store) Subscribe() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan struct{}, 1)
	s.subs = append(s.subs, ch)
	return ch
}

// Unsubscribe removes a channel returned by Subscribe.
func (s *Store) Unsubscribe(ch <-chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subs {
		if sub == ch {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			close(sub)
			return
		}
	}
}

// notifyLocked bumps the epoch and signals every subscriber.
// Caller must hold s.mu.
func (s *Store) notifyLocked() {
	s.epoch++
	for _, sub := range s.subs {
		select {
		case sub <- struct{}{}:
		default:
		}
	}
}

// =============================================================================
// MUTATIONS
// =============================================================================

// SignIn exchanges credentials for a session.
func (s *Store) SignIn(ctx context.Context, email, password string) error {
	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	s.adopt(resp)
	return nil
}

// Register creates an account and signs in with the returned tokens.
func (s *Store) Register(ctx context.Context, username, email, password string) error {
	resp, err := s.client.Register(ctx, username, email, password)
	if err != nil {
		return err
	}
	s.adopt(resp)
	return nil
}

// SignInWithTokens adopts an externally-obtained session, as after the
// OAuth redirect flow.
func (s *Store) SignInWithTokens(access, refresh string, user api.User) {
	s.adopt(&api.AuthResponse{Access: access, Refresh: refresh, User: user})
}

// adopt installs a fresh session: derive the avatar, persist all three
// records, then notify.
func (s *Store) adopt(resp *api.AuthResponse) {
	user := resp.User
	if user.Image == "" {
		user.Image = AvatarURL(user.Email)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &user
	s.access = resp.Access
	s.refresh = resp.Refresh

	_ = s.local.SetJSON(store.KeyUser, user)
	_ = s.local.SetSecret(store.KeyAccessToken, resp.Access)
	_ = s.local.SetSecret(store.KeyRefreshToken, resp.Refresh)

	s.notifyLocked()
}

// SignOut clears the session unconditionally. It never fails.
func (s *Store) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.access = ""
	s.refresh = ""
	s.clearPersisted()

	s.notifyLocked()
}

// ForceReauth is SignOut under a different name: it documents the call
// sites where a credential-affecting change (password or email update)
// invalidated the tokens server-side.
func (s *Store) ForceReauth() {
	s.SignOut()
}

// =============================================================================
// HELPERS
// =============================================================================

// AvatarURL derives the deterministic avatar for an email address.
func AvatarURL(email string) string {
	return avatarBase + url.QueryEscape(email)
}
