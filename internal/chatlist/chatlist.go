// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chatlist aggregates the sidebar chat list: three recency buckets
// fetched independently from the backend, plus client-side favorite and
// archive flags layered on top.
package chatlist

import (
	"context"
	"sync"

	"github.com/jeranaias/chatpaat-tui/internal/api"
	"github.com/jeranaias/chatpaat-tui/internal/util"
)

// =============================================================================
// TYPES
// =============================================================================

// Bucket identifies one recency group. Buckets partition the list: a chat
// appears in exactly one bucket, decided by the backend.
type Bucket int

const (
	BucketToday Bucket = iota
	BucketYesterday
	BucketWeek

	bucketCount
)

// Label returns the sidebar heading for the bucket.
func (b Bucket) Label() string {
	switch b {
	case BucketToday:
		return "Today"
	case BucketYesterday:
		return "Yesterday"
	case BucketWeek:
		return "Previous 7 Days"
	default:
		return ""
	}
}

// Chat is a sidebar entry: the backend summary plus the client-only flags.
// Favorite and archived never reach the wire; they live for the session
// and are reapplied after every refresh.
type Chat struct {
	ID       string
	Title    string
	Created  string
	Favorite bool
	Archived bool
}

type flags struct {
	favorite bool
	archived bool
}

// =============================================================================
// STORE
// =============================================================================

// Store holds the bucketed chat list.
type Store struct {
	mu      sync.Mutex
	client  *api.Client
	buckets [bucketCount][]Chat
	// flags survive refreshes, keyed by chat id.
	flags map[string]flags
}

// NewStore creates an empty chat list backed by the given client.
func NewStore(client *api.Client) *Store {
	return &Store{
		client: client,
		flags:  make(map[string]flags),
	}
}

// =============================================================================
// REFRESH
// =============================================================================

// RefreshBucket fetches one bucket. On failure the bucket is cleared and
// the error returned; the other buckets are untouched. Bucket fetch
// failures are silent in the UI, so callers usually drop the error.
func (s *Store) RefreshBucket(ctx context.Context, token string, b Bucket) error {
	var (
		summaries []api.ChatSummary
		err       error
	)
	switch b {
	case BucketToday:
		summaries, err = s.client.TodaysChats(ctx, token)
	case BucketYesterday:
		summaries, err = s.client.YesterdaysChats(ctx, token)
	case BucketWeek:
		summaries, err = s.client.SevenDaysChats(ctx, token)
	default:
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.buckets[b] = nil
		return err
	}

	chats := make([]Chat, 0, len(summaries))
	for _, sum := range summaries {
		f := s.flags[sum.ID]
		chats = append(chats, Chat{
			ID:       sum.ID,
			Title:    util.CleanTitle(sum.Title),
			Created:  sum.Created,
			Favorite: f.favorite,
			Archived: f.archived,
		})
	}
	s.buckets[b] = chats
	return nil
}

// RefreshAll fetches the three buckets concurrently. Each bucket succeeds
// or fails on its own.
func (s *Store) RefreshAll(ctx context.Context, token string) {
	var wg sync.WaitGroup
	for b := BucketToday; b < bucketCount; b++ {
		wg.Add(1)
		go func(b Bucket) {
			defer wg.Done()
			_ = s.RefreshBucket(ctx, token, b)
		}(b)
	}
	wg.Wait()
}

// Clear drops every bucket and all client-side flags. Used on sign-out.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for b := range s.buckets {
		s.buckets[b] = nil
	}
	s.flags = make(map[string]flags)
}

// =============================================================================
// READ SIDE
// =============================================================================

// Chats returns a copy of one bucket.
func (s *Store) Chats(b Bucket) []Chat {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b < 0 || b >= bucketCount {
		return nil
	}
	out := make([]Chat, len(s.buckets[b]))
	copy(out, s.buckets[b])
	return out
}

// Favorites returns every favorited chat across all buckets, in bucket
// order. Recomputed on each call, never cached.
func (s *Store) Favorites() []Chat {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Chat
	for b := BucketToday; b < bucketCount; b++ {
		for _, c := range s.buckets[b] {
			if c.Favorite {
				out = append(out, c)
			}
		}
	}
	return out
}

// Filtered returns one bucket narrowed by the sidebar controls: a
// case-folded substring match on the title, and the archived flag must
// match the archived view toggle. An empty query matches everything.
func (s *Store) Filtered(b Bucket, query string, showArchived bool) []Chat {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b < 0 || b >= bucketCount {
		return nil
	}
	var out []Chat
	for _, c := range s.buckets[b] {
		if c.Archived != showArchived {
			continue
		}
		if query != "" && !util.ContainsFold(c.Title, query) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Find returns the chat with the given id, searching every bucket.
func (s *Store) Find(id string) (Chat, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for b := range s.buckets {
		for _, c := range s.buckets[b] {
			if c.ID == id {
				return c, true
			}
		}
	}
	return Chat{}, false
}

// Empty reports whether every bucket is empty.
func (s *Store) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for b := range s.buckets {
		if len(s.buckets[b]) > 0 {
			return false
		}
	}
	return true
}

// =============================================================================
// MUTATIONS
// =============================================================================

// ToggleFavorite flips the favorite flag on a chat. Client-only; the
// backend never sees it.
func (s *Store) ToggleFavorite(id string) {
	s.toggle(id, func(f *flags) { f.favorite = !f.favorite })
}

// ToggleArchive flips the archived flag on a chat. Client-only.
func (s *Store) ToggleArchive(id string) {
	s.toggle(id, func(f *flags) { f.archived = !f.archived })
}

func (s *Store) toggle(id string, mutate func(*flags)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.flags[id]
	mutate(&f)
	s.flags[id] = f

	for b := range s.buckets {
		for i := range s.buckets[b] {
			if s.buckets[b][i].ID == id {
				s.buckets[b][i].Favorite = f.favorite
				s.buckets[b][i].Archived = f.archived
			}
		}
	}
}

// Delete removes a chat, backend first. Only a successful backend delete
// mutates local state; on error every bucket is left exactly as it was.
func (s *Store) Delete(ctx context.Context, token, id string) error {
	if err := s.client.DeleteChat(ctx, token, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.flags, id)
	for b := range s.buckets {
		for i, c := range s.buckets[b] {
			if c.ID == id {
				s.buckets[b] = append(s.buckets[b][:i], s.buckets[b][i+1:]...)
				break
			}
		}
	}
	return nil
}
