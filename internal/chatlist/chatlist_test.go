// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chatlist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/jeranaias/chatpaat-tui/internal/api"
)

type bucketServer struct {
	srv        *httptest.Server
	today      []api.ChatSummary
	yesterday  []api.ChatSummary
	week       []api.ChatSummary
	failToday  atomic.Bool
	failDelete atomic.Bool
	deleted    []string
}

func newBucketServer(t *testing.T) *bucketServer {
	t.Helper()
	bs := &bucketServer{
		today: []api.ChatSummary{
			{ID: "t1", Title: `"Greetings"`, Created: "2026-09-01T10:00:00"},
			{ID: "t2", Title: "Deploy notes", Created: "2026-09-01T09:00:00"},
		},
		yesterday: []api.ChatSummary{
			{ID: "y1", Title: "Reisepläne", Created: "2026-08-31T10:00:00"},
		},
		week: []api.ChatSummary{
			{ID: "w1", Title: "Old thread", Created: "2026-08-28T10:00:00"},
		},
	}

	mux := http.NewServeMux()
	serve := func(pick func() []api.ChatSummary, canFail *atomic.Bool) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if canFail != nil && canFail.Load() {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			_ = json.NewEncoder(w).Encode(pick())
		}
	}
	mux.HandleFunc("GET /todays_chat/", serve(func() []api.ChatSummary { return bs.today }, &bs.failToday))
	mux.HandleFunc("GET /yesterdays_chat/", serve(func() []api.ChatSummary { return bs.yesterday }, nil))
	mux.HandleFunc("GET /seven_days_chat/", serve(func() []api.ChatSummary { return bs.week }, nil))
	mux.HandleFunc("DELETE /delete_chat/{id}/", func(w http.ResponseWriter, r *http.Request) {
		if bs.failDelete.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		bs.deleted = append(bs.deleted, r.PathValue("id"))
		w.WriteHeader(http.StatusNoContent)
	})

	bs.srv = httptest.NewServer(mux)
	t.Cleanup(bs.srv.Close)
	return bs
}

func newTestList(t *testing.T) (*Store, *bucketServer) {
	t.Helper()
	bs := newBucketServer(t)
	client := api.NewClientWithConfig(&api.ClientConfig{BaseURL: bs.srv.URL})
	return NewStore(client), bs
}

func TestRefreshAllFillsBuckets(t *testing.T) {
	s, _ := newTestList(t)
	s.RefreshAll(context.Background(), "tok")

	if got := len(s.Chats(BucketToday)); got != 2 {
		t.Fatalf("today = %d chats", got)
	}
	if got := len(s.Chats(BucketYesterday)); got != 1 {
		t.Fatalf("yesterday = %d chats", got)
	}
	if got := len(s.Chats(BucketWeek)); got != 1 {
		t.Fatalf("week = %d chats", got)
	}

	// Quote-wrapped titles are cleaned for display.
	if title := s.Chats(BucketToday)[0].Title; title != "Greetings" {
		t.Fatalf("title = %q", title)
	}
}

func TestBucketsAreDisjoint(t *testing.T) {
	s, _ := newTestList(t)
	s.RefreshAll(context.Background(), "tok")

	seen := make(map[string]Bucket)
	for b := BucketToday; b < bucketCount; b++ {
		for _, c := range s.Chats(b) {
			if prev, dup := seen[c.ID]; dup {
				t.Fatalf("chat %s in buckets %d and %d", c.ID, prev, b)
			}
			seen[c.ID] = b
		}
	}
}

func TestBucketFailureClearsOnlyThatBucket(t *testing.T) {
	s, bs := newTestList(t)
	s.RefreshAll(context.Background(), "tok")

	bs.failToday.Store(true)
	if err := s.RefreshBucket(context.Background(), "tok", BucketToday); err == nil {
		t.Fatal("want error")
	}

	if len(s.Chats(BucketToday)) != 0 {
		t.Fatal("failed bucket should be cleared")
	}
	if len(s.Chats(BucketYesterday)) != 1 || len(s.Chats(BucketWeek)) != 1 {
		t.Fatal("other buckets must be untouched")
	}
}

func TestToggleFavoriteSurvivesRefresh(t *testing.T) {
	s, _ := newTestList(t)
	s.RefreshAll(context.Background(), "tok")

	s.ToggleFavorite("y1")
	s.RefreshAll(context.Background(), "tok")

	c, ok := s.Find("y1")
	if !ok || !c.Favorite {
		t.Fatalf("favorite lost across refresh: %+v", c)
	}

	s.ToggleFavorite("y1")
	c, _ = s.Find("y1")
	if c.Favorite {
		t.Fatal("second toggle should clear the flag")
	}
}

func TestFavoritesUnionAcrossBuckets(t *testing.T) {
	s, _ := newTestList(t)
	s.RefreshAll(context.Background(), "tok")

	s.ToggleFavorite("t2")
	s.ToggleFavorite("w1")

	favs := s.Favorites()
	if len(favs) != 2 {
		t.Fatalf("favorites = %d", len(favs))
	}
	if favs[0].ID != "t2" || favs[1].ID != "w1" {
		t.Fatalf("order = %s, %s", favs[0].ID, favs[1].ID)
	}

	// A favorited chat still appears in its own bucket too.
	if _, ok := s.Find("t2"); !ok {
		t.Fatal("favorite vanished from its bucket")
	}
}

func TestFilteredByQueryAndArchive(t *testing.T) {
	s, _ := newTestList(t)
	s.RefreshAll(context.Background(), "tok")

	// Case-folded match handles non-ASCII casing.
	got := s.Filtered(BucketYesterday, "REISEPLÄNE", false)
	if len(got) != 1 || got[0].ID != "y1" {
		t.Fatalf("folded query = %+v", got)
	}

	s.ToggleArchive("t1")
	if got := s.Filtered(BucketToday, "", false); len(got) != 1 || got[0].ID != "t2" {
		t.Fatalf("active view = %+v", got)
	}
	if got := s.Filtered(BucketToday, "", true); len(got) != 1 || got[0].ID != "t1" {
		t.Fatalf("archived view = %+v", got)
	}

	if got := s.Filtered(BucketToday, "zzz", false); len(got) != 0 {
		t.Fatalf("no-match query = %+v", got)
	}
}

func TestDeleteRemovesEverywhereOnSuccess(t *testing.T) {
	s, bs := newTestList(t)
	s.RefreshAll(context.Background(), "tok")
	s.ToggleFavorite("t1")

	if err := s.Delete(context.Background(), "tok", "t1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(bs.deleted) != 1 || bs.deleted[0] != "t1" {
		t.Fatalf("backend deletes = %v", bs.deleted)
	}
	if _, ok := s.Find("t1"); ok {
		t.Fatal("chat still present after delete")
	}
	if len(s.Favorites()) != 0 {
		t.Fatal("favorite flag survived delete")
	}
}

func TestDeleteFailureLeavesBucketsUntouched(t *testing.T) {
	s, bs := newTestList(t)
	s.RefreshAll(context.Background(), "tok")
	before := s.Chats(BucketToday)

	bs.failDelete.Store(true)
	if err := s.Delete(context.Background(), "tok", "t1"); err == nil {
		t.Fatal("want error")
	}

	after := s.Chats(BucketToday)
	if len(after) != len(before) {
		t.Fatalf("bucket changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("entry %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestClearDropsStateAndFlags(t *testing.T) {
	s, _ := newTestList(t)
	s.RefreshAll(context.Background(), "tok")
	s.ToggleFavorite("t1")

	s.Clear()
	if !s.Empty() {
		t.Fatal("buckets survived Clear")
	}

	// Flags do not resurrect on the next refresh.
	s.RefreshAll(context.Background(), "tok")
	c, _ := s.Find("t1")
	if c.Favorite {
		t.Fatal("flag survived Clear")
	}
}
