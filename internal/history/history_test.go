// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
)

func newTestHistory(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAddAndRecentNewestFirst(t *testing.T) {
	s := newTestHistory(t)
	ctx := context.Background()

	for _, q := range []string{"alpha", "beta", "gamma"} {
		if err := s.Add(ctx, q); err != nil {
			t.Fatalf("Add(%q): %v", q, err)
		}
	}

	got, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	want := []string{"gamma", "beta", "alpha"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestAddDedupesAndBumps(t *testing.T) {
	s := newTestHistory(t)
	ctx := context.Background()

	_ = s.Add(ctx, "alpha")
	_ = s.Add(ctx, "beta")
	_ = s.Add(ctx, "alpha")

	got, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 || got[0] != "alpha" || got[1] != "beta" {
		t.Fatalf("got %v", got)
	}
}

func TestAddIgnoresBlank(t *testing.T) {
	s := newTestHistory(t)
	ctx := context.Background()

	_ = s.Add(ctx, "  ")
	_ = s.Add(ctx, "")
	got, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestCapPrunesOldest(t *testing.T) {
	s := newTestHistory(t)
	ctx := context.Background()

	for i := 0; i < maxEntries+20; i++ {
		if err := s.Add(ctx, fmt.Sprintf("query-%03d", i)); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	got, err := s.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != maxEntries {
		t.Fatalf("len = %d, want %d", len(got), maxEntries)
	}
	if got[0] != fmt.Sprintf("query-%03d", maxEntries+19) {
		t.Fatalf("newest = %s", got[0])
	}
	for _, q := range got {
		if q == "query-000" {
			t.Fatal("oldest entry survived the cap")
		}
	}
}

func TestMatchingPrefix(t *testing.T) {
	s := newTestHistory(t)
	ctx := context.Background()

	for _, q := range []string{"deploy api", "deploy web", "debug session", "100% done"} {
		_ = s.Add(ctx, q)
	}

	got, err := s.Matching(ctx, "deploy", 10)
	if err != nil {
		t.Fatalf("Matching: %v", err)
	}
	if len(got) != 2 || got[0] != "deploy web" || got[1] != "deploy api" {
		t.Fatalf("got %v", got)
	}

	// LIKE metacharacters in the prefix are literals.
	got, err = s.Matching(ctx, "100%", 10)
	if err != nil {
		t.Fatalf("Matching: %v", err)
	}
	if len(got) != 1 || got[0] != "100% done" {
		t.Fatalf("got %v", got)
	}
}

func TestClear(t *testing.T) {
	s := newTestHistory(t)
	ctx := context.Background()

	_ = s.Add(ctx, "alpha")
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	got, _ := s.Recent(ctx, 10)
	if len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestReopenPersists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.db")

	first, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	_ = first.Add(context.Background(), "alpha")
	first.Close()

	second, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()
	got, err := second.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 1 || got[0] != "alpha" {
		t.Fatalf("got %v", got)
	}
}
