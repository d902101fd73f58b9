// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package notify

import (
	"testing"
	"time"
)

// fixedClock lets tests advance time deterministically.
type fixedClock struct {
	t time.Time
}

func (c *fixedClock) now() time.Time          { return c.t }
func (c *fixedClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newClockedQueue() (*Queue, *fixedClock) {
	clock := &fixedClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	q := NewQueue()
	q.now = clock.now
	return q, clock
}

func TestPushNewestFirst(t *testing.T) {
	q, _ := newClockedQueue()
	q.Info("first")
	q.Error("second")

	toasts := q.Active()
	if len(toasts) != 2 {
		t.Fatalf("len = %d, want 2", len(toasts))
	}
	if toasts[0].Message != "second" || toasts[1].Message != "first" {
		t.Fatalf("order = [%s, %s]", toasts[0].Message, toasts[1].Message)
	}
}

func TestPushDurationsPerKind(t *testing.T) {
	tests := []struct {
		kind Kind
		want time.Duration
	}{
		{KindInfo, InfoDuration},
		{KindSuccess, SuccessDuration},
		{KindError, ErrorDuration},
		{KindWarning, WarningDuration},
	}
	for _, tt := range tests {
		q, _ := newClockedQueue()
		q.Push(tt.kind, "msg")
		if got := q.Active()[0].Duration; got != tt.want {
			t.Errorf("kind %d: duration = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestWarningHelper(t *testing.T) {
	q, _ := newClockedQueue()
	q.Warning("refresh token expires soon")

	got := q.Active()
	if len(got) != 1 || got[0].Kind != KindWarning {
		t.Fatalf("active = %+v, want one warning toast", got)
	}
	if got[0].Duration != WarningDuration {
		t.Fatalf("duration = %v, want %v", got[0].Duration, WarningDuration)
	}
}

func TestPushDedupesRestartsTimer(t *testing.T) {
	q, clock := newClockedQueue()
	id1 := q.Error("network down")
	clock.advance(6 * time.Second)
	id2 := q.Error("network down")

	if id1 != id2 {
		t.Fatal("identical visible toast should be restarted, not duplicated")
	}
	if len(q.Active()) != 1 {
		t.Fatalf("len = %d, want 1", len(q.Active()))
	}
	// Restarted at t+6s, so still alive at t+12s.
	clock.advance(6 * time.Second)
	if len(q.Prune()) != 1 {
		t.Fatal("restarted toast expired too early")
	}
}

func TestPruneDropsExpired(t *testing.T) {
	q, clock := newClockedQueue()
	q.Info("short")
	q.Error("long")

	clock.advance(InfoDuration + time.Second)
	remaining := q.Prune()
	if len(remaining) != 1 || remaining[0].Message != "long" {
		t.Fatalf("remaining = %+v", remaining)
	}

	clock.advance(ErrorDuration)
	if len(q.Prune()) != 0 {
		t.Fatal("error toast should have expired")
	}
	if !q.Empty() {
		t.Fatal("queue should be empty")
	}
}

func TestDismissByID(t *testing.T) {
	q, _ := newClockedQueue()
	id := q.Info("one")
	q.Info("two")

	q.Dismiss(id)
	toasts := q.Active()
	if len(toasts) != 1 || toasts[0].Message != "two" {
		t.Fatalf("toasts = %+v", toasts)
	}

	q.Dismiss("no-such-id")
	if len(q.Active()) != 1 {
		t.Fatal("unknown id must be a no-op")
	}
}

func TestDismissOldest(t *testing.T) {
	q, _ := newClockedQueue()
	q.Info("old")
	q.Info("new")

	q.DismissOldest()
	toasts := q.Active()
	if len(toasts) != 1 || toasts[0].Message != "new" {
		t.Fatalf("toasts = %+v", toasts)
	}
}

func TestMaxVisibleBound(t *testing.T) {
	q, _ := newClockedQueue()
	for _, msg := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		q.Info(msg)
	}
	toasts := q.Active()
	if len(toasts) != maxVisible {
		t.Fatalf("len = %d, want %d", len(toasts), maxVisible)
	}
	if toasts[0].Message != "g" {
		t.Fatalf("newest = %s, want g", toasts[0].Message)
	}
}

func TestRemainingFloorsAtZero(t *testing.T) {
	q, clock := newClockedQueue()
	q.Info("m")
	toast := q.Active()[0]

	clock.advance(time.Second)
	if got := toast.Remaining(clock.now()); got != InfoDuration-time.Second {
		t.Fatalf("remaining = %v", got)
	}
	clock.advance(time.Minute)
	if got := toast.Remaining(clock.now()); got != 0 {
		t.Fatalf("remaining = %v, want 0", got)
	}
}
