// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package notify implements non-blocking toast notifications.
//
// Toasts appear in a corner and auto-dismiss on a per-kind schedule,
// letting the user keep working while the message is on screen. The
// rendering lives in the ui layer; this package is the queue.
package notify

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// =============================================================================
// TOAST TYPES
// =============================================================================

// Kind classifies a toast notification.
type Kind int

const (
	// KindInfo is an informational toast.
	KindInfo Kind = iota
	// KindSuccess confirms a completed action.
	KindSuccess
	// KindError reports a failed action.
	KindError
	// KindWarning flags something that worked but needs attention.
	KindWarning
)

// Auto-dismiss durations per kind. Errors and warnings stay longer to
// be read.
const (
	InfoDuration    = 4 * time.Second
	SuccessDuration = 4 * time.Second
	ErrorDuration   = 8 * time.Second
	WarningDuration = 6 * time.Second
)

// TickInterval is how often the UI should prune expired toasts.
const TickInterval = 100 * time.Millisecond

// maxVisible bounds the stack; older toasts drop off first.
const maxVisible = 5

// Toast is a single notification.
type Toast struct {
	ID          string
	Message     string
	Kind        Kind
	CreatedAt   time.Time
	Duration    time.Duration
	Dismissible bool
}

// Expired reports whether the toast has outlived its duration.
func (t *Toast) Expired(now time.Time) bool {
	return now.Sub(t.CreatedAt) >= t.Duration
}

// Remaining returns the time left before auto-dismiss, floored at zero.
func (t *Toast) Remaining(now time.Time) time.Duration {
	left := t.Duration - now.Sub(t.CreatedAt)
	if left < 0 {
		return 0
	}
	return left
}

func durationFor(kind Kind) time.Duration {
	switch kind {
	case KindError:
		return ErrorDuration
	case KindWarning:
		return WarningDuration
	case KindSuccess:
		return SuccessDuration
	default:
		return InfoDuration
	}
}

// =============================================================================
// QUEUE
// =============================================================================

// Queue holds the active toasts, newest first.
type Queue struct {
	mu     sync.Mutex
	toasts []Toast
	now    func() time.Time
}

// NewQueue creates an empty toast queue.
func NewQueue() *Queue {
	return &Queue{now: time.Now}
}

// Push adds a toast and returns its id. Pushing the same message while
// an identical toast is still visible restarts that toast instead of
// stacking a duplicate.
func (q *Queue) Push(kind Kind, message string) string {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	for i := range q.toasts {
		if q.toasts[i].Kind == kind && q.toasts[i].Message == message {
			q.toasts[i].CreatedAt = now
			return q.toasts[i].ID
		}
	}

	toast := Toast{
		ID:          uuid.NewString(),
		Message:     message,
		Kind:        kind,
		CreatedAt:   now,
		Duration:    durationFor(kind),
		Dismissible: true,
	}
	q.toasts = append([]Toast{toast}, q.toasts...)
	if len(q.toasts) > maxVisible {
		q.toasts = q.toasts[:maxVisible]
	}
	return toast.ID
}

// Info pushes an informational toast.
func (q *Queue) Info(message string) string { return q.Push(KindInfo, message) }

// Success pushes a success toast.
func (q *Queue) Success(message string) string { return q.Push(KindSuccess, message) }

// Error pushes an error toast.
func (q *Queue) Error(message string) string { return q.Push(KindError, message) }

// Warning pushes a warning toast.
func (q *Queue) Warning(message string) string { return q.Push(KindWarning, message) }

// Dismiss removes a toast by id. Unknown ids are ignored.
func (q *Queue) Dismiss(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i := range q.toasts {
		if q.toasts[i].ID == id {
			q.toasts = append(q.toasts[:i], q.toasts[i+1:]...)
			return
		}
	}
}

// DismissOldest removes the oldest visible toast, the one nearest expiry.
func (q *Queue) DismissOldest() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.toasts) > 0 {
		q.toasts = q.toasts[:len(q.toasts)-1]
	}
}

// Prune drops expired toasts and returns the survivors, newest first.
func (q *Queue) Prune() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	active := q.toasts[:0]
	for _, t := range q.toasts {
		if !t.Expired(now) {
			active = append(active, t)
		}
	}
	q.toasts = active
	return q.snapshot()
}

// Active returns a copy of the current toasts, newest first.
func (q *Queue) Active() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.snapshot()
}

// Empty reports whether no toasts are visible.
func (q *Queue) Empty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.toasts) == 0
}

// Clear removes every toast.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.toasts = nil
}

// snapshot copies the slice. Caller must hold q.mu.
func (q *Queue) snapshot() []Toast {
	out := make([]Toast, len(q.toasts))
	copy(out, q.toasts)
	return out
}

// =============================================================================
// BUBBLETEA PLUMBING
// =============================================================================

// TickMsg is delivered on the prune interval while toasts are visible.
type TickMsg struct {
	Time time.Time
}

// TickCmd schedules the next prune tick.
func TickCmd() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}
