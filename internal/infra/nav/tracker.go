// Package nav provides the process-local stand-in for browser navigation:
// it remembers which back-office route the operator is on and carries out
// the redirect-to-login reaction on authentication failures.
package nav

import (
	"log/slog"
	"sync"
)

// Tracker is a concurrency-safe virtual location register.
type Tracker struct {
	mu      sync.Mutex
	current string
	logger  *slog.Logger
}

// NewTracker is the constructor for Tracker. The initial location is the
// site root, outside the admin section.
func NewTracker(logger *slog.Logger) *Tracker {
	return &Tracker{current: "/", logger: logger}
}

// Location returns the current virtual route.
func (t *Tracker) Location() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.current
}

// Navigate moves to the given route.
func (t *Tracker) Navigate(route string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.logger != nil && route != t.current {
		t.logger.Info("navigating", slog.String("from", t.current), slog.String("to", route))
	}
	t.current = route
}
