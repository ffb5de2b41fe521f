// Package ratelimit implements per-client fixed-window request limits.
//
// Each client has one counter per window granularity, keyed by the index of
// the window the request falls in (floor(now / size)). A request is admitted
// only when every window is below its limit, and admission increments every
// counter as one step.
package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// Retention is how long a window counter is kept after its window started.
const Retention = 24 * time.Hour

// Window is one fixed-window limit.
type Window struct {
	Name  string
	Size  time.Duration
	Limit int
}

// Index returns the window index that t falls in.
func (w Window) Index(t time.Time) int64 {
	return t.UnixNano() / int64(w.Size)
}

// Start returns the start of the window with the given index.
func (w Window) Start(index int64) time.Time {
	return time.Unix(0, index*int64(w.Size)).UTC()
}

// DefaultWindows returns the minute and day windows, in priority order.
func DefaultWindows(perMinute, perDay int) []Window {
	return []Window{
		{Name: "minute", Size: time.Minute, Limit: perMinute},
		{Name: "day", Size: 24 * time.Hour, Limit: perDay},
	}
}

// Store holds window counters. Take must check and increment atomically:
// it returns the position of the first window (in order) whose counter has
// reached its limit without touching any counter, or -1 after incrementing
// every window's counter.
type Store interface {
	Take(ctx context.Context, clientID string, now time.Time, windows []Window) (int, error)
}

// Decision is the result of an admission check.
type Decision struct {
	Allowed bool
	// ResetTime is the start of the next window of the limit that rejected
	// the request. Zero when allowed.
	ResetTime time.Time
	// Window names the limit that rejected the request.
	Window string
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

// Limiter admits or rejects requests per client.
type Limiter struct {
	store   Store
	windows []Window
	now     func() time.Time
}

// NewLimiter creates a Limiter over the given store. Windows are checked in
// order; the first exceeded one determines the reset time.
func NewLimiter(store Store, windows []Window, opts ...Option) *Limiter {
	l := &Limiter{
		store:   store,
		windows: windows,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Admit checks and records one request for clientID.
func (l *Limiter) Admit(ctx context.Context, clientID string) (Decision, error) {
	now := l.now()

	idx, err := l.store.Take(ctx, clientID, now, l.windows)
	if err != nil {
		return Decision{}, fmt.Errorf("take rate limit slot: %w", err)
	}
	if idx < 0 {
		return Decision{Allowed: true}, nil
	}
	if idx >= len(l.windows) {
		return Decision{}, fmt.Errorf("store returned unknown window %d", idx)
	}

	w := l.windows[idx]
	return Decision{
		Allowed:   false,
		ResetTime: w.Start(w.Index(now) + 1),
		Window:    w.Name,
	}, nil
}
