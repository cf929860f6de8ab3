// Package ratelimit implements the fixed-window request limiter that guards
// the HTTP admission pipeline.
//
// Counters are tracked per client identity in an in-memory store. A window
// entry resets lazily when it is next touched after the window has elapsed;
// there is no background eviction pass.
package ratelimit

import (
	"net"
	"strings"
	"sync"
	"time"
)

// Decision is the outcome of a single admission check.
type Decision struct {
	// Allowed reports whether the request may proceed.
	Allowed bool

	// Limit is the configured cap of admitted requests per window.
	Limit int

	// Remaining is the number of requests left in the current window.
	Remaining int

	// ResetAt is the instant the current window ends.
	ResetAt time.Time
}

type entry struct {
	count       int
	windowStart time.Time
}

// Limiter caps requests per client identity over a fixed time window.
// The zero value is not usable; construct with NewLimiter.
type Limiter struct {
	window time.Duration
	max    int
	exempt map[string]struct{}
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]*entry
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock replaces the limiter's time source. Used by tests to drive the
// window with a fake clock.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

// WithExemptPath registers a path that bypasses counting entirely.
// Requests to an exempt path are always admitted and never decrement the
// caller's budget.
func WithExemptPath(path string) Option {
	return func(l *Limiter) {
		l.exempt[path] = struct{}{}
	}
}

// NewLimiter constructs a Limiter admitting max requests per client identity
// per window.
func NewLimiter(window time.Duration, max int, opts ...Option) *Limiter {
	l := &Limiter{
		window:  window,
		max:     max,
		exempt:  make(map[string]struct{}),
		now:     time.Now,
		entries: make(map[string]*entry),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Admit records one request from the given client identity against the
// current window and reports whether it is allowed.
//
// Exempt paths are admitted unconditionally without touching the counter.
// A rejected request still records the attempt; it does not open a new
// window or alter the reset instant.
func (l *Limiter) Admit(key, path string) Decision {
	now := l.now()

	if _, ok := l.exempt[path]; ok {
		return Decision{
			Allowed:   true,
			Limit:     l.max,
			Remaining: l.max,
			ResetAt:   now.Add(l.window),
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok || !now.Before(e.windowStart.Add(l.window)) {
		e = &entry{windowStart: now}
		l.entries[key] = e
	}

	e.count++

	remaining := l.max - e.count
	if remaining < 0 {
		remaining = 0
	}

	return Decision{
		Allowed:   e.count <= l.max,
		Limit:     l.max,
		Remaining: remaining,
		ResetAt:   e.windowStart.Add(l.window),
	}
}

// ClientKey resolves the client identity for rate limiting, honoring exactly
// one trusted reverse-proxy hop.
//
// If forwardedFor (the X-Forwarded-For header value) is non-empty, the
// rightmost entry is used: it was appended by the nearest proxy, the only
// hop we trust, while earlier entries are client-controlled and spoofable.
// Otherwise the host portion of remoteAddr identifies the client.
func ClientKey(remoteAddr, forwardedFor string) string {
	if forwardedFor != "" {
		parts := strings.Split(forwardedFor, ",")
		if ip := strings.TrimSpace(parts[len(parts)-1]); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}

	return host
}
