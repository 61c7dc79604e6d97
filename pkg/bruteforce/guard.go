package bruteforce

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// window tracks failures for a single source inside one sliding window.
type window struct {
	count int
	start time.Time
}

// Guard is a sliding-window failure counter keyed by hashed source address.
// The zero value is unusable; construct with New.
type Guard struct {
	mu      sync.Mutex
	windows map[string]*window

	maxFailures int
	windowSize  time.Duration
	now         func() time.Time

	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	stopOnce        sync.Once
}

// Option configures a Guard.
type Option func(*Guard)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(g *Guard) {
		if now != nil {
			g.now = now
		}
	}
}

// WithCleanupInterval sets how often expired windows are swept.
// Set to 0 to disable the background sweep; expired windows are still
// deleted lazily on access.
func WithCleanupInterval(interval time.Duration) Option {
	return func(g *Guard) {
		g.cleanupInterval = interval
	}
}

// New creates a Guard that limits a source after maxFailures failures
// within windowSize.
func New(cfg Config, opts ...Option) *Guard {
	g := &Guard{
		windows:         make(map[string]*window),
		maxFailures:     cfg.MaxFailures,
		windowSize:      cfg.Window,
		now:             time.Now,
		cleanupInterval: cfg.CleanupInterval,
		stopCleanup:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.cleanupInterval > 0 {
		go g.cleanupLoop()
	}

	return g
}

// HashSource derives the guard key from a raw source address. The raw
// address is never stored.
func HashSource(addr string) string {
	sum := sha256.Sum256([]byte(addr))
	return hex.EncodeToString(sum[:])
}

// RecordFailure counts one failed attempt for the key. An absent or expired
// window starts fresh with count 1; a live window increments.
func (g *Guard) RecordFailure(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	w, ok := g.windows[key]
	if !ok || g.expired(w, now) {
		g.windows[key] = &window{count: 1, start: now}
		return
	}
	w.count++
}

// IsLimited reports whether the key has reached the failure limit inside a
// live window. Expired windows are deleted on sight and never limit.
func (g *Guard) IsLimited(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	w, ok := g.windows[key]
	if !ok {
		return false
	}
	if g.expired(w, g.now()) {
		delete(g.windows, key)
		return false
	}
	return w.count >= g.maxFailures
}

// Clear removes the window for the key immediately. Called on successful
// authentication so a prior failure streak cannot outlive the success.
func (g *Guard) Clear(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.windows, key)
}

func (g *Guard) expired(w *window, now time.Time) bool {
	return now.Sub(w.start) >= g.windowSize
}

func (g *Guard) cleanupLoop() {
	ticker := time.NewTicker(g.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			g.removeExpired()
		case <-g.stopCleanup:
			return
		}
	}
}

func (g *Guard) removeExpired() {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	for key, w := range g.windows {
		if g.expired(w, now) {
			delete(g.windows, key)
		}
	}
}

// Close stops the background sweep. Safe to call multiple times.
func (g *Guard) Close() {
	g.stopOnce.Do(func() {
		close(g.stopCleanup)
	})
}
