// Package quota enforces minimum spacing and daily caps on outbound LLM
// calls. Limiters live in an explicit registry owned by the process
// lifecycle and passed to callers, instead of ambient global state, so
// tests can inject a deterministic clock.
package quota

import (
	"context"
	"sync"
	"time"
)

// Registry hands out one limiter per opaque name. All limiters created
// by a registry share its interval/daily settings and clock.
type Registry struct {
	mu       sync.Mutex
	limiters map[string]*Limiter

	interval   time.Duration
	dailyLimit int
	now        func() time.Time
}

// NewRegistry builds a registry from per-minute and per-day caps. Zero
// or negative values disable the corresponding limit.
func NewRegistry(requestsPerMinute, requestsPerDay int) *Registry {
	var interval time.Duration
	if requestsPerMinute > 0 {
		interval = time.Minute / time.Duration(requestsPerMinute)
	}
	if requestsPerDay < 0 {
		requestsPerDay = 0
	}
	return &Registry{
		limiters:   make(map[string]*Limiter),
		interval:   interval,
		dailyLimit: requestsPerDay,
		now:        time.Now,
	}
}

// WithClock replaces the registry clock. Test hook.
func (r *Registry) WithClock(now func() time.Time) *Registry {
	r.now = now
	return r
}

// Limiter returns the named limiter, creating it on first use.
func (r *Registry) Limiter(name string) *Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.limiters[name]; ok {
		return l
	}
	l := &Limiter{
		interval:   r.interval,
		dailyLimit: r.dailyLimit,
		now:        r.now,
	}
	r.limiters[name] = l
	return l
}

// WaitAndReserve applies the named limiter before an outbound call.
func (r *Registry) WaitAndReserve(ctx context.Context, name string) (bool, error) {
	return r.Limiter(name).WaitAndReserve(ctx)
}

// Limiter tracks the last call time and the daily counter for a single
// name. In-memory only: counters reset when the process restarts. Not
// designed for multi-writer concurrency beyond its own mutex, which is
// acceptable at this request volume.
type Limiter struct {
	mu sync.Mutex

	dailyLimit int
	usedToday  int
	dayKey     string

	interval time.Duration
	lastCall time.Time
	now      func() time.Time
}

// WaitAndReserve blocks until the minimum interval since the previous
// call has passed, then reserves a slot.
//   - Returns (false, nil) when the daily cap is exhausted: the caller
//     must skip the LLM call and use its fallback.
//   - Returns (false, err) on context cancellation.
func (l *Limiter) WaitAndReserve(ctx context.Context) (bool, error) {
	for {
		l.mu.Lock()

		now := l.now().UTC()
		todayKey := now.Format("2006-01-02")
		if l.dayKey != todayKey {
			l.dayKey = todayKey
			l.usedToday = 0
		}

		if l.dailyLimit > 0 && l.usedToday >= l.dailyLimit {
			l.mu.Unlock()
			return false, nil
		}

		var delay time.Duration
		if l.interval > 0 && !l.lastCall.IsZero() {
			delay = l.lastCall.Add(l.interval).Sub(now)
		}

		if delay <= 0 {
			l.usedToday++
			l.lastCall = now
			l.mu.Unlock()
			return true, nil
		}

		l.mu.Unlock()
		select {
		case <-time.After(delay):
			// loop and re-evaluate
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
}
