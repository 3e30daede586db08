// Package ratelimit enforces per-API call quotas: a per-minute token bucket
// that callers wait on, and per-hour and per-day fixed windows that reject
// outright once spent.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limits configures a Limiter. Zero means unlimited for that window.
type Limits struct {
	PerMinute int
	PerHour   int
	PerDay    int
}

func (l Limits) unlimited() bool {
	return l.PerMinute == 0 && l.PerHour == 0 && l.PerDay == 0
}

// Limiter applies Limits to a stream of calls. A nil Limiter allows
// everything.
type Limiter struct {
	limits Limits
	bucket *rate.Limiter
	now    func() time.Time

	mu        sync.Mutex
	hourCount int
	hourStart time.Time
	dayCount  int
	dayStart  time.Time
}

func New(limits Limits) *Limiter {
	l := &Limiter{limits: limits, now: time.Now}
	if limits.PerMinute > 0 {
		l.bucket = rate.NewLimiter(rate.Every(time.Minute/time.Duration(limits.PerMinute)), limits.PerMinute)
	}
	return l
}

// QuotaError is returned when the hourly or daily quota is spent.
type QuotaError struct {
	Window     string // "hour" or "day"
	Limit      int
	RetryAfter time.Duration
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("call quota exhausted (%d per %s), retry after %s", e.Limit, e.Window, e.RetryAfter.Truncate(time.Second))
}

// Wait reserves one call. It blocks on the per-minute bucket and fails fast
// with *QuotaError when a longer window is spent.
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil || l.limits.unlimited() {
		return nil
	}
	if err := l.take(); err != nil {
		return err
	}
	if l.bucket != nil {
		if err := l.bucket.Wait(ctx); err != nil {
			l.refund()
			return err
		}
	}
	return nil
}

func (l *Limiter) take() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if l.limits.PerDay > 0 {
		if start := startOfDay(now); !start.Equal(l.dayStart) {
			l.dayStart, l.dayCount = start, 0
		}
		if l.dayCount >= l.limits.PerDay {
			return &QuotaError{Window: "day", Limit: l.limits.PerDay, RetryAfter: l.dayStart.Add(24 * time.Hour).Sub(now)}
		}
	}
	if l.limits.PerHour > 0 {
		if start := now.Truncate(time.Hour); !start.Equal(l.hourStart) {
			l.hourStart, l.hourCount = start, 0
		}
		if l.hourCount >= l.limits.PerHour {
			return &QuotaError{Window: "hour", Limit: l.limits.PerHour, RetryAfter: l.hourStart.Add(time.Hour).Sub(now)}
		}
	}
	if l.limits.PerDay > 0 {
		l.dayCount++
	}
	if l.limits.PerHour > 0 {
		l.hourCount++
	}
	return nil
}

// refund gives back a window slot taken by a call that never went out.
func (l *Limiter) refund() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.limits.PerDay > 0 && l.dayCount > 0 {
		l.dayCount--
	}
	if l.limits.PerHour > 0 && l.hourCount > 0 {
		l.hourCount--
	}
}

// Remaining reports how many calls are left in the hourly and daily windows.
// -1 means unlimited.
func (l *Limiter) Remaining() (hour, day int) {
	if l == nil {
		return -1, -1
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	hour, day = -1, -1
	if l.limits.PerHour > 0 {
		hour = l.limits.PerHour
		if now.Truncate(time.Hour).Equal(l.hourStart) {
			hour -= l.hourCount
		}
	}
	if l.limits.PerDay > 0 {
		day = l.limits.PerDay
		if startOfDay(now).Equal(l.dayStart) {
			day -= l.dayCount
		}
	}
	return hour, day
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
