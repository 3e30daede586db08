package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fixedClock(l *Limiter, t *time.Time) {
	l.now = func() time.Time { return *t }
}

func TestNilAndUnlimitedAllow(t *testing.T) {
	var nilLimiter *Limiter
	if err := nilLimiter.Wait(context.Background()); err != nil {
		t.Fatalf("nil limiter should allow, got: %v", err)
	}
	l := New(Limits{})
	for i := 0; i < 100; i++ {
		if err := l.Wait(context.Background()); err != nil {
			t.Fatalf("unlimited limiter should always allow, got: %v", err)
		}
	}
}

func TestPerMinuteBurstThenWait(t *testing.T) {
	const perMinute = 5
	l := New(Limits{PerMinute: perMinute})

	for i := 0; i < perMinute; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		err := l.Wait(ctx)
		cancel()
		if err != nil {
			t.Fatalf("call %d should be allowed, got: %v", i+1, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := l.Wait(ctx); err == nil {
		t.Fatal("call beyond burst should not be immediately allowed")
	}
}

func TestPerHourWindow(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 15, 0, 0, time.UTC)
	l := New(Limits{PerHour: 3})
	fixedClock(l, &now)

	for i := 0; i < 3; i++ {
		if err := l.Wait(context.Background()); err != nil {
			t.Fatalf("call %d should be allowed, got: %v", i+1, err)
		}
	}
	err := l.Wait(context.Background())
	var qe *QuotaError
	if !errors.As(err, &qe) {
		t.Fatalf("expected QuotaError, got: %T %v", err, err)
	}
	if qe.Window != "hour" || qe.Limit != 3 || qe.RetryAfter != 45*time.Minute {
		t.Fatalf("unexpected quota error: %+v", qe)
	}
	if hour, day := l.Remaining(); hour != 0 || day != -1 {
		t.Fatalf("unexpected remaining: %d %d", hour, day)
	}

	now = now.Add(time.Hour)
	if err := l.Wait(context.Background()); err != nil {
		t.Fatalf("new hour should reset the window, got: %v", err)
	}
}

func TestPerDayWindow(t *testing.T) {
	now := time.Date(2024, 5, 1, 23, 0, 0, 0, time.UTC)
	l := New(Limits{PerDay: 2, PerHour: 10})
	fixedClock(l, &now)

	for i := 0; i < 2; i++ {
		if err := l.Wait(context.Background()); err != nil {
			t.Fatalf("call %d should be allowed, got: %v", i+1, err)
		}
	}
	var qe *QuotaError
	if err := l.Wait(context.Background()); !errors.As(err, &qe) || qe.Window != "day" {
		t.Fatalf("expected daily quota error, got: %v", err)
	}
	if hour, day := l.Remaining(); hour != 8 || day != 0 {
		t.Fatalf("unexpected remaining: %d %d", hour, day)
	}

	now = now.Add(2 * time.Hour)
	if err := l.Wait(context.Background()); err != nil {
		t.Fatalf("new day should reset the window, got: %v", err)
	}
}

func TestCancelledWaitRefundsWindow(t *testing.T) {
	l := New(Limits{PerMinute: 1, PerHour: 5})
	if err := l.Wait(context.Background()); err != nil {
		t.Fatalf("first call should be allowed, got: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.Wait(ctx); err == nil {
		t.Fatal("cancelled wait should fail")
	}
	if hour, _ := l.Remaining(); hour != 4 {
		t.Fatalf("cancelled call should not consume the hourly window, remaining %d", hour)
	}
}
