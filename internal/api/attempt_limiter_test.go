package api

import (
	"testing"
	"time"
)

func TestAttemptLimiterWindowAndReset(t *testing.T) {
	t.Parallel()

	limiter := newAttemptLimiter()
	key := "127.0.0.1"
	window := time.Hour
	now := time.Now().UTC()

	limiter.addFailure(key, now.Add(-2*time.Hour), window)
	if limiter.tooManyRecent(key, now, 1, window) {
		t.Fatal("expected old attempt to be pruned from active window")
	}

	limiter.addFailure(key, now.Add(-30*time.Minute), window)
	if !limiter.tooManyRecent(key, now, 1, window) {
		t.Fatal("expected one recent attempt to hit limit 1")
	}

	limiter.reset(key)
	if limiter.tooManyRecent(key, now, 1, window) {
		t.Fatal("expected no attempts after reset")
	}
}

func TestAttemptLimiterKeepsKeysApart(t *testing.T) {
	t.Parallel()

	limiter := newAttemptLimiter()
	now := time.Now().UTC()
	for attempt := 0; attempt < loginAttemptsLimit; attempt++ {
		limiter.addFailure("10.0.0.1", now, loginAttemptsWindow)
	}

	if !limiter.tooManyRecent("10.0.0.1", now, loginAttemptsLimit, loginAttemptsWindow) {
		t.Fatal("expected noisy client to be throttled")
	}
	if limiter.tooManyRecent("10.0.0.2", now, loginAttemptsLimit, loginAttemptsWindow) {
		t.Fatal("expected other clients to stay unaffected")
	}
	if limiter.tooManyRecent("10.0.0.1", now.Add(loginAttemptsWindow+time.Second), loginAttemptsLimit, loginAttemptsWindow) {
		t.Fatal("expected throttle to lift once the window passes")
	}
}
