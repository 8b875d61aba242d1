package http

import (
	"testing"
	"time"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute, 30*time.Minute, time.Hour)
	defer rl.Stop()

	if !rl.Allow("10.0.0.1") {
		t.Fatal("expected first request to pass")
	}
	if !rl.Allow("10.0.0.1") {
		t.Fatal("expected second request to pass")
	}
	if rl.Allow("10.0.0.1") {
		t.Error("expected exhausted bucket to deny")
	}
	if !rl.Allow("10.0.0.2") {
		t.Error("expected fresh client to pass")
	}
}

func TestRateLimiter_RefillAfterWindow(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute, 30*time.Minute, time.Hour)
	defer rl.Stop()

	if !rl.Allow("10.0.0.1") {
		t.Fatal("expected first request to pass")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("expected exhausted bucket to deny")
	}

	rl.mu.Lock()
	rl.clients["10.0.0.1"].lastRefill = time.Now().Add(-2 * time.Minute)
	rl.mu.Unlock()

	if !rl.Allow("10.0.0.1") {
		t.Error("expected refilled bucket to allow again")
	}
}

func TestRateLimiter_EvictsIdleBuckets(t *testing.T) {
	rl := NewRateLimiter(5, time.Minute, 30*time.Minute, time.Hour)
	defer rl.Stop()

	rl.Allow("10.0.0.1")

	rl.mu.Lock()
	rl.clients["10.0.0.1"].lastRefill = time.Now().Add(-2 * time.Hour)
	rl.mu.Unlock()

	rl.cleanup()

	rl.mu.Lock()
	_, ok := rl.clients["10.0.0.1"]
	rl.mu.Unlock()

	if ok {
		t.Error("expected bucket idle past the eviction threshold to be swept")
	}
}
