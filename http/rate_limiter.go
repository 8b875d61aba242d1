package http

import (
	"sync"
	"time"
)

type clientBucket struct {
	tokens     int
	lastRefill time.Time
}

// RateLimiter is a per-client token bucket. A background loop sweeps buckets
// that have sat idle past the eviction threshold so one-off clients do not
// accumulate forever.
type RateLimiter struct {
	mu           sync.Mutex
	capacity     int
	refillDur    time.Duration
	idleEviction time.Duration
	clients      map[string]*clientBucket
	stopCleanup  chan struct{}
}

func NewRateLimiter(
	capacity int,
	refillDur time.Duration,
	sweepInterval time.Duration,
	idleEviction time.Duration,
) *RateLimiter {
	rl := &RateLimiter{
		capacity:     capacity,
		refillDur:    refillDur,
		idleEviction: idleEviction,
		clients:      make(map[string]*clientBucket),
		stopCleanup:  make(chan struct{}),
	}
	go rl.cleanupLoop(sweepInterval)
	return rl
}

func (r *RateLimiter) cleanupLoop(sweepInterval time.Duration) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for ip, bucket := range r.clients {
		if now.Sub(bucket.lastRefill) > r.idleEviction {
			delete(r.clients, ip)
		}
	}
}

func (r *RateLimiter) Stop() {
	close(r.stopCleanup)
}

func (r *RateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	bucket, exists := r.clients[ip]

	if !exists {
		r.clients[ip] = &clientBucket{
			tokens:     r.capacity - 1,
			lastRefill: now,
		}
		return true
	}

	if now.Sub(bucket.lastRefill) >= r.refillDur {
		bucket.tokens = r.capacity
		bucket.lastRefill = now
	}

	if bucket.tokens <= 0 {
		return false
	}

	bucket.tokens--
	return true
}
