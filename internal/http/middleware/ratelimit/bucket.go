package ratelimit

import (
	"sync"
	"time"
)

// Config stores Throttle settings.
type Config struct {
	Rate    float64       // actions per second
	Burst   int           // actions allowed back to back
	TTL     time.Duration // forget idle callers (0 keeps them)
	MaxKeys int           // callers tracked at once (0 is unbounded)
}

// Throttle is a per-key token bucket. When MaxKeys callers are tracked,
// the least recently seen one is forgotten to make room.
type Throttle struct {
	cfg   Config
	clock Clock

	mu      sync.Mutex
	buckets map[string]*bucket
	swept   time.Time
}

type bucket struct {
	tokens float64
	last   time.Time
}

// NewThrottle creates a throttle; a nil clock means the wall clock.
func NewThrottle(clock Clock, cfg Config) *Throttle {
	if clock == nil {
		clock = RealClock{}
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.MaxKeys < 0 {
		cfg.MaxKeys = 0
	}
	return &Throttle{cfg: cfg, clock: clock, buckets: make(map[string]*bucket)}
}

// Allow takes one token from key's bucket.
func (t *Throttle) Allow(key string) bool {
	now := t.clock.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	t.sweepLocked(now)

	b, ok := t.buckets[key]
	if !ok {
		if t.cfg.MaxKeys > 0 && len(t.buckets) >= t.cfg.MaxKeys {
			t.evictOldestLocked()
		}
		b = &bucket{tokens: float64(t.cfg.Burst), last: now}
		t.buckets[key] = b
	}

	if dt := now.Sub(b.last); dt > 0 {
		b.tokens = min(float64(t.cfg.Burst), b.tokens+dt.Seconds()*t.cfg.Rate)
		b.last = now
	}
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// Len returns how many callers are tracked.
func (t *Throttle) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.buckets)
}

func (t *Throttle) sweepLocked(now time.Time) {
	if t.cfg.TTL <= 0 {
		return
	}
	if !t.swept.IsZero() && now.Sub(t.swept) < t.cfg.TTL/2 {
		return
	}
	t.swept = now
	for k, b := range t.buckets {
		if now.Sub(b.last) > t.cfg.TTL {
			delete(t.buckets, k)
		}
	}
}

func (t *Throttle) evictOldestLocked() {
	var oldestKey string
	var oldest time.Time
	for k, b := range t.buckets {
		if oldestKey == "" || b.last.Before(oldest) {
			oldestKey, oldest = k, b.last
		}
	}
	delete(t.buckets, oldestKey)
}
