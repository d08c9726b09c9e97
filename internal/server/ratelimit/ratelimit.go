// Package ratelimit throttles analyzer API clients with per-endpoint token
// buckets. Document-processing routes carry tighter tiers than catalog
// reads, and the health check is never throttled.
package ratelimit

import (
	"math"
	"sync"
	"time"
)

// bucketTTL is how long an idle client bucket survives before the janitor
// removes it.
const bucketTTL = time.Hour

// Info describes the limiter's decision for one request. The HTTP layer
// uses it to fill X-RateLimit headers and 429 bodies.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// bucket is a token bucket for one client and endpoint pair. Tokens refill
// continuously at rate per second up to capacity.
type bucket struct {
	mu       sync.Mutex
	capacity float64
	rate     float64
	tokens   float64
	updated  time.Time
	lastSeen time.Time
}

func newBucket(capacity int, rate float64) *bucket {
	now := time.Now()
	return &bucket{
		capacity: float64(capacity),
		rate:     rate,
		tokens:   float64(capacity),
		updated:  now,
		lastSeen: now,
	}
}

// refill credits tokens for the time elapsed since the last update.
// Callers must hold mu.
func (b *bucket) refill(now time.Time) {
	b.tokens = math.Min(b.capacity, b.tokens+now.Sub(b.updated).Seconds()*b.rate)
	b.updated = now
}

// take consumes one token if available and reports the bucket state in the
// same locked pass: remaining whole tokens and when the bucket is full again.
func (b *bucket) take() (ok bool, remaining int, reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.refill(now)
	b.lastSeen = now

	if b.tokens >= 1 {
		b.tokens--
		ok = true
	}

	remaining = int(b.tokens)
	reset = now
	if b.tokens < b.capacity {
		wait := (b.capacity - b.tokens) / b.rate
		reset = now.Add(time.Duration(wait * float64(time.Second)))
	}
	return ok, remaining, reset
}

// idle reports whether the bucket has not been used since the cutoff.
func (b *bucket) idle(cutoff time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastSeen.Before(cutoff)
}

// Limiter tracks one token bucket per client and endpoint.
type Limiter struct {
	mu      sync.RWMutex
	buckets map[string]*bucket
	config  *Config
	stop    chan struct{}
	once    sync.Once
}

// NewLimiter creates a limiter for the given configuration. A nil config
// enables the limiter with the global defaults and no endpoint tiers.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
		}
	}

	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
		stop:    make(chan struct{}),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		go l.janitor(config.CleanupInterval)
	}
	return l
}

// Allow decides whether a request from clientID may proceed, based on the
// endpoint tier for path and method or the global default limit.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	tier := l.config.endpointFor(path, method)
	if tier == nil {
		tier = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
		}
	}
	if tier.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	b := l.bucket(clientID+"|"+method+" "+path, tier)
	ok, remaining, reset := b.take()

	info := Info{
		Allowed:   ok,
		Limit:     tier.Limit,
		Remaining: remaining,
		ResetTime: reset,
	}
	if !ok {
		if wait := time.Until(reset); wait > 0 {
			info.RetryAfter = wait
		}
	}
	return ok, info
}

// bucket returns the bucket for key, creating it from the tier's burst and
// refill rate on first use.
func (l *Limiter) bucket(key string, tier *EndpointConfig) *bucket {
	l.mu.RLock()
	b, ok := l.buckets[key]
	l.mu.RUnlock()
	if ok {
		return b
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if b, ok := l.buckets[key]; ok {
		return b
	}

	burst := tier.Burst
	if burst <= 0 {
		burst = tier.Limit
	}
	b = newBucket(burst, float64(tier.Limit)/tier.Window.Seconds())
	l.buckets[key] = b
	return b
}

// janitor periodically drops buckets that have been idle longer than
// bucketTTL, bounding memory across churning client populations.
func (l *Limiter) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.sweep(time.Now().Add(-bucketTTL))
		case <-l.stop:
			return
		}
	}
}

// sweep removes buckets not used since before cutoff.
func (l *Limiter) sweep(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if b.idle(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Stop terminates the janitor goroutine. Safe to call more than once.
func (l *Limiter) Stop() {
	l.once.Do(func() { close(l.stop) })
}
