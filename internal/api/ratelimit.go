package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/brightofhouse/site/internal/apperror"
	"github.com/brightofhouse/site/internal/logger"
	"github.com/brightofhouse/site/internal/metrics"
	"github.com/redis/go-redis/v9"
)

var errRateLimited = apperror.New("rate_limit_exceeded", "Too many requests", http.StatusTooManyRequests)

// Limiter decides whether one more request from key is allowed.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

// RateLimiter is an in-memory token bucket per key. Buckets refill at rate
// tokens per minute up to burst.
type RateLimiter struct {
	rate    int
	burst   int
	buckets map[string]*bucket
	mu      sync.Mutex
	now     func() time.Time
	done    chan struct{}
	once    sync.Once
}

type bucket struct {
	tokens   float64
	lastSeen time.Time
}

func NewRateLimiter(rate, burst int) *RateLimiter {
	rl := &RateLimiter{
		rate:    rate,
		burst:   burst,
		buckets: make(map[string]*bucket),
		now:     time.Now,
		done:    make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.done:
			return
		}
	}
}

// cleanup drops buckets idle for ten minutes; they would be full again.
func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-10 * time.Minute)
	for key, b := range rl.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(rl.buckets, key)
		}
	}
}

func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.done) })
}

func (rl *RateLimiter) Allow(_ context.Context, key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if rl.burst <= 0 {
		return false
	}

	now := rl.now()
	b, exists := rl.buckets[key]
	if !exists {
		rl.buckets[key] = &bucket{tokens: float64(rl.burst - 1), lastSeen: now}
		return true
	}

	b.tokens += now.Sub(b.lastSeen).Minutes() * float64(rl.rate)
	if b.tokens > float64(rl.burst) {
		b.tokens = float64(rl.burst)
	}
	b.lastSeen = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// RedisRateLimiter is a sliding one-minute window shared by every replica.
type RedisRateLimiter struct {
	client *redis.Client
	rate   int
	window time.Duration
	prefix string
}

func NewRedisRateLimiter(client *redis.Client, rate int) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		rate:   rate,
		window: time.Minute,
		prefix: "site:ratelimit:",
	}
}

// Allow fails open when redis errors so an outage never locks out the admin.
func (rl *RedisRateLimiter) Allow(ctx context.Context, key string) bool {
	now := time.Now().UnixNano()
	windowStart := now - int64(rl.window)
	redisKey := rl.prefix + key

	pipe := rl.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStart))
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now), Member: now})
	countCmd := pipe.ZCard(ctx, redisKey)
	pipe.Expire(ctx, redisKey, rl.window)

	if _, err := pipe.Exec(ctx); err != nil {
		logger.FromContext(ctx).Warn("redis rate limit failed, allowing request", "error", err)
		return true
	}
	return countCmd.Val() <= int64(rl.rate)
}

// HybridRateLimiter prefers redis and falls back to memory when it is
// unreachable.
type HybridRateLimiter struct {
	redis    *RedisRateLimiter
	inMemory *RateLimiter
}

func NewHybridRateLimiter(client *redis.Client, rate, burst int) *HybridRateLimiter {
	var redisRL *RedisRateLimiter
	if client != nil {
		redisRL = NewRedisRateLimiter(client, rate)
	}
	return &HybridRateLimiter{
		redis:    redisRL,
		inMemory: NewRateLimiter(rate, burst),
	}
}

func (hl *HybridRateLimiter) Allow(ctx context.Context, key string) bool {
	if hl.redis != nil {
		if err := hl.redis.client.Ping(ctx).Err(); err == nil {
			return hl.redis.Allow(ctx, key)
		}
	}
	return hl.inMemory.Allow(ctx, key)
}

func (hl *HybridRateLimiter) Stop() {
	hl.inMemory.Stop()
}

// RateLimit rejects clients that exceed limiter. A nil limiter disables it.
func RateLimit(limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(r.Context(), r.URL.Path+"|"+clientIP(r)) {
				metrics.RecordRateLimited(r.URL.Path)
				w.Header().Set("Retry-After", "60")
				apperror.WriteJSON(w, r, errRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP uses the first X-Forwarded-For hop set by the edge proxy, else
// the peer address.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
