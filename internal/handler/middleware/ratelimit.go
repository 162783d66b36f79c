package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"parkbuddy/internal/handler/httperr"
	"parkbuddy/internal/pkg/config"
	"parkbuddy/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = errs.New("rate limit exceeded")

// RateLimiter keeps one token bucket per authenticated user.
type RateLimiter struct {
	mu           sync.Mutex
	entries      map[string]*limiterEntry
	rps          rate.Limit
	burst        int
	idleTTL      time.Duration
	cleanupEvery time.Duration
	now          func() time.Time
}

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		entries:      make(map[string]*limiterEntry),
		rps:          rate.Limit(cfg.RPS),
		burst:        cfg.Burst,
		idleTTL:      cfg.IdleTTL,
		cleanupEvery: cfg.CleanupEvery,
		now:          time.Now,
	}
}

func (r *RateLimiter) limiter(key string) *rate.Limiter {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	if ent, ok := r.entries[key]; ok {
		ent.lastSeen = now
		return ent.lim
	}

	lim := rate.NewLimiter(r.rps, r.burst)
	r.entries[key] = &limiterEntry{lim: lim, lastSeen: now}
	return lim
}

// Cleanup drops limiters idle for longer than the configured TTL.
func (r *RateLimiter) Cleanup() {
	cutoff := r.now().Add(-r.idleTTL)

	r.mu.Lock()
	defer r.mu.Unlock()

	for k, ent := range r.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(r.entries, k)
		}
	}
}

func (r *RateLimiter) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// StartJanitor sweeps idle limiters until ctx is cancelled.
func (r *RateLimiter) StartJanitor(ctx context.Context) {
	if r.cleanupEvery <= 0 {
		return
	}

	t := time.NewTicker(r.cleanupEvery)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				r.Cleanup()
			}
		}
	}()
}

// Limit must run after RequireAuth; unauthenticated requests fall back to the client IP.
func (r *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if userID, ok := GetUserID(c); ok {
			key = userID.String()
		}

		res := r.limiter(key).ReserveN(r.now(), 1)
		if !res.OK() {
			c.Header("Retry-After", httperr.RetryAfterSeconds(time.Second))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
			return
		}
		if delay := res.DelayFrom(r.now()); delay > 0 {
			res.CancelAt(r.now())
			c.Header("Retry-After", httperr.RetryAfterSeconds(delay))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
			return
		}

		c.Next()
	}
}
