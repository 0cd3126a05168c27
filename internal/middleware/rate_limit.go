package middleware

import (
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/i18n"
	"github.com/guttosm/meal-planner/internal/metrics"
)

const defaultNumShards = 16

// window is the fixed-window counter of one client.
type window struct {
	used    int
	resetAt time.Time
}

type limiterShard struct {
	mu        sync.Mutex
	windows   map[string]*window
	nextSweep time.Time
}

// RateLimiter allows each client a fixed number of requests per window.
// Clients are spread over shards so unrelated keys do not contend. Each shard
// forgets expired windows at most once per period, on its next request, so the
// limiter needs no background goroutine.
type RateLimiter struct {
	shards []*limiterShard
	limit  int
	period time.Duration
	now    func() time.Time
}

// NewRateLimiter creates a limiter with the default shard count.
func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	return NewShardedRateLimiter(limit, period, defaultNumShards)
}

// NewShardedRateLimiter creates a limiter spread over numShards shards.
func NewShardedRateLimiter(limit int, period time.Duration, numShards int) *RateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}
	rl := &RateLimiter{
		shards: make([]*limiterShard, numShards),
		limit:  limit,
		period: period,
		now:    time.Now,
	}
	for i := range rl.shards {
		rl.shards[i] = &limiterShard{windows: make(map[string]*window)}
	}
	return rl
}

func (rl *RateLimiter) shard(key string) *limiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// Allow spends one request from key's window. It reports whether the request
// fits, how many remain and when the window resets.
func (rl *RateLimiter) Allow(key string) (allowed bool, remaining int, resetAt time.Time) {
	s := rl.shard(key)
	now := rl.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !now.Before(s.nextSweep) {
		s.sweep(now)
		s.nextSweep = now.Add(rl.period)
	}

	w, ok := s.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(rl.period)}
		s.windows[key] = w
	}
	if w.used >= rl.limit {
		return false, 0, w.resetAt
	}
	w.used++
	return true, rl.limit - w.used, w.resetAt
}

// RateLimit limits requests per client IP.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return rl.handler("ip", func(c *gin.Context) string {
		return "ip:" + c.ClientIP()
	})
}

// UserRateLimit limits requests per authenticated user, falling back to the
// client IP for anonymous requests.
func (rl *RateLimiter) UserRateLimit() gin.HandlerFunc {
	return rl.handler("user", clientKey)
}

func clientKey(c *gin.Context) string {
	if id := UserID(c); id != "" {
		return "user:" + id
	}
	return "ip:" + c.ClientIP()
}

func (rl *RateLimiter) handler(kind string, key func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining, resetAt := rl.Allow(key(c))

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

		if !allowed {
			metrics.RecordRateLimited(kind)
			retry := int(math.Ceil(resetAt.Sub(rl.now()).Seconds()))
			c.Header("Retry-After", strconv.Itoa(max(retry, 1)))
			abortWithError(c, http.StatusTooManyRequests, dto.ErrCodeRateLimit, i18n.ErrKeyRateLimitExceeded)
			return
		}
		c.Next()
	}
}

// sweep forgets clients whose window has ended. The caller holds s.mu.
func (s *limiterShard) sweep(now time.Time) {
	for key, w := range s.windows {
		if !now.Before(w.resetAt) {
			delete(s.windows, key)
		}
	}
}

// Stats returns the number of tracked clients, in total and per shard.
func (rl *RateLimiter) Stats() (total int, perShard []int) {
	perShard = make([]int, len(rl.shards))
	for i, s := range rl.shards {
		s.mu.Lock()
		perShard[i] = len(s.windows)
		s.mu.Unlock()
		total += perShard[i]
	}
	return total, perShard
}
