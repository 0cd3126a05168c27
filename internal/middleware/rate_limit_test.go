package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/meal-planner/internal/domain/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeClock is a settable time source for the limiter.
type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestLimiter(t *testing.T, limit int, period time.Duration) (*RateLimiter, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	rl := NewShardedRateLimiter(limit, period, 4)
	rl.now = clock.now
	return rl, clock
}

func TestNewShardedRateLimiter_ShardCount(t *testing.T) {
	for _, tt := range []struct {
		shards, want int
	}{{0, defaultNumShards}, {-1, defaultNumShards}, {8, 8}} {
		rl := NewShardedRateLimiter(10, time.Minute, tt.shards)
		assert.Len(t, rl.shards, tt.want)
	}
}

func TestRateLimiter_Allow(t *testing.T) {
	rl, clock := newTestLimiter(t, 3, time.Minute)

	for want := 2; want >= 0; want-- {
		allowed, remaining, _ := rl.Allow("ip:10.0.0.1")
		require.True(t, allowed)
		assert.Equal(t, want, remaining)
	}

	allowed, remaining, resetAt := rl.Allow("ip:10.0.0.1")
	assert.False(t, allowed)
	assert.Zero(t, remaining)
	assert.Equal(t, clock.t.Add(time.Minute), resetAt)

	t.Run("other clients keep their own budget", func(t *testing.T) {
		allowed, _, _ := rl.Allow("ip:10.0.0.2")
		assert.True(t, allowed)
	})

	t.Run("window reset restores the budget", func(t *testing.T) {
		clock.advance(time.Minute)
		allowed, remaining, _ := rl.Allow("ip:10.0.0.1")
		assert.True(t, allowed)
		assert.Equal(t, 2, remaining)
	})
}

func TestRateLimiter_RateLimit(t *testing.T) {
	rl, _ := newTestLimiter(t, 2, 30*time.Second)
	router := gin.New()
	router.Use(rl.RateLimit())
	router.GET("/api/recipes", func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/recipes", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(w, req)
		return w
	}

	first := send()
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, first.Header().Get("X-RateLimit-Reset"))

	assert.Equal(t, http.StatusOK, send().Code)

	rejected := send()
	assert.Equal(t, http.StatusTooManyRequests, rejected.Code)
	assert.Equal(t, "0", rejected.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "30", rejected.Header().Get("Retry-After"))
	assert.Contains(t, rejected.Body.String(), dto.ErrCodeRateLimit)
}

func TestRateLimiter_UserRateLimit(t *testing.T) {
	rl, _ := newTestLimiter(t, 1, time.Minute)
	alice, bob := primitive.NewObjectID(), primitive.NewObjectID()

	router := gin.New()
	router.Use(func(c *gin.Context) {
		switch c.GetHeader("X-User") {
		case "alice":
			SetIdentity(c, alice, "alice@example.com")
		case "bob":
			SetIdentity(c, bob, "bob@example.com")
		}
		c.Next()
	})
	router.Use(rl.UserRateLimit())
	router.GET("/api/pantry", func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(user string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/pantry", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		if user != "" {
			req.Header.Set("X-User", user)
		}
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("alice"))
	assert.Equal(t, http.StatusTooManyRequests, send("alice"))
	assert.Equal(t, http.StatusOK, send("bob"), "users behind one address are limited separately")
	assert.Equal(t, http.StatusOK, send(""), "anonymous requests fall back to the address")
	assert.Equal(t, http.StatusTooManyRequests, send(""))
}

func TestClientKey(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "192.168.1.7:5555"
	assert.Equal(t, "ip:192.168.1.7", clientKey(c))

	id := primitive.NewObjectID()
	SetIdentity(c, id, "ana@example.com")
	assert.Equal(t, "user:"+id.Hex(), clientKey(c))
}

func TestRateLimiter_SweepsExpiredWindows(t *testing.T) {
	rl, clock := newTestLimiter(t, 5, time.Minute)
	rl.shards = rl.shards[:1]
	for _, key := range []string{"ip:a", "ip:b", "ip:c"} {
		rl.Allow(key)
	}

	total, perShard := rl.Stats()
	assert.Equal(t, 3, total)
	assert.Equal(t, []int{3}, perShard)

	clock.advance(30 * time.Second)
	rl.Allow("ip:a")
	total, _ = rl.Stats()
	assert.Equal(t, 3, total, "no sweep before a period has passed")

	clock.advance(30 * time.Second)
	rl.Allow("ip:d")
	total, _ = rl.Stats()
	assert.Equal(t, 1, total, "only the caller's fresh window survives")
}
