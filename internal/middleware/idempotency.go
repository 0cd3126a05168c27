package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/i18n"
	"github.com/guttosm/meal-planner/internal/service/cache"
)

const (
	// IdempotencyKeyHeader carries the client-chosen key of a retryable write.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the store.
	IdempotencyReplayedHeader = "Idempotency-Replayed"
	// DefaultIdempotencyTTL is how long a response stays replayable.
	DefaultIdempotencyTTL = 10 * time.Minute

	defaultIdempotencyCapacity = 10000
	idempotencyShards          = 8
	maxIdempotencyKeyLength    = 255
)

// replayedHeaders are copied from the original response onto its replays.
var replayedHeaders = []string{"Content-Type", "Location"}

type storedResponse struct {
	fingerprint string
	status      int
	header      http.Header
	body        []byte
}

// IdempotencyConfig sizes an IdempotencyStore. Zero values take the defaults.
type IdempotencyConfig struct {
	TTL      time.Duration
	Capacity int
}

func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{TTL: DefaultIdempotencyTTL, Capacity: defaultIdempotencyCapacity}
}

// IdempotencyStore remembers the successful responses of POST, PUT and PATCH
// requests sent with an Idempotency-Key, so a client retrying after a lost
// response does not create a second household or shopping list. Keys are
// scoped to the caller.
type IdempotencyStore struct {
	responses *cache.ShardedCache[*storedResponse]
}

func NewIdempotencyStore(cfg IdempotencyConfig) *IdempotencyStore {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultIdempotencyTTL
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = defaultIdempotencyCapacity
	}
	return &IdempotencyStore{
		responses: cache.NewSharded[*storedResponse]("idempotency", cfg.Capacity, cfg.TTL, idempotencyShards),
	}
}

// Stop ends the store's expiry workers.
func (s *IdempotencyStore) Stop() {
	s.responses.Stop()
}

// Middleware replays the stored response when a key comes back with the same
// method, path and body. Reusing a key for a different request is a 409.
// Only 2xx responses are stored, so a failed write can be retried.
func (s *IdempotencyStore) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" || !isWrite(c.Request.Method) {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKeyLength {
			abortWithError(c, http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidRequest)
			return
		}

		fingerprint, err := requestFingerprint(c.Request)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidRequestBody)
			return
		}
		storeKey := clientKey(c) + "|" + key

		if stored, ok := s.responses.Get(storeKey); ok {
			if stored.fingerprint != fingerprint {
				abortWithError(c, http.StatusConflict, dto.ErrCodeConflict, i18n.ErrKeyConflict)
				return
			}
			replay(c, stored)
			return
		}

		rec := &recordingWriter{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()
		c.Writer = rec.ResponseWriter

		if status := rec.Status(); status >= 200 && status < 300 {
			s.responses.Set(storeKey, &storedResponse{
				fingerprint: fingerprint,
				status:      status,
				header:      pickHeaders(rec.Header()),
				body:        rec.body.Bytes(),
			})
		}
	}
}

func replay(c *gin.Context, stored *storedResponse) {
	for name, values := range stored.header {
		c.Writer.Header()[name] = values
	}
	c.Header(IdempotencyReplayedHeader, "true")
	c.Data(stored.status, stored.header.Get("Content-Type"), stored.body)
	c.Abort()
}

func isWrite(method string) bool {
	return method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch
}

// requestFingerprint hashes method, path and body. The body is restored for
// the handlers that run next.
func requestFingerprint(req *http.Request) (string, error) {
	h := sha256.New()
	h.Write([]byte(req.Method))
	h.Write([]byte{0})
	h.Write([]byte(req.URL.Path))
	h.Write([]byte{0})

	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return "", err
		}
		req.Body = io.NopCloser(bytes.NewReader(body))
		h.Write(body)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func pickHeaders(from http.Header) http.Header {
	picked := make(http.Header, len(replayedHeaders))
	for _, name := range replayedHeaders {
		if v := from.Values(name); len(v) > 0 {
			picked[name] = append([]string(nil), v...)
		}
	}
	return picked
}

// recordingWriter tees the response body into a buffer.
type recordingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *recordingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
