package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/logger"
	"github.com/guttosm/meal-planner/internal/metrics"
	"github.com/guttosm/meal-planner/internal/service"
)

// AsyncLoggerConfig sizes the log writer pool.
type AsyncLoggerConfig struct {
	BufferSize   int
	NumWorkers   int
	WriteTimeout time.Duration
}

// DefaultAsyncLoggerConfig returns the pool used by the server.
func DefaultAsyncLoggerConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{
		BufferSize:   1000,
		NumWorkers:   4,
		WriteTimeout: 5 * time.Second,
	}
}

// AsyncLogger persists request and audit log entries on a fixed pool of
// workers. When the buffer is full entries are dropped, never blocking the
// request that produced them.
type AsyncLogger struct {
	logs         service.LoggingService
	entries      chan *model.LogEntry
	writeTimeout time.Duration
	workers      sync.WaitGroup

	mu     sync.RWMutex
	closed bool

	enqueued atomic.Int64
	dropped  atomic.Int64
	written  atomic.Int64
	failed   atomic.Int64
}

// NewAsyncLogger starts the workers. It returns nil when logs is nil.
func NewAsyncLogger(logs service.LoggingService, cfg AsyncLoggerConfig) *AsyncLogger {
	if logs == nil {
		return nil
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = 1
	}

	al := &AsyncLogger{
		logs:         logs,
		entries:      make(chan *model.LogEntry, cfg.BufferSize),
		writeTimeout: cfg.WriteTimeout,
	}
	al.workers.Add(cfg.NumWorkers)
	for i := 0; i < cfg.NumWorkers; i++ {
		go func() {
			defer al.workers.Done()
			for entry := range al.entries {
				al.write(entry)
			}
		}()
	}
	return al
}

func (al *AsyncLogger) write(entry *model.LogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), al.writeTimeout)
	defer cancel()

	if err := al.logs.CreateLog(ctx, entry); err != nil {
		al.failed.Add(1)
		metrics.RecordLogEntry("failed")
		log := logger.Logger()
		log.Warn().Err(err).Str("action_type", entry.ActionType).Msg("Failed to persist log entry")
		return
	}
	al.written.Add(1)
	metrics.RecordLogEntry("written")
}

// Log enqueues entry and reports whether it was accepted.
func (al *AsyncLogger) Log(entry *model.LogEntry) bool {
	al.mu.RLock()
	defer al.mu.RUnlock()
	if al.closed {
		al.dropped.Add(1)
		metrics.RecordLogEntry("dropped")
		return false
	}

	select {
	case al.entries <- entry:
		al.enqueued.Add(1)
		metrics.RecordLogEntry("enqueued")
		return true
	default:
		al.dropped.Add(1)
		metrics.RecordLogEntry("dropped")
		return false
	}
}

// Stop writes what is still buffered and waits for the workers. Later calls
// to Log drop their entry.
func (al *AsyncLogger) Stop() {
	al.mu.Lock()
	if al.closed {
		al.mu.Unlock()
		return
	}
	al.closed = true
	close(al.entries)
	al.mu.Unlock()

	al.workers.Wait()
}

// Stats returns the counters since start.
func (al *AsyncLogger) Stats() (enqueued, dropped, written, failed int64) {
	return al.enqueued.Load(), al.dropped.Load(), al.written.Load(), al.failed.Load()
}

var (
	globalAsyncLogger   *AsyncLogger
	globalAsyncLoggerMu sync.RWMutex
)

// InitAsyncLogger replaces the process-wide writer used by RequestLogger and
// the audit helpers.
func InitAsyncLogger(logs service.LoggingService, cfg AsyncLoggerConfig) {
	next := NewAsyncLogger(logs, cfg)

	globalAsyncLoggerMu.Lock()
	prev := globalAsyncLogger
	globalAsyncLogger = next
	globalAsyncLoggerMu.Unlock()

	if prev != nil {
		prev.Stop()
	}
}

// GetAsyncLogger returns the process-wide writer, or nil.
func GetAsyncLogger() *AsyncLogger {
	globalAsyncLoggerMu.RLock()
	defer globalAsyncLoggerMu.RUnlock()
	return globalAsyncLogger
}

// StopAsyncLogger flushes and removes the process-wide writer.
func StopAsyncLogger() {
	InitAsyncLogger(nil, AsyncLoggerConfig{})
}

// persistLog hands entry to the async writer, or to a one-off goroutine
// when no writer was started.
func persistLog(logs service.LoggingService, entry *model.LogEntry) {
	if al := GetAsyncLogger(); al != nil {
		al.Log(entry)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = logs.CreateLog(ctx, entry)
	}()
}
