//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/guttosm/meal-planner/internal/circuitbreaker"
	"github.com/guttosm/meal-planner/internal/domain/model"
)

func TestLogsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()
	require.NoError(t, db.SetLogsTTL(ctx, 30*24*time.Hour))

	repo := NewLogsRepository(db)
	// recent enough that the TTL monitor leaves the fixtures alone
	base := time.Now().UTC().Truncate(time.Second).Add(-time.Hour)

	require.NoError(t, repo.CreateMany(ctx, []*model.LogEntry{
		{Timestamp: base, Level: "info", Message: "GET /api/recipes", Method: "GET", Path: "/api/recipes", StatusCode: 200, RequestID: "r1"},
		{Timestamp: base.Add(time.Minute), Level: "error", Message: "POST /api/recipes", Method: "POST", Path: "/api/recipes", StatusCode: 500, RequestID: "r2"},
		{Timestamp: base.Add(2 * time.Minute), Level: "info", Message: "User logged in", ActionType: "login", UserID: "u1", RequestID: "r3"},
		{Timestamp: base.Add(3 * time.Minute), Level: "info", Message: "GET /api/pantry", Method: "GET", Path: "/api/pantry", StatusCode: 200},
	}))

	t.Run("create assigns id and timestamp", func(t *testing.T) {
		entry := &model.LogEntry{Level: "info", Message: "User logged out", ActionType: "logout", UserID: "u1"}
		require.NoError(t, repo.Create(ctx, entry))
		assert.False(t, entry.ID.IsZero())
		assert.False(t, entry.Timestamp.IsZero())

		got, err := repo.Query(ctx, model.LogQueryOptions{ActionType: "logout"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, entry.ID, got[0].ID)
	})

	t.Run("newest first", func(t *testing.T) {
		got, err := repo.Query(ctx, model.LogQueryOptions{Method: "GET"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "/api/pantry", got[0].Path)
		assert.Equal(t, "/api/recipes", got[1].Path)
	})

	t.Run("path prefix", func(t *testing.T) {
		got, err := repo.Query(ctx, model.LogQueryOptions{Path: "/api/rec"})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("time window and paging", func(t *testing.T) {
		start, end := base.Add(30*time.Second), base.Add(3*time.Minute)
		got, err := repo.Query(ctx, model.LogQueryOptions{StartTime: &start, EndTime: &end, Limit: 2, Skip: 1})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "r3", got[0].RequestID)
		assert.Equal(t, "r2", got[1].RequestID)
	})

	t.Run("count uses every filter", func(t *testing.T) {
		count, err := repo.Count(ctx, model.LogQueryOptions{Method: "GET", Path: "/api/pantry", Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		count, err = repo.Count(ctx, model.LogQueryOptions{Level: "error"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("ttl index", func(t *testing.T) {
		cursor, err := db.Logs.Indexes().List(ctx)
		require.NoError(t, err)
		var indexes []bson.M
		require.NoError(t, cursor.All(ctx, &indexes))

		var ttl interface{}
		for _, idx := range indexes {
			if idx["name"] == "timestamp_1" {
				ttl = idx["expireAfterSeconds"]
			}
		}
		assert.EqualValues(t, 30*24*60*60, ttl)
	})
}

func TestLogsRepository_WithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	repo := NewLogsRepositoryWithCircuitBreaker(NewLogsRepository(db), cb)

	require.NoError(t, repo.Create(ctx, &model.LogEntry{Level: "info", Message: "ok"}))
	count, err := repo.Count(ctx, model.LogQueryOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.True(t, cb.GetStats().IsHealthy)
}
