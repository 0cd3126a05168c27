package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/mocks"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSeedCmd_DryRun(t *testing.T) {
	t.Run("embedded catalog", func(t *testing.T) {
		out, err := executeRoot(t, "seed", "--dry-run")

		require.NoError(t, err)
		assert.Contains(t, out, "Catalog is valid: 23 ingredients")
	})

	t.Run("catalog file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("ingredients:\n  - name: Tofu\n  - name: Tempeh\n"), 0o600))

		out, err := executeRoot(t, "seed", "--dry-run", "--file", path)

		require.NoError(t, err)
		assert.Contains(t, out, "Catalog is valid: 2 ingredients")
	})

	t.Run("file from environment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("ingredients:\n  - name: Okra\n"), 0o600))
		t.Setenv("SEED_INGREDIENTS_FILE", path)

		out, err := executeRoot(t, "seed", "--dry-run")

		require.NoError(t, err)
		assert.Contains(t, out, "Catalog is valid: 1 ingredients")
	})

	t.Run("invalid catalog", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("ingredients:\n  - name: Salt\n  - name: Salt\n"), 0o600))

		_, err := executeRoot(t, "seed", "--dry-run", "-f", path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listed twice")
	})
}

func TestSeedCmd_RequiresDatabase(t *testing.T) {
	t.Setenv("MONGODB_ENABLED", "false")

	_, err := executeRoot(t, "seed")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is not available")
}

func TestRootCmd_RejectsUnknownCommand(t *testing.T) {
	_, err := executeRoot(t, "serve", "extra")

	assert.Error(t, err)
}

func TestLogsCmd_Flags(t *testing.T) {
	t.Run("negative since", func(t *testing.T) {
		_, err := executeRoot(t, "logs", "--since", "-1h")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "--since must be positive")
	})

	t.Run("requires database", func(t *testing.T) {
		t.Setenv("MONGODB_ENABLED", "false")

		_, err := executeRoot(t, "logs", "--action", "login")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "database is not available")
	})
}

func TestRunLogs(t *testing.T) {
	opts := model.LogQueryOptions{ActionType: "login", Limit: 2}

	t.Run("json lines", func(t *testing.T) {
		logs := new(mocks.MockLoggingService)
		logs.On("QueryLogs", mock.Anything, opts).Return([]*model.LogEntry{
			{Message: "User logged in", ActionType: "login", UserID: "u2"},
			{Message: "User logged in", ActionType: "login", UserID: "u1"},
		}, nil)
		var out bytes.Buffer

		require.NoError(t, runLogs(context.Background(), &out, logs, opts, false))

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 2)
		var first model.LogEntry
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
		assert.Equal(t, "u2", first.UserID)
	})

	t.Run("count", func(t *testing.T) {
		logs := new(mocks.MockLoggingService)
		logs.On("CountLogs", mock.Anything, opts).Return(int64(12), nil)
		var out bytes.Buffer

		require.NoError(t, runLogs(context.Background(), &out, logs, opts, true))

		assert.Equal(t, "12\n", out.String())
		logs.AssertNotCalled(t, "QueryLogs", mock.Anything, mock.Anything)
	})

	t.Run("query error", func(t *testing.T) {
		logs := new(mocks.MockLoggingService)
		logs.On("QueryLogs", mock.Anything, opts).Return(nil, assert.AnError)

		assert.ErrorIs(t, runLogs(context.Background(), &bytes.Buffer{}, logs, opts, false), assert.AnError)
	})
}

func TestKeysCmd(t *testing.T) {
	first, err := executeRoot(t, "keys")
	require.NoError(t, err)
	second, err := executeRoot(t, "keys", "--bytes", "48")
	require.NoError(t, err)

	for _, name := range []string{"JWT_SECRET_KEY=", "JWT_REFRESH_SECRET_KEY=", "API_KEYS="} {
		assert.Contains(t, first, name)
	}
	lines := strings.Split(strings.TrimSpace(first), "\n")
	require.Len(t, lines, 3)
	_, secret, _ := strings.Cut(lines[0], "=")
	assert.Len(t, secret, 43, "32 bytes in unpadded base64")
	assert.NotEqual(t, first, second)

	t.Run("short keys are rejected", func(t *testing.T) {
		_, err := executeRoot(t, "keys", "--bytes", "16")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "--bytes must be at least 32")
	})

	t.Run("entropy failure", func(t *testing.T) {
		cmd := newKeysCmd(strings.NewReader("short"))
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{})

		assert.ErrorContains(t, cmd.Execute(), "generate JWT_SECRET_KEY")
	})
}
