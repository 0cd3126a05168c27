//go:build !integration

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/meal-planner/config"
	"github.com/guttosm/meal-planner/internal/circuitbreaker"
	"github.com/guttosm/meal-planner/internal/metrics"
	"github.com/guttosm/meal-planner/internal/repository"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDatabase_Disabled(t *testing.T) {
	components := InitializeDatabase(config.DatabaseConfig{Enabled: false})

	assert.Nil(t, components)
	assert.NoError(t, components.Close(context.Background()))
}

func TestNewCircuitBreaker(t *testing.T) {
	cfg := config.DatabaseConfig{
		CircuitBreakerFailureThreshold: 2,
		CircuitBreakerSuccessThreshold: 1,
		CircuitBreakerTimeout:          time.Minute,
	}

	tests := []struct {
		name          string
		err           error
		expectedState circuitbreaker.State
	}{
		{
			name:          "missing documents do not trip the breaker",
			err:           repository.ErrDocumentNotFound,
			expectedState: circuitbreaker.StateClosed,
		},
		{
			name:          "duplicate keys do not trip the breaker",
			err:           repository.ErrDuplicate,
			expectedState: circuitbreaker.StateClosed,
		},
		{
			name:          "connection failures trip the breaker",
			err:           errors.New("server selection timeout"),
			expectedState: circuitbreaker.StateOpen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name := "test_" + t.Name()
			cb := newCircuitBreaker(name, cfg)
			assert.Equal(t, float64(circuitbreaker.StateClosed), testutil.ToFloat64(metrics.CircuitBreakerState.WithLabelValues(name)))

			for i := 0; i < 3; i++ {
				err := cb.Execute(context.Background(), func() error { return tt.err })
				require.Error(t, err)
			}

			assert.Equal(t, tt.expectedState, cb.State())
			assert.Equal(t, float64(tt.expectedState), testutil.ToFloat64(metrics.CircuitBreakerState.WithLabelValues(name)))
		})
	}
}
