package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/adapter/repository"
	coremocks "github.com/amirhossein-jamali/cardbank/mocks/port/core"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRetryOnTransientError(t *testing.T) {
	transient := &pgconn.PgError{Code: repository.SQLStateSerializationFailure}
	cfg := RetryConfig{MaxAttempts: 3, RetryInterval: time.Millisecond, MaxInterval: 10 * time.Millisecond}

	t.Run("Recovers", func(t *testing.T) {
		clock := coremocks.NewMockTimeProvider(t)
		clock.EXPECT().Sleep(mock.Anything, mock.Anything).Return(nil).Once()

		calls := 0
		err := RetryOnTransientError(context.Background(), cfg, clock, logger.NewNoopLogger(), func(context.Context) error {
			calls++
			if calls == 1 {
				return transient
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("GivesUp", func(t *testing.T) {
		clock := coremocks.NewMockTimeProvider(t)
		clock.EXPECT().Sleep(mock.Anything, mock.Anything).Return(nil).Times(2)

		calls := 0
		err := RetryOnTransientError(context.Background(), cfg, clock, logger.NewNoopLogger(), func(context.Context) error {
			calls++
			return transient
		})

		assert.ErrorIs(t, err, transient)
		assert.Equal(t, 3, calls)
	})

	t.Run("PermanentErrorStops", func(t *testing.T) {
		clock := coremocks.NewMockTimeProvider(t)
		permanent := errors.New("password authentication failed")

		calls := 0
		err := RetryOnTransientError(context.Background(), cfg, clock, logger.NewNoopLogger(), func(context.Context) error {
			calls++
			return permanent
		})

		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("CancelledWhileWaiting", func(t *testing.T) {
		clock := coremocks.NewMockTimeProvider(t)
		clock.EXPECT().Sleep(mock.Anything, mock.Anything).Return(context.Canceled).Once()

		err := RetryOnTransientError(context.Background(), cfg, clock, logger.NewNoopLogger(), func(context.Context) error {
			return transient
		})

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 100 * time.Millisecond, MaxInterval: time.Second, JitterFactor: 0.2}

	first := calculateBackoffWithJitter(0, cfg)
	assert.GreaterOrEqual(t, first, 100*time.Millisecond)
	assert.LessOrEqual(t, first, 120*time.Millisecond)

	capped := calculateBackoffWithJitter(10, cfg)
	assert.GreaterOrEqual(t, capped, time.Second)
	assert.LessOrEqual(t, capped, 1200*time.Millisecond)
}
