package transfer

import (
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/cardbank/mocks/port/core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	fixedNow   = time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	fixedToday = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
)

func newClock(t *testing.T) *coremocks.MockTimeProvider {
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(fixedNow).Maybe()
	clock.EXPECT().Today().Return(fixedToday).Maybe()
	return clock
}

func nextYear() *time.Time {
	d := fixedToday.AddDate(1, 0, 0)
	return &d
}

func lastMonth() *time.Time {
	d := fixedToday.AddDate(0, -1, 0)
	return &d
}

func activeCard(id, owner uint64, balance string) *entity.Card {
	return &entity.Card{
		ID:             id,
		OwnerID:        owner,
		Number:         "4000000000000000",
		ExpirationDate: nextYear(),
		Status:         entity.CardStatusActive,
		Balance:        decimal.RequireFromString(balance),
	}
}

func TestValidateAmount(t *testing.T) {
	v := NewValidator(entity.NewLifecyclePolicy(newClock(t)))

	for _, amount := range []string{"0", "-10", "abc", "1.001", ""} {
		_, err := v.ValidateAmount(amount)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount, amount)
	}

	value, err := v.ValidateAmount("40.00")
	require.NoError(t, err)
	assert.Equal(t, "40.00", entity.FormatAmount(value))
}

func TestValidateDistinctCards(t *testing.T) {
	v := NewValidator(entity.NewLifecyclePolicy(newClock(t)))

	assert.ErrorIs(t, v.ValidateDistinctCards(1, 1), errs.ErrSameCard)
	assert.ErrorIs(t, v.ValidateDistinctCards(0, 1), errs.ErrInvalidRequest)
	assert.NoError(t, v.ValidateDistinctCards(1, 2))
}

func TestValidateCardsOrder(t *testing.T) {
	v := NewValidator(entity.NewLifecyclePolicy(newClock(t)))
	amount := decimal.RequireFromString("40.00")

	t.Run("Missing source reports not found", func(t *testing.T) {
		_, err := v.ValidateCards(1, nil, activeCard(2, 1, "0"), amount)
		assert.ErrorIs(t, err, errs.ErrCardNotFound)
	})

	t.Run("Foreign destination reports access denied", func(t *testing.T) {
		_, err := v.ValidateCards(1, activeCard(1, 1, "100"), activeCard(2, 9, "0"), amount)
		assert.ErrorIs(t, err, errs.ErrAccessDenied)
	})

	t.Run("Blocked destination is tagged", func(t *testing.T) {
		to := activeCard(2, 1, "0")
		to.Status = entity.CardStatusBlocked

		_, err := v.ValidateCards(1, activeCard(1, 1, "100"), to, amount)

		assert.ErrorIs(t, err, errs.ErrCardNotActive)
		var stateErr *errs.CardStateError
		require.True(t, errors.As(err, &stateErr))
		assert.Equal(t, ContextDestination, stateErr.Context)
	})

	t.Run("Inactive check precedes balance check", func(t *testing.T) {
		from := activeCard(1, 1, "0")
		from.Status = entity.CardStatusBlocked

		_, err := v.ValidateCards(1, from, activeCard(2, 1, "0"), amount)
		assert.ErrorIs(t, err, errs.ErrCardNotActive)
	})

	t.Run("Lapsed card yields correction", func(t *testing.T) {
		from := activeCard(1, 1, "100")
		from.ExpirationDate = lastMonth()

		corrections, err := v.ValidateCards(1, from, activeCard(2, 1, "0"), amount)

		assert.ErrorIs(t, err, errs.ErrCardExpired)
		require.Len(t, corrections, 1)
		assert.Equal(t, uint64(1), corrections[0].ID)
		assert.Equal(t, entity.CardStatusExpired, corrections[0].Status)
		assert.Equal(t, entity.CardStatusActive, from.Status)
	})

	t.Run("Both lapsed are both corrected", func(t *testing.T) {
		from := activeCard(1, 1, "100")
		from.ExpirationDate = lastMonth()
		to := activeCard(2, 1, "0")
		to.ExpirationDate = lastMonth()

		corrections, err := v.ValidateCards(1, from, to, amount)

		var stateErr *errs.CardStateError
		require.True(t, errors.As(err, &stateErr))
		assert.Equal(t, ContextSource, stateErr.Context)
		assert.Len(t, corrections, 2)
	})

	t.Run("Insufficient balance last", func(t *testing.T) {
		_, err := v.ValidateCards(1, activeCard(1, 1, "10"), activeCard(2, 1, "0"), amount)
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
	})

	t.Run("All checks pass", func(t *testing.T) {
		corrections, err := v.ValidateCards(1, activeCard(1, 1, "40.00"), activeCard(2, 1, "0"), amount)
		assert.NoError(t, err)
		assert.Empty(t, corrections)
	})
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	config := RetryConfig{RetryInterval: 10 * time.Millisecond, MaxInterval: 35 * time.Millisecond}

	assert.Equal(t, 10*time.Millisecond, calculateBackoffWithJitter(0, config))
	assert.Equal(t, 20*time.Millisecond, calculateBackoffWithJitter(1, config))
	assert.Equal(t, 35*time.Millisecond, calculateBackoffWithJitter(3, config))

	config.JitterFactor = 0.5
	backoff := calculateBackoffWithJitter(0, config)
	assert.GreaterOrEqual(t, backoff, 10*time.Millisecond)
	assert.LessOrEqual(t, backoff, 15*time.Millisecond)
}
