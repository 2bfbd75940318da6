package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCard(t *testing.T) {
	clock := newFixedClock(t)
	policy := NewLifecyclePolicy(clock)

	t.Run("Valid card", func(t *testing.T) {
		card, err := NewCard("4000123412341234", 7, date(2026, 6, 15), decimal.RequireFromString("100.00"), policy, clock)

		require.NoError(t, err)
		assert.Equal(t, uint64(7), card.OwnerID)
		assert.Equal(t, CardStatusActive, card.Status)
		assert.Equal(t, "100.00", FormatAmount(card.Balance))
		assert.Equal(t, fixedNow, card.CreatedAt)
	})

	t.Run("Missing expiration date starts expired", func(t *testing.T) {
		card, err := NewCard("4000123412341234", 7, nil, decimal.Zero, policy, clock)
		require.NoError(t, err)
		assert.Equal(t, CardStatusExpired, card.Status)
	})

	t.Run("Invalid number", func(t *testing.T) {
		for _, number := range []string{"", "123", "4000-1234-1234-12", "400012341234123a"} {
			_, err := NewCard(number, 7, nil, decimal.Zero, policy, clock)
			assert.ErrorIs(t, err, errs.ErrInvalidRequest, number)
		}
	})

	t.Run("Negative balance", func(t *testing.T) {
		_, err := NewCard("4000123412341234", 7, nil, decimal.NewFromInt(-1), policy, clock)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestMaskCardNumber(t *testing.T) {
	assert.Equal(t, "**** **** **** 1234", MaskCardNumber("4000567890121234"))
	assert.Equal(t, "**** **** **** 12", MaskCardNumber("12"))
}

func TestCardDebitCredit(t *testing.T) {
	clock := newFixedClock(t)
	card := &Card{ID: 1, Balance: decimal.RequireFromString("100.00")}

	require.NoError(t, card.Debit(decimal.RequireFromString("40.00"), clock))
	assert.Equal(t, "60.00", FormatAmount(card.Balance))

	err := card.Debit(decimal.RequireFromString("1000.00"), clock)
	assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
	assert.Equal(t, "60.00", FormatAmount(card.Balance))

	require.NoError(t, card.Credit(decimal.RequireFromString("0.10"), clock))
	require.NoError(t, card.Credit(decimal.RequireFromString("0.20"), clock))
	assert.Equal(t, "60.30", FormatAmount(card.Balance))

	assert.ErrorIs(t, card.Credit(decimal.Zero, clock), errs.ErrInvalidAmount)
	assert.ErrorIs(t, card.Debit(decimal.NewFromInt(-1), clock), errs.ErrInvalidAmount)
}

func TestParseCardStatus(t *testing.T) {
	status, err := ParseCardStatus("blocked")
	require.NoError(t, err)
	assert.Equal(t, CardStatusBlocked, status)

	status, err = ParseCardStatus(" Active ")
	require.NoError(t, err)
	assert.Equal(t, CardStatusActive, status)

	_, err = ParseCardStatus("frozen")
	assert.ErrorIs(t, err, errs.ErrInvalidStatus)
}

func TestCardToResponse(t *testing.T) {
	policy := NewLifecyclePolicy(newFixedClock(t))
	card := &Card{
		ID:             9,
		Number:         "4000567890125678",
		OwnerID:        3,
		ExpirationDate: date(2025, 6, 1),
		Status:         CardStatusActive,
		Balance:        decimal.RequireFromString("12.5"),
	}

	resp := CardToResponse(card, policy)

	assert.Equal(t, "**** **** **** 5678", resp.MaskedNumber)
	assert.Equal(t, CardStatusExpired, resp.Status)
	assert.Equal(t, "12.50", resp.Balance)
	require.NotNil(t, resp.ExpirationDate)
	assert.Equal(t, "2025-06-01", *resp.ExpirationDate)
}

func TestCardClone(t *testing.T) {
	card := &Card{ID: 1, ExpirationDate: date(2026, 1, 1)}
	clone := card.Clone()
	*clone.ExpirationDate = clone.ExpirationDate.AddDate(1, 0, 0)
	assert.Equal(t, 2026, card.ExpirationDate.Year())
}

func TestLuhn(t *testing.T) {
	assert.True(t, PassesLuhn("4111111111111111"))
	assert.False(t, PassesLuhn("4111111111111112"))

	payload := "400012341234123"
	number := payload + string(LuhnCheckDigit(payload))
	assert.True(t, PassesLuhn(number))
	assert.True(t, IsValidCardNumber(number))
}
