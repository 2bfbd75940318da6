package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected string
		}{
			{"100.00", "100"},
			{"0.01", "0.01"},
			{"0.10", "0.1"},
			{"1", "1"},
			{"1.5", "1.5"},
			{"1234567.89", "1234567.89"},
			{" 40.00 ", "40"},
			{"0", "0"},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				value, err := ParseAmount(tc.input)
				require.NoError(t, err)
				assert.True(t, value.Equal(decimal.RequireFromString(tc.expected)), "got %s", value)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			description string
		}{
			{"", "Empty string"},
			{"   ", "Whitespace only"},
			{"1.234", "Too many decimal places"},
			{"abc", "Non-numeric"},
			{"1,000.00", "Comma as thousands separator"},
			{"1.00.00", "Multiple decimal points"},
			{"$100", "Currency symbol"},
			{"1e3", "Exponent notation"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ParseAmount(tc.input)
				assert.ErrorIs(t, err, errs.ErrInvalidAmount)
			})
		}
	})
}

func TestParsePositiveAmount(t *testing.T) {
	for _, input := range []string{"0", "0.00", "-1.00", "-0.01"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParsePositiveAmount(input)
			assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		})
	}

	value, err := ParsePositiveAmount("40.00")
	require.NoError(t, err)
	assert.Equal(t, "40.00", FormatAmount(value))
}

func TestParseBalance(t *testing.T) {
	value, err := ParseBalance("")
	require.NoError(t, err)
	assert.True(t, value.IsZero())

	value, err = ParseBalance("100")
	require.NoError(t, err)
	assert.Equal(t, "100.00", FormatAmount(value))

	_, err = ParseBalance("-5")
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0.00", FormatAmount(decimal.Zero))
	assert.Equal(t, "10.10", FormatAmount(decimal.RequireFromString("10.1")))
	assert.Equal(t, "9999999999.99", FormatAmount(decimal.RequireFromString("9999999999.99")))
}
