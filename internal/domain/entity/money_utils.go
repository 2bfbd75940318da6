package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// ParseAmount validates a string amount and returns it as an exact decimal.
// Accepts plain decimal notation only ("10", "10.5", "10.50"); rejects exponents,
// thousands separators and more than MaxDecimalPlaces fractional digits.
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	for i, r := range amount {
		if (r < '0' || r > '9') && r != '.' && !(i == 0 && r == '-') {
			return decimal.Zero, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
		}
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	if -value.Exponent() > MaxDecimalPlaces {
		return decimal.Zero, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}

	return value, nil
}

// ParsePositiveAmount parses amount and requires it to be strictly greater than zero
func ParsePositiveAmount(amount string) (decimal.Decimal, error) {
	value, err := ParseAmount(amount)
	if err != nil {
		return decimal.Zero, err
	}
	if !value.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be greater than zero", errs.ErrInvalidAmount)
	}
	return value, nil
}

// ParseBalance parses an opening balance; an empty value means zero
func ParseBalance(balance string) (decimal.Decimal, error) {
	if strings.TrimSpace(balance) == "" {
		return decimal.Zero, nil
	}
	value, err := ParseAmount(balance)
	if err != nil {
		return decimal.Zero, err
	}
	if value.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: balance cannot be negative", errs.ErrInvalidAmount)
	}
	return value, nil
}

// FormatAmount renders a decimal with exactly two decimal places, e.g. "60.00"
func FormatAmount(value decimal.Decimal) string {
	return value.StringFixed(MaxDecimalPlaces)
}
