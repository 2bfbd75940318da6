package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// CardStatus represents the lifecycle state of a card
type CardStatus string

// Card statuses
const (
	CardStatusActive  CardStatus = "ACTIVE"
	CardStatusBlocked CardStatus = "BLOCKED"
	CardStatusExpired CardStatus = "EXPIRED"
)

// CardNumberLength is the number of digits in a card number
const CardNumberLength = 16

// maskPrefix precedes the last four digits of every masked card number
const maskPrefix = "**** **** **** "

// ParseCardStatus validates a status name; matching is case-insensitive
func ParseCardStatus(status string) (CardStatus, error) {
	switch CardStatus(strings.ToUpper(strings.TrimSpace(status))) {
	case CardStatusActive:
		return CardStatusActive, nil
	case CardStatusBlocked:
		return CardStatusBlocked, nil
	case CardStatusExpired:
		return CardStatusExpired, nil
	default:
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidStatus, status)
	}
}

// Card is a balance-bearing account record owned by exactly one user
type Card struct {
	ID             uint64          // Unique identifier for the card
	Number         string          // 16-digit card number, never exposed in full
	OwnerID        uint64          // Owning user, immutable after creation
	ExpirationDate *time.Time      // Calendar date (UTC midnight); nil when unknown
	Status         CardStatus      // ACTIVE, BLOCKED or EXPIRED
	Balance        decimal.Decimal // Exact balance, never negative
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewCard creates a card for ownerID; the initial status is decided by the lifecycle policy
func NewCard(
	number string,
	ownerID uint64,
	expirationDate *time.Time,
	balance decimal.Decimal,
	policy *LifecyclePolicy,
	timeProvider coreport.TimeProvider,
) (*Card, error) {
	if !IsValidCardNumber(number) {
		return nil, fmt.Errorf("%w: card number must be %d digits", errs.ErrInvalidRequest, CardNumberLength)
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("%w: owner is required", errs.ErrInvalidRequest)
	}
	if balance.IsNegative() {
		return nil, fmt.Errorf("%w: balance cannot be negative", errs.ErrInvalidAmount)
	}

	now := timeProvider.Now()
	return &Card{
		Number:         number,
		OwnerID:        ownerID,
		ExpirationDate: TruncateDate(expirationDate),
		Status:         policy.DetermineInitialStatus(expirationDate),
		Balance:        balance,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// IsValidCardNumber checks the number is exactly 16 ASCII digits
func IsValidCardNumber(number string) bool {
	if len(number) != CardNumberLength {
		return false
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// PassesLuhn implements the standard mod 10 check digit test
func PassesLuhn(number string) bool {
	sum := 0
	alternate := false
	for i := len(number) - 1; i >= 0; i-- {
		n := int(number[i] - '0')
		if n < 0 || n > 9 {
			return false
		}
		if alternate {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		sum += n
		alternate = !alternate
	}
	return sum%10 == 0
}

// LuhnCheckDigit returns the digit that makes payload+digit pass PassesLuhn
func LuhnCheckDigit(payload string) byte {
	for d := byte('0'); d <= '9'; d++ {
		if PassesLuhn(payload + string(d)) {
			return d
		}
	}
	return '0'
}

// MaskCardNumber keeps only the last four digits, e.g. "**** **** **** 1234"
func MaskCardNumber(number string) string {
	if len(number) < 4 {
		return maskPrefix + number
	}
	return maskPrefix + number[len(number)-4:]
}

// IsOwnedBy reports whether the card belongs to userID
func (c *Card) IsOwnedBy(userID uint64) bool {
	return c.OwnerID == userID
}

// IsActive reports whether the stored status is ACTIVE
func (c *Card) IsActive() bool {
	return c.Status == CardStatusActive
}

// CanDebit checks if the card holds at least amount
func (c *Card) CanDebit(amount decimal.Decimal) bool {
	return c.Balance.GreaterThanOrEqual(amount)
}

// Debit subtracts amount from the balance; returns ErrInsufficientBalance if it would go negative
func (c *Card) Debit(amount decimal.Decimal, timeProvider coreport.TimeProvider) error {
	if !amount.IsPositive() {
		return errs.ErrInvalidAmount
	}
	if !c.CanDebit(amount) {
		return errs.NewInsufficientBalanceError(c.ID, FormatAmount(amount), FormatAmount(c.Balance))
	}
	c.Balance = c.Balance.Sub(amount)
	c.UpdatedAt = timeProvider.Now()
	return nil
}

// Credit adds amount to the balance
func (c *Card) Credit(amount decimal.Decimal, timeProvider coreport.TimeProvider) error {
	if !amount.IsPositive() {
		return errs.ErrInvalidAmount
	}
	c.Balance = c.Balance.Add(amount)
	c.UpdatedAt = timeProvider.Now()
	return nil
}

// WithStatus returns a copy of the card carrying the new status
func (c *Card) WithStatus(status CardStatus, timeProvider coreport.TimeProvider) *Card {
	updated := *c
	updated.Status = status
	updated.UpdatedAt = timeProvider.Now()
	return &updated
}

// Clone returns an independent copy of the card
func (c *Card) Clone() *Card {
	clone := *c
	if c.ExpirationDate != nil {
		exp := *c.ExpirationDate
		clone.ExpirationDate = &exp
	}
	return &clone
}

// CardResponse is the client-safe projection of a card
type CardResponse struct {
	ID             uint64     `json:"id"`
	MaskedNumber   string     `json:"maskedNumber"`
	OwnerID        uint64     `json:"ownerId"`
	ExpirationDate *string    `json:"expirationDate"`
	Status         CardStatus `json:"status"`
	Balance        string     `json:"balance"`
}

// CardToResponse converts a card to its projection; status is the effective status under policy
func CardToResponse(card *Card, policy *LifecyclePolicy) CardResponse {
	var exp *string
	if card.ExpirationDate != nil {
		formatted := card.ExpirationDate.Format(DateLayout)
		exp = &formatted
	}
	return CardResponse{
		ID:             card.ID,
		MaskedNumber:   MaskCardNumber(card.Number),
		OwnerID:        card.OwnerID,
		ExpirationDate: exp,
		Status:         policy.EffectiveStatus(card),
		Balance:        FormatAmount(card.Balance),
	}
}
