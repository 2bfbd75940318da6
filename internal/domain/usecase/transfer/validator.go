package transfer

import (
	"fmt"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
	"github.com/shopspring/decimal"
)

// Card roles used to tag state errors
const (
	ContextSource      = "source"
	ContextDestination = "destination"
)

// Validator holds the transfer rule checks. Each check is side-effect free; the only
// state change it can propose is an expiry correction, which is returned to the caller.
type Validator struct {
	policy *entity.LifecyclePolicy
}

// NewValidator creates a new Validator
func NewValidator(policy *entity.LifecyclePolicy) *Validator {
	return &Validator{policy: policy}
}

// ValidateAmount checks the amount is a positive value with at most two decimals
func (v *Validator) ValidateAmount(amount string) (decimal.Decimal, error) {
	return entity.ParsePositiveAmount(amount)
}

// ValidateDistinctCards rejects transfers from a card to itself
func (v *Validator) ValidateDistinctCards(fromCardID, toCardID uint64) error {
	if fromCardID == 0 || toCardID == 0 {
		return fmt.Errorf("%w: card ids are required", errs.ErrInvalidRequest)
	}
	if fromCardID == toCardID {
		return errs.ErrSameCard
	}
	return nil
}

// ValidateOwnership checks the card belongs to the acting user
func (v *Validator) ValidateOwnership(card *entity.Card, userID uint64) error {
	if card == nil {
		return errs.ErrCardNotFound
	}
	if !card.IsOwnedBy(userID) {
		return fmt.Errorf("%w: card %d", errs.ErrAccessDenied, card.ID)
	}
	return nil
}

// ValidateActive checks the stored status is ACTIVE
func (v *Validator) ValidateActive(card *entity.Card, context string) error {
	if !card.IsActive() {
		return errs.NewCardStateError(card.ID, context, string(card.Status), errs.ErrCardNotActive)
	}
	return nil
}

// ValidateNotExpired applies the lifecycle policy; a non-nil card is the EXPIRED correction to persist
func (v *Validator) ValidateNotExpired(card *entity.Card, context string) (*entity.Card, error) {
	corrected, err := v.policy.EnsureNotExpired(card)
	if err != nil {
		return corrected, errs.NewCardStateError(card.ID, context, string(card.Status), err)
	}
	return nil, nil
}

// ValidateSufficientBalance checks the source card covers amount
func (v *Validator) ValidateSufficientBalance(card *entity.Card, amount decimal.Decimal) error {
	if !card.CanDebit(amount) {
		return errs.NewInsufficientBalanceError(card.ID, entity.FormatAmount(amount), entity.FormatAmount(card.Balance))
	}
	return nil
}

// ValidateCards runs the card checks in their fixed order: ownership, active status,
// expiry, then balance. When the expiry step fails, the returned slice holds the
// corrected cards that must be persisted even though the transfer is rejected.
func (v *Validator) ValidateCards(userID uint64, from, to *entity.Card, amount decimal.Decimal) ([]*entity.Card, error) {
	if err := v.ValidateOwnership(from, userID); err != nil {
		return nil, err
	}
	if err := v.ValidateOwnership(to, userID); err != nil {
		return nil, err
	}

	if err := v.ValidateActive(from, ContextSource); err != nil {
		return nil, err
	}
	if err := v.ValidateActive(to, ContextDestination); err != nil {
		return nil, err
	}

	var (
		corrections []*entity.Card
		expiryErr   error
	)
	for _, c := range []struct {
		card    *entity.Card
		context string
	}{{from, ContextSource}, {to, ContextDestination}} {
		corrected, err := v.ValidateNotExpired(c.card, c.context)
		if corrected != nil {
			corrections = append(corrections, corrected)
		}
		if err != nil && expiryErr == nil {
			expiryErr = err
		}
	}
	if expiryErr != nil {
		return corrections, expiryErr
	}

	if err := v.ValidateSufficientBalance(from, amount); err != nil {
		return nil, err
	}
	return nil, nil
}
