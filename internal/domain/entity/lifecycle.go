package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
)

// DateLayout is the wire format of card expiration dates
const DateLayout = "2006-01-02"

// TruncateDate drops the time-of-day of t, keeping its calendar date at UTC midnight
func TruncateDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	y, m, d := t.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &date
}

// ParseDate parses a "YYYY-MM-DD" date
func ParseDate(value string) (*time.Time, error) {
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

// LifecyclePolicy decides card status transitions from expiration dates and current state.
// "Today" always comes from the injected TimeProvider.
type LifecyclePolicy struct {
	timeProvider coreport.TimeProvider
}

// NewLifecyclePolicy creates a policy bound to timeProvider
func NewLifecyclePolicy(timeProvider coreport.TimeProvider) *LifecyclePolicy {
	return &LifecyclePolicy{timeProvider: timeProvider}
}

// DetermineInitialStatus returns EXPIRED when the date is missing or already past, ACTIVE otherwise
func (p *LifecyclePolicy) DetermineInitialStatus(expirationDate *time.Time) CardStatus {
	if expirationDate == nil || p.before(expirationDate) {
		return CardStatusExpired
	}
	return CardStatusActive
}

// IsExpired reports whether the date is strictly before today.
// A missing date is not expired here, unlike DetermineInitialStatus.
func (p *LifecyclePolicy) IsExpired(expirationDate *time.Time) bool {
	if expirationDate == nil {
		return false
	}
	return p.before(expirationDate)
}

// EnsureNotExpired checks the card against today. When its date has lapsed it returns a
// corrected copy with status EXPIRED together with ErrCardExpired; the caller persists the copy.
// The argument is never modified. A card already marked EXPIRED fails without a copy.
func (p *LifecyclePolicy) EnsureNotExpired(card *Card) (*Card, error) {
	if card.Status == CardStatusExpired {
		return nil, errs.ErrCardExpired
	}
	if !p.IsExpired(card.ExpirationDate) {
		return nil, nil
	}
	return card.WithStatus(CardStatusExpired, p.timeProvider), errs.ErrCardExpired
}

// EffectiveStatus is the status a reader should see: a lapsed card reads as EXPIRED
// even before the correction has been persisted.
func (p *LifecyclePolicy) EffectiveStatus(card *Card) CardStatus {
	return EffectiveStatusAt(card, p.timeProvider.Today())
}

// EffectiveStatusAt is EffectiveStatus evaluated against an explicit date; stores use it
// to filter listings the same way the policy projects them
func EffectiveStatusAt(card *Card, today time.Time) CardStatus {
	if card.Status != CardStatusExpired && card.ExpirationDate != nil && TruncateDate(card.ExpirationDate).Before(today) {
		return CardStatusExpired
	}
	return card.Status
}

// CanTransition encodes the card state machine: ACTIVE and BLOCKED swap freely,
// both may expire, and nothing leaves EXPIRED.
func (p *LifecyclePolicy) CanTransition(from, to CardStatus) bool {
	switch from {
	case CardStatusActive:
		return to == CardStatusBlocked || to == CardStatusExpired || to == CardStatusActive
	case CardStatusBlocked:
		return to == CardStatusActive || to == CardStatusExpired || to == CardStatusBlocked
	default:
		return to == CardStatusExpired
	}
}

// Today returns the policy's notion of the current date
func (p *LifecyclePolicy) Today() time.Time {
	return p.timeProvider.Today()
}

func (p *LifecyclePolicy) before(date *time.Time) bool {
	return TruncateDate(date).Before(p.timeProvider.Today())
}
