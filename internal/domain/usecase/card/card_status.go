package card

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
)

// statusDecision inspects a locked card and returns the card to persist (nil for no write)
// together with the outcome of the operation. A non-nil card with an error is a correction
// that is committed even though the operation fails.
type statusDecision func(card *entity.Card) (*entity.Card, error)

// BlockCard blocks any card by id. Blocking an already blocked card succeeds without a write.
func (u *CardUseCase) BlockCard(ctx context.Context, cardID uint64) (*entity.CardResponse, error) {
	return u.changeStatus(ctx, cardID, func(card *entity.Card) (*entity.Card, error) {
		if corrected, err := u.policy.EnsureNotExpired(card); err != nil {
			return corrected, err
		}
		if card.Status == entity.CardStatusBlocked {
			return nil, nil
		}
		return card.WithStatus(entity.CardStatusBlocked, u.timeProvider), nil
	})
}

// ActivateCard re-activates any card by id after re-validating its expiration date
func (u *CardUseCase) ActivateCard(ctx context.Context, cardID uint64) (*entity.CardResponse, error) {
	return u.changeStatus(ctx, cardID, func(card *entity.Card) (*entity.Card, error) {
		if corrected, err := u.policy.EnsureNotExpired(card); err != nil {
			return corrected, err
		}
		if card.Status == entity.CardStatusActive {
			return nil, nil
		}
		return card.WithStatus(entity.CardStatusActive, u.timeProvider), nil
	})
}

// RequestBlockCard lets the owner block one of their cards
func (u *CardUseCase) RequestBlockCard(ctx context.Context, username string, cardID uint64) (*entity.CardResponse, error) {
	user, err := u.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	return u.changeStatus(ctx, cardID, func(card *entity.Card) (*entity.Card, error) {
		if !card.IsOwnedBy(user.ID) {
			return nil, fmt.Errorf("%w: card %d", errs.ErrAccessDenied, card.ID)
		}
		if card.Status == entity.CardStatusBlocked {
			return nil, errs.ErrAlreadyBlocked
		}
		if corrected, err := u.policy.EnsureNotExpired(card); err != nil {
			return corrected, err
		}
		return card.WithStatus(entity.CardStatusBlocked, u.timeProvider), nil
	})
}

// changeStatus locks the card inside a unit of work, applies decide and persists its result
func (u *CardUseCase) changeStatus(ctx context.Context, cardID uint64, decide statusDecision) (*entity.CardResponse, error) {
	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := u.uow.Rollback(txCtx); rbErr != nil {
				u.logger.Error("Failed to rollback card status change", map[string]any{
					"card_id": cardID,
					"error":   rbErr.Error(),
				})
			}
		}
	}()

	repo := u.uow.GetCardRepository(txCtx)
	card, err := repo.GetByIDForUpdate(txCtx, cardID)
	if err != nil {
		return nil, err
	}

	updated, outcome := decide(card)
	if updated == nil {
		if outcome != nil {
			return nil, outcome
		}
		return u.toResponse(card), nil
	}

	if !u.policy.CanTransition(card.Status, updated.Status) {
		return nil, fmt.Errorf("%w: %s to %s", errs.ErrCardExpired, card.Status, updated.Status)
	}
	if err := repo.Update(txCtx, updated); err != nil {
		return nil, err
	}
	if err := u.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	committed = true

	u.metrics.IncCardStatusChange(string(card.Status), string(updated.Status))
	u.logger.Info("Card status changed", map[string]any{
		"card_id": card.ID,
		"from":    string(card.Status),
		"to":      string(updated.Status),
	})

	if outcome != nil {
		return nil, outcome
	}
	return u.toResponse(updated), nil
}

// ExpireLapsedCards persists EXPIRED for every card whose expiration date has passed
func (u *CardUseCase) ExpireLapsedCards(ctx context.Context) (int64, error) {
	changed, err := u.uow.GetCardRepository(ctx).ExpireLapsed(ctx, u.policy.Today())
	if err != nil {
		u.logger.Error("Failed to expire lapsed cards", map[string]any{"error": err.Error()})
		return 0, err
	}
	if changed > 0 {
		u.logger.Info("Lapsed cards expired", map[string]any{"count": changed})
	}
	return changed, nil
}
