package card

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
	"github.com/amirhossein-jamali/cardbank/internal/domain/port/usecase"
)

// CreateCardForUser issues a card with a freshly generated number to username
func (u *CardUseCase) CreateCardForUser(ctx context.Context, username string, params usecase.CreateCardParams) (*entity.CardResponse, error) {
	user, err := u.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	balance, err := entity.ParseBalance(params.Balance)
	if err != nil {
		return nil, err
	}

	cards := u.uow.GetCardRepository(ctx)
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		number, err := u.numbers.Generate()
		if err != nil {
			return nil, fmt.Errorf("%w: generate card number: %v", errs.ErrInternalServer, err)
		}

		exists, err := cards.NumberExists(ctx, number)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		card, err := entity.NewCard(number, user.ID, params.ExpirationDate, balance, u.policy, u.timeProvider)
		if err != nil {
			return nil, err
		}

		if err := cards.Create(ctx, card); err != nil {
			// Lost a race for the same number; draw again.
			if errors.Is(err, errs.ErrDuplicateKey) {
				continue
			}
			u.logger.Error("Failed to create card", map[string]any{
				"username": username,
				"error":    err.Error(),
			})
			return nil, err
		}

		u.logger.Info("Card created", map[string]any{
			"card_id":  card.ID,
			"owner_id": user.ID,
			"status":   string(card.Status),
			"balance":  entity.FormatAmount(card.Balance),
		})
		return u.toResponse(card), nil
	}

	return nil, fmt.Errorf("%w: no unique card number after %d attempts", errs.ErrInternalServer, maxNumberAttempts)
}
