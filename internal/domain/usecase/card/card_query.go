package card

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
	"github.com/amirhossein-jamali/cardbank/internal/domain/port/persistence"
)

// ListAllCards pages over every card
func (u *CardUseCase) ListAllCards(ctx context.Context, status string, page entity.PageRequest) (*entity.Page[entity.CardResponse], error) {
	filter, err := u.buildFilter(nil, status)
	if err != nil {
		return nil, err
	}
	return u.list(ctx, filter, page)
}

// ListUserCards pages over the cards owned by username
func (u *CardUseCase) ListUserCards(ctx context.Context, username, status string, page entity.PageRequest) (*entity.Page[entity.CardResponse], error) {
	filter, err := u.buildFilter(nil, status)
	if err != nil {
		return nil, err
	}

	user, err := u.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}
	filter.OwnerID = &user.ID

	return u.list(ctx, filter, page)
}

// GetBalance returns the balance of a card owned by username
func (u *CardUseCase) GetBalance(ctx context.Context, username string, cardID uint64) (*entity.BalanceResponse, error) {
	user, err := u.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	card, err := u.uow.GetCardRepository(ctx).GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if !card.IsOwnedBy(user.ID) {
		return nil, fmt.Errorf("%w: card %d", errs.ErrAccessDenied, card.ID)
	}

	resp := entity.CardToBalanceResponse(card)
	return &resp, nil
}

// DeleteCard removes a card permanently
func (u *CardUseCase) DeleteCard(ctx context.Context, cardID uint64) error {
	if err := u.uow.GetCardRepository(ctx).Delete(ctx, cardID); err != nil {
		return err
	}
	u.logger.Info("Card deleted", map[string]any{"card_id": cardID})
	return nil
}

func (u *CardUseCase) buildFilter(ownerID *uint64, status string) (persistence.CardFilter, error) {
	filter := persistence.CardFilter{OwnerID: ownerID, AsOf: u.policy.Today()}
	if strings.TrimSpace(status) == "" {
		return filter, nil
	}
	parsed, err := entity.ParseCardStatus(status)
	if err != nil {
		return filter, err
	}
	filter.Status = &parsed
	return filter, nil
}

func (u *CardUseCase) list(ctx context.Context, filter persistence.CardFilter, page entity.PageRequest) (*entity.Page[entity.CardResponse], error) {
	page = page.Normalize()
	cards, total, err := u.uow.GetCardRepository(ctx).List(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	result := entity.MapPage(entity.NewPage(cards, page, total), func(c *entity.Card) entity.CardResponse {
		return entity.CardToResponse(c, u.policy)
	})
	return &result, nil
}
