package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
)

// CreateCardParams carries the admin-supplied fields of a new card
type CreateCardParams struct {
	ExpirationDate *time.Time // nil creates an already-expired card
	Balance        string     // opening balance, empty means zero
}

// CardUseCase is the card facade used by administrators and card owners
type CardUseCase interface {
	// CreateCardForUser issues a new card with a generated number to username
	CreateCardForUser(ctx context.Context, username string, params CreateCardParams) (*entity.CardResponse, error)

	// BlockCard blocks any card by id (admin)
	BlockCard(ctx context.Context, cardID uint64) (*entity.CardResponse, error)

	// ActivateCard re-activates any card by id (admin); fails with ErrCardExpired once lapsed
	ActivateCard(ctx context.Context, cardID uint64) (*entity.CardResponse, error)

	// DeleteCard removes a card permanently (admin)
	DeleteCard(ctx context.Context, cardID uint64) error

	// ListAllCards pages over every card (admin); status is optional and case-insensitive
	ListAllCards(ctx context.Context, status string, page entity.PageRequest) (*entity.Page[entity.CardResponse], error)

	// ListUserCards pages over the cards of username; status is optional and case-insensitive
	ListUserCards(ctx context.Context, username, status string, page entity.PageRequest) (*entity.Page[entity.CardResponse], error)

	// RequestBlockCard lets an owner block one of their own cards
	RequestBlockCard(ctx context.Context, username string, cardID uint64) (*entity.CardResponse, error)

	// GetBalance returns the balance of a card owned by username
	GetBalance(ctx context.Context, username string, cardID uint64) (*entity.BalanceResponse, error)

	// ExpireLapsedCards persists EXPIRED for every card past its expiration date
	ExpireLapsedCards(ctx context.Context) (int64, error)
}
