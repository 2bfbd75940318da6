package usecase

import (
	"context"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
)

// TransferRequest represents an owner's request to move money between two of their cards
type TransferRequest struct {
	FromCardID uint64
	ToCardID   uint64
	Amount     string
}

// TransferUseCase defines the transfer engine surface
type TransferUseCase interface {
	// Transfer moves Amount from one card to another card of the same owner atomically
	Transfer(ctx context.Context, username string, req TransferRequest) (*entity.TransferResponse, error)

	// ListTransfers returns the most recent transfers touching a card owned by username
	ListTransfers(ctx context.Context, username string, cardID uint64) ([]entity.TransferResponse, error)
}
