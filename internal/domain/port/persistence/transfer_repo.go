package persistence

import (
	"context"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
)

// TransferRepository is the append-only transfer log
type TransferRepository interface {
	// Create appends a transfer record and assigns its ID
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transfer *entity.Transfer) error

	// ListByCard returns the transfers that debited or credited cardID, newest first
	ListByCard(ctx context.Context, cardID uint64, limit int) ([]*entity.Transfer, error)
}
