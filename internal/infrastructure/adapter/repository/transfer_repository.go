package repository

import (
	"context"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransferRepository implements persistence.TransferRepository using GORM
type TransferRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewTransferRepository creates a new TransferRepository instance
func NewTransferRepository(db *gorm.DB, logger coreport.Logger) *TransferRepository {
	return &TransferRepository{
		db:     db,
		logger: logger,
	}
}

// Create appends a transfer record
func (r *TransferRepository) Create(ctx context.Context, transfer *entity.Transfer) error {
	row := model.TransferFromEntity(transfer)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		r.logger.Error("Failed to record transfer", map[string]any{
			"reference":    transfer.Reference,
			"from_card_id": transfer.FromCardID,
			"to_card_id":   transfer.ToCardID,
			"error":        err.Error(),
		})
		return MapError(err, errs.ErrNotFound)
	}
	transfer.ID = row.ID
	return nil
}

// ListByCard returns the transfers touching cardID, newest first
func (r *TransferRepository) ListByCard(ctx context.Context, cardID uint64, limit int) ([]*entity.Transfer, error) {
	var rows []model.Transfer
	err := r.db.WithContext(ctx).
		Where("from_card_id = ? OR to_card_id = ?", cardID, cardID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, MapError(err, errs.ErrNotFound)
	}

	transfers := make([]*entity.Transfer, 0, len(rows))
	for i := range rows {
		transfers = append(transfers, rows[i].ToEntity())
	}
	return transfers, nil
}
