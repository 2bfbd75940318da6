package memory

import (
	"context"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
)

// TransferRepository implements persistence.TransferRepository in memory
type TransferRepository struct {
	session session
}

// Create appends a transfer record and assigns its ID
func (r *TransferRepository) Create(ctx context.Context, transfer *entity.Transfer) error {
	return r.session.write(ctx, func(d *dataset) error {
		transfer.ID = d.nextTransferID
		d.nextTransferID++
		stored := *transfer
		d.transfers = append(d.transfers, &stored)
		return nil
	})
}

// ListByCard returns the transfers that debited or credited cardID, newest first
func (r *TransferRepository) ListByCard(ctx context.Context, cardID uint64, limit int) ([]*entity.Transfer, error) {
	var result []*entity.Transfer
	err := r.session.read(func(d *dataset) error {
		for i := len(d.transfers) - 1; i >= 0; i-- {
			t := d.transfers[i]
			if t.FromCardID != cardID && t.ToCardID != cardID {
				continue
			}
			copied := *t
			result = append(result, &copied)
			if limit > 0 && len(result) >= limit {
				break
			}
		}
		return nil
	})
	return result, err
}
