package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer represents the append-only transfer log.
// Card ids are kept without foreign keys so history survives card deletion.
type Transfer struct {
	ID         uint64          `gorm:"primaryKey;autoIncrement"`
	Reference  string          `gorm:"not null;size:36;uniqueIndex:idx_transfers_reference"`
	OwnerID    uint64          `gorm:"not null;index"`
	FromCardID uint64          `gorm:"not null"`
	ToCardID   uint64          `gorm:"not null"`
	Amount     decimal.Decimal `gorm:"type:numeric(20,2);not null;check:chk_transfers_amount_positive,amount > 0"`
	CreatedAt  time.Time       `gorm:"not null"`
}

// TableName specifies the table name for Transfer
func (Transfer) TableName() string {
	return "transfers"
}
