package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Card represents the database model for cards.
// Deleting a user that still owns cards is rejected by the owner foreign key.
type Card struct {
	ID             uint64          `gorm:"primaryKey;autoIncrement"`
	Number         string          `gorm:"not null;size:19;uniqueIndex:idx_cards_number"`
	OwnerID        uint64          `gorm:"not null;index:idx_cards_owner_id"`
	ExpirationDate *time.Time      `gorm:"type:date"`
	Status         string          `gorm:"not null;size:16"`
	Balance        decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0;check:chk_cards_balance_non_negative,balance >= 0"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`

	Owner User `gorm:"foreignKey:OwnerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName specifies the table name for Card
func (Card) TableName() string {
	return "cards"
}
