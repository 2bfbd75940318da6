package entity

import (
	"time"

	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer is an immutable record of a balance movement between two cards of one owner
type Transfer struct {
	ID         uint64          // Store-assigned identifier
	Reference  string          // Public UUID reference of the transfer
	OwnerID    uint64          // User who initiated the transfer and owns both cards
	FromCardID uint64          // Debited card
	ToCardID   uint64          // Credited card
	Amount     decimal.Decimal // Exact amount moved
	CreatedAt  time.Time
}

// NewTransfer creates the audit record for a transfer
func NewTransfer(ownerID, fromCardID, toCardID uint64, amount decimal.Decimal, timeProvider coreport.TimeProvider) *Transfer {
	return &Transfer{
		Reference:  uuid.NewString(),
		OwnerID:    ownerID,
		FromCardID: fromCardID,
		ToCardID:   toCardID,
		Amount:     amount,
		CreatedAt:  timeProvider.Now(),
	}
}

// TransferResponse is the projection of a completed transfer
type TransferResponse struct {
	Reference   string    `json:"reference"`
	FromCardID  uint64    `json:"fromCardId"`
	ToCardID    uint64    `json:"toCardId"`
	Amount      string    `json:"amount"`
	FromBalance string    `json:"fromBalance,omitempty"`
	ToBalance   string    `json:"toBalance,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToResponse converts the transfer to its projection
func (t *Transfer) ToResponse() TransferResponse {
	return TransferResponse{
		Reference:  t.Reference,
		FromCardID: t.FromCardID,
		ToCardID:   t.ToCardID,
		Amount:     FormatAmount(t.Amount),
		CreatedAt:  t.CreatedAt,
	}
}

// NewTransferReceipt builds returned by a successful transfer with the resulting balances
func NewTransferReceipt(t *Transfer, from, to *Card) TransferResponse {
	resp := t.ToResponse()
	resp.FromBalance = FormatAmount(from.Balance)
	resp.ToBalance = FormatAmount(to.Balance)
	return resp
}
