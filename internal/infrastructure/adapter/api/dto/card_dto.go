package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Amount accepts a money value sent either as a JSON string ("40.00") or a JSON number (40.00).
// The textual form is kept as-is so no precision is lost on the way to the domain.
type Amount string

// UnmarshalJSON implements json.Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a number or a decimal string: %w", err)
	}
	*a = Amount(n.String())
	return nil
}

// CreateCardRequest is the admin body for issuing a card
type CreateCardRequest struct {
	// ExpirationDate is "YYYY-MM-DD"; omitted means the card is created already expired
	ExpirationDate *string `json:"expirationDate"`
	Balance        Amount  `json:"balance"`
}

// ListCardsQuery holds the optional filter and paging parameters of card listings
type ListCardsQuery struct {
	Status string `form:"status"`
	Page   int    `form:"page" binding:"min=0"`
	Size   int    `form:"size" binding:"min=0,max=100"`
}

// TransferRequest is the owner's transfer body
type TransferRequest struct {
	FromCardID uint64 `json:"fromCardId" binding:"required"`
	ToCardID   uint64 `json:"toCardId" binding:"required"`
	Amount     Amount `json:"amount" binding:"required"`
}
