package entity

// BalanceResponse represents the response for the balance endpoint
type BalanceResponse struct {
	CardID  uint64 `json:"cardId"`
	Balance string `json:"balance"`
}

// CardToBalanceResponse converts a Card entity to a BalanceResponse
func CardToBalanceResponse(card *Card) BalanceResponse {
	return BalanceResponse{
		CardID:  card.ID,
		Balance: FormatAmount(card.Balance),
	}
}
