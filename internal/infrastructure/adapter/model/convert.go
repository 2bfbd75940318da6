package model

import (
	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
)

// ToEntity converts the row into a domain user
func (m *User) ToEntity() *entity.User {
	return &entity.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         entity.Role(m.Role),
		Enabled:      m.Enabled,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// UserFromEntity builds a row from a domain user
func UserFromEntity(u *entity.User) *User {
	return &User{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Enabled:      u.Enabled,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// ToEntity converts the row into a domain card.
// Expiration dates come back from a DATE column and are normalised to UTC midnight.
func (m *Card) ToEntity() *entity.Card {
	return &entity.Card{
		ID:             m.ID,
		Number:         m.Number,
		OwnerID:        m.OwnerID,
		ExpirationDate: entity.TruncateDate(m.ExpirationDate),
		Status:         entity.CardStatus(m.Status),
		Balance:        m.Balance,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// CardFromEntity builds a row from a domain card
func CardFromEntity(c *entity.Card) *Card {
	return &Card{
		ID:             c.ID,
		Number:         c.Number,
		OwnerID:        c.OwnerID,
		ExpirationDate: entity.TruncateDate(c.ExpirationDate),
		Status:         string(c.Status),
		Balance:        c.Balance,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// ToEntity converts the row into a domain transfer
func (m *Transfer) ToEntity() *entity.Transfer {
	return &entity.Transfer{
		ID:         m.ID,
		Reference:  m.Reference,
		OwnerID:    m.OwnerID,
		FromCardID: m.FromCardID,
		ToCardID:   m.ToCardID,
		Amount:     m.Amount,
		CreatedAt:  m.CreatedAt,
	}
}

// TransferFromEntity builds a row from a domain transfer
func TransferFromEntity(t *entity.Transfer) *Transfer {
	return &Transfer{
		ID:         t.ID,
		Reference:  t.Reference,
		OwnerID:    t.OwnerID,
		FromCardID: t.FromCardID,
		ToCardID:   t.ToCardID,
		Amount:     t.Amount,
		CreatedAt:  t.CreatedAt,
	}
}
