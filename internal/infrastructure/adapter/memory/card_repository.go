package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
	"github.com/amirhossein-jamali/cardbank/internal/domain/port/persistence"
)

// CardRepository implements persistence.CardRepository in memory
type CardRepository struct {
	session session
}

// GetByID retrieves a copy of the card
func (r *CardRepository) GetByID(ctx context.Context, id uint64) (*entity.Card, error) {
	var card *entity.Card
	err := r.session.read(func(d *dataset) error {
		stored, ok := d.cards[id]
		if !ok {
			return errs.ErrCardNotFound
		}
		card = stored.Clone()
		return nil
	})
	return card, err
}

// GetByIDForUpdate retrieves the card; inside a unit of work the writer slot already excludes other writers
func (r *CardRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Card, error) {
	return r.GetByID(ctx, id)
}

// Create stores a new card and assigns its ID
func (r *CardRepository) Create(ctx context.Context, card *entity.Card) error {
	return r.session.write(ctx, func(d *dataset) error {
		for _, existing := range d.cards {
			if existing.Number == card.Number {
				return fmt.Errorf("%w: card number", errs.ErrDuplicateKey)
			}
		}
		if _, ok := d.users[card.OwnerID]; !ok {
			return fmt.Errorf("%w: owner %d does not exist", errs.ErrConstraintViolation, card.OwnerID)
		}
		card.ID = d.nextCardID
		d.nextCardID++
		d.cards[card.ID] = card.Clone()
		return nil
	})
}

// Update persists status and balance of an existing card
func (r *CardRepository) Update(ctx context.Context, card *entity.Card) error {
	return r.session.write(ctx, func(d *dataset) error {
		stored, ok := d.cards[card.ID]
		if !ok {
			return errs.ErrCardNotFound
		}
		if card.Balance.IsNegative() {
			return fmt.Errorf("%w: balance cannot be negative", errs.ErrConstraintViolation)
		}
		stored.Status = card.Status
		stored.Balance = card.Balance
		stored.UpdatedAt = card.UpdatedAt
		return nil
	})
}

// Delete removes a card permanently
func (r *CardRepository) Delete(ctx context.Context, id uint64) error {
	return r.session.write(ctx, func(d *dataset) error {
		if _, ok := d.cards[id]; !ok {
			return errs.ErrCardNotFound
		}
		delete(d.cards, id)
		return nil
	})
}

// NumberExists checks whether a card number is already taken
func (r *CardRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	exists := false
	err := r.session.read(func(d *dataset) error {
		for _, card := range d.cards {
			if card.Number == number {
				exists = true
				break
			}
		}
		return nil
	})
	return exists, err
}

// CountByOwner returns how many cards a user owns
func (r *CardRepository) CountByOwner(ctx context.Context, ownerID uint64) (int64, error) {
	var count int64
	err := r.session.read(func(d *dataset) error {
		for _, card := range d.cards {
			if card.OwnerID == ownerID {
				count++
			}
		}
		return nil
	})
	return count, err
}

// List returns one page of cards ordered by ID
func (r *CardRepository) List(ctx context.Context, filter persistence.CardFilter, page entity.PageRequest) ([]*entity.Card, int64, error) {
	var (
		result []*entity.Card
		total  int64
	)
	err := r.session.read(func(d *dataset) error {
		offset := page.Offset()
		for _, id := range d.sortedCardIDs() {
			card := d.cards[id]
			if filter.OwnerID != nil && card.OwnerID != *filter.OwnerID {
				continue
			}
			if filter.Status != nil && entity.EffectiveStatusAt(card, filter.AsOf) != *filter.Status {
				continue
			}
			total++
			if total > int64(offset) && len(result) < page.Size {
				result = append(result, card.Clone())
			}
		}
		return nil
	})
	return result, total, err
}

// ExpireLapsed marks every lapsed card EXPIRED
func (r *CardRepository) ExpireLapsed(ctx context.Context, asOf time.Time) (int64, error) {
	var changed int64
	err := r.session.write(ctx, func(d *dataset) error {
		for _, card := range d.cards {
			if entity.EffectiveStatusAt(card, asOf) == entity.CardStatusExpired && card.Status != entity.CardStatusExpired {
				card.Status = entity.CardStatusExpired
				card.UpdatedAt = time.Now().UTC()
				changed++
			}
		}
		return nil
	})
	return changed, err
}
