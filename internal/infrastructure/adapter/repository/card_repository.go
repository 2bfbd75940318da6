package repository

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardbank/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CardRepository implements persistence.CardRepository using GORM
type CardRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewCardRepository creates a new CardRepository instance
func NewCardRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *CardRepository {
	return &CardRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByID retrieves a card by ID
func (r *CardRepository) GetByID(ctx context.Context, id uint64) (*entity.Card, error) {
	var row model.Card
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, r.fail("getting card", id, err)
	}
	return row.ToEntity(), nil
}

// GetByIDForUpdate retrieves a card with SELECT ... FOR UPDATE
func (r *CardRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Card, error) {
	var row model.Card
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&row, id).Error
	if err != nil {
		return nil, r.fail("locking card", id, err)
	}
	return row.ToEntity(), nil
}

// Create stores a new card and assigns its ID
func (r *CardRepository) Create(ctx context.Context, card *entity.Card) error {
	row := model.CardFromEntity(card)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		return r.fail("creating card", card.OwnerID, err)
	}
	card.ID = row.ID
	card.CreatedAt = row.CreatedAt
	card.UpdatedAt = row.UpdatedAt
	return nil
}

// Update persists status and balance of an existing card
func (r *CardRepository) Update(ctx context.Context, card *entity.Card) error {
	now := r.timeProvider.Now()
	result := r.db.WithContext(ctx).
		Model(&model.Card{}).
		Where("id = ?", card.ID).
		Updates(map[string]any{
			"status":     string(card.Status),
			"balance":    card.Balance,
			"updated_at": now,
		})
	if result.Error != nil {
		return r.fail("updating card", card.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrCardNotFound
	}
	card.UpdatedAt = now
	return nil
}

// Delete removes a card permanently
func (r *CardRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Card{}, id)
	if result.Error != nil {
		return r.fail("deleting card", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrCardNotFound
	}
	return nil
}

// NumberExists checks whether a card number is already taken
func (r *CardRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Card{}).Where("number = ?", number).Count(&count).Error
	if err != nil {
		return false, MapError(err, errs.ErrCardNotFound)
	}
	return count > 0, nil
}

// CountByOwner returns how many cards a user owns
func (r *CardRepository) CountByOwner(ctx context.Context, ownerID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Card{}).Where("owner_id = ?", ownerID).Count(&count).Error
	if err != nil {
		return 0, MapError(err, errs.ErrCardNotFound)
	}
	return count, nil
}

// List returns one page of cards ordered by ID, plus the total number of matches
func (r *CardRepository) List(ctx context.Context, filter persistence.CardFilter, page entity.PageRequest) ([]*entity.Card, int64, error) {
	base := func() *gorm.DB {
		return applyCardFilter(r.db.WithContext(ctx).Model(&model.Card{}), filter)
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, MapError(err, errs.ErrCardNotFound)
	}

	var rows []model.Card
	err := base().
		Order("id ASC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&rows).Error
	if err != nil {
		return nil, 0, MapError(err, errs.ErrCardNotFound)
	}

	cards := make([]*entity.Card, 0, len(rows))
	for i := range rows {
		cards = append(cards, rows[i].ToEntity())
	}
	return cards, total, nil
}

// applyCardFilter narrows query by owner and effective status.
// A card whose expiration date is before AsOf counts as EXPIRED whatever its stored status.
func applyCardFilter(query *gorm.DB, filter persistence.CardFilter) *gorm.DB {
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.Status == nil {
		return query
	}

	asOf := filter.AsOf
	if *filter.Status == entity.CardStatusExpired {
		return query.Where("(status = ? OR (expiration_date IS NOT NULL AND expiration_date < ?))",
			string(entity.CardStatusExpired), asOf)
	}
	return query.Where("status = ? AND (expiration_date IS NULL OR expiration_date >= ?)",
		string(*filter.Status), asOf)
}

// ExpireLapsed marks every lapsed non-EXPIRED card as EXPIRED in one statement
func (r *CardRepository) ExpireLapsed(ctx context.Context, asOf time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Card{}).
		Where("status <> ? AND expiration_date IS NOT NULL AND expiration_date < ?",
			string(entity.CardStatusExpired), asOf).
		Updates(map[string]any{
			"status":     string(entity.CardStatusExpired),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return 0, MapError(result.Error, errs.ErrCardNotFound)
	}
	return result.RowsAffected, nil
}

func (r *CardRepository) fail(operation string, id uint64, err error) error {
	mapped := MapError(err, errs.ErrCardNotFound)
	if !errs.IsBusinessError(mapped) {
		r.logger.Error("Database error when "+operation, map[string]any{
			"card_id": id,
			"error":   err.Error(),
		})
	}
	return mapped
}
