package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	mapped := MapError(err, errs.ErrUserNotFound)
	if errs.IsBusinessError(mapped) {
		return mapped
	}

	logged := map[string]any{"error": err.Error()}
	for k, v := range fields {
		logged[k] = v
	}
	r.logger.Error("Database error when "+operation, logged)
	return mapped
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var row model.User
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting user", err, map[string]any{"user_id": id})
	}
	return row.ToEntity(), nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var row model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&row).Error; err != nil {
		return nil, r.handleDatabaseError("getting user by username", err, map[string]any{"username": username})
	}
	return row.ToEntity(), nil
}

// ExistsByUsername checks whether a username is taken
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, r.handleDatabaseError("checking username", err, map[string]any{"username": username})
	}
	return count > 0, nil
}

// Create stores a new user; a unique-index hit on username surfaces as ErrUsernameTaken
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	row := model.UserFromEntity(user)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		mapped := r.handleDatabaseError("creating user", err, map[string]any{"username": user.Username})
		if errors.Is(mapped, errs.ErrDuplicateKey) {
			return errs.ErrUsernameTaken
		}
		return mapped
	}
	user.ID = row.ID
	user.CreatedAt = row.CreatedAt
	user.UpdatedAt = row.UpdatedAt
	return nil
}

// Update persists role and enabled flag of an existing user
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	now := r.timeProvider.Now()
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"role":       string(user.Role),
			"enabled":    user.Enabled,
			"updated_at": now,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating user", result.Error, map[string]any{"user_id": user.ID})
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	user.UpdatedAt = now
	return nil
}

// Delete removes a user; the card owner foreign key turns a delete of a card holder into ErrUserHasCards
func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.User{}, id)
	if result.Error != nil {
		mapped := r.handleDatabaseError("deleting user", result.Error, map[string]any{"user_id": id})
		if errors.Is(mapped, errs.ErrConstraintViolation) {
			return errs.ErrUserHasCards
		}
		return mapped
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

// List returns all users ordered by ID
func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	var rows []model.User
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("listing users", err, nil)
	}

	users := make([]*entity.User, 0, len(rows))
	for i := range rows {
		users = append(users, rows[i].ToEntity())
	}
	return users, nil
}
