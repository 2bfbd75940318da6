package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
)

// CardFilter narrows a card listing
type CardFilter struct {
	// OwnerID restricts the listing to one user's cards when set
	OwnerID *uint64
	// Status filters on the effective status when set: a card whose expiration date
	// is before AsOf counts as EXPIRED regardless of its stored status
	Status *entity.CardStatus
	// AsOf is the date used to compute the effective status
	AsOf time.Time
}

// CardRepository defines the card store
type CardRepository interface {
	// GetByID retrieves a card by ID
	//
	// Possible errors:
	// - ErrCardNotFound: If card with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Card, error)

	// GetByIDForUpdate retrieves a card and locks its row until the surrounding
	// transaction ends. Must be called on a repository bound to a unit of work.
	//
	// Possible errors:
	// - ErrCardNotFound: If card with specified ID doesn't exist
	// - ErrConflict: If the lock could not be acquired
	// - ErrDatabaseConnection: If database connection fails
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Card, error)

	// Create stores a new card and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateKey: If the card number is already stored
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, card *entity.Card) error

	// Update persists status and balance of an existing card
	//
	// Possible errors:
	// - ErrCardNotFound: If card doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, card *entity.Card) error

	// Delete removes a card permanently
	//
	// Possible errors:
	// - ErrCardNotFound: If card doesn't exist
	Delete(ctx context.Context, id uint64) error

	// NumberExists checks whether a card number is already taken
	NumberExists(ctx context.Context, number string) (bool, error)

	// CountByOwner returns how many cards a user owns
	CountByOwner(ctx context.Context, ownerID uint64) (int64, error)

	// List returns one page of cards ordered by ID, plus the total number of matches
	List(ctx context.Context, filter CardFilter, page entity.PageRequest) ([]*entity.Card, int64, error)

	// ExpireLapsed marks every non-EXPIRED card whose expiration date is before asOf
	// as EXPIRED and returns the number of cards changed
	ExpireLapsed(ctx context.Context, asOf time.Time) (int64, error)
}
