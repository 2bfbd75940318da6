package persistence

import (
	"context"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
)

// UserRepository defines the user store
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByUsername retrieves a user by username
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has that username
	// - ErrDatabaseConnection: If database connection fails
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// ExistsByUsername checks whether a username is taken
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Create stores a new user and assigns its ID
	//
	// Possible errors:
	// - ErrUsernameTaken: If the unique index on username rejects the row
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// Update persists role and enabled flag of an existing user
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user permanently
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	Delete(ctx context.Context, id uint64) error

	// List returns all users ordered by ID
	List(ctx context.Context) ([]*entity.User, error)
}
