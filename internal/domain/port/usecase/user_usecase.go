package usecase

import (
	"context"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
)

// CreateUserParams carries the fields of an admin-created user
type CreateUserParams struct {
	Username string
	Password string
	Role     string
}

// UserUseCase defines user administration operations
type UserUseCase interface {
	// CreateUser creates a user with a hashed password; fails on taken username or unknown role
	CreateUser(ctx context.Context, params CreateUserParams) (*entity.UserResponse, error)

	// ListUsers returns every user ordered by id
	ListUsers(ctx context.Context) ([]entity.UserResponse, error)

	// GetUser returns one user
	GetUser(ctx context.Context, userID uint64) (*entity.UserResponse, error)

	// BlockUser disables a user; cards are not affected
	BlockUser(ctx context.Context, userID uint64) (*entity.UserResponse, error)

	// ActivateUser re-enables a user; cards are not affected
	ActivateUser(ctx context.Context, userID uint64) (*entity.UserResponse, error)

	// DeleteUser removes a user that owns no cards
	DeleteUser(ctx context.Context, userID uint64) error

	// EnsureDefaultAdmin creates the bootstrap administrator when it does not exist yet
	EnsureDefaultAdmin(ctx context.Context, username, password string) error
}
