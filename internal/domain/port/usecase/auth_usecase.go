package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
)

// AuthResult is returned by a successful registration or login
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      entity.UserResponse
}

// AuthUseCase handles self-registration and login
type AuthUseCase interface {
	// Register creates an enabled USER account and signs it in
	Register(ctx context.Context, username, password string) (*AuthResult, error)

	// Login checks credentials and issues a token
	Login(ctx context.Context, username, password string) (*AuthResult, error)
}
