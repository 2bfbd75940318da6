package user

import (
	"context"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardbank/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cardbank/internal/domain/port/usecase"
)

// UserUseCase handles user administration
type UserUseCase struct {
	userRepo     persistence.UserRepository
	cardRepo     persistence.CardRepository
	hasher       coreport.PasswordHasher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	userRepo persistence.UserRepository,
	cardRepo persistence.CardRepository,
	hasher coreport.PasswordHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		cardRepo:     cardRepo,
		hasher:       hasher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

var _ usecase.UserUseCase = (*UserUseCase)(nil)

// ListUsers returns every user ordered by id
func (u *UserUseCase) ListUsers(ctx context.Context) ([]entity.UserResponse, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]entity.UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, user.ToResponse())
	}
	return result, nil
}

// GetUser returns one user
func (u *UserUseCase) GetUser(ctx context.Context, userID uint64) (*entity.UserResponse, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}
