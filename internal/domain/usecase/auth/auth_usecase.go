package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardbank/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cardbank/internal/domain/port/usecase"
)

// Registrar creates self-registered USER accounts
type Registrar interface {
	Register(ctx context.Context, username, password string) (*entity.User, error)
}

// AuthUseCase implements registration and login
type AuthUseCase struct {
	registrar Registrar
	userRepo  persistence.UserRepository
	hasher    coreport.PasswordHasher
	tokens    coreport.TokenManager
	logger    coreport.Logger
}

// NewAuthUseCase creates a new AuthUseCase
func NewAuthUseCase(
	registrar Registrar,
	userRepo persistence.UserRepository,
	hasher coreport.PasswordHasher,
	tokens coreport.TokenManager,
	logger coreport.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		registrar: registrar,
		userRepo:  userRepo,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
	}
}

var _ usecase.AuthUseCase = (*AuthUseCase)(nil)

// Register creates an enabled USER and signs it in. The role is never taken from the caller.
func (a *AuthUseCase) Register(ctx context.Context, username, password string) (*usecase.AuthResult, error) {
	user, err := a.registrar.Register(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return a.issue(user)
}

// Login verifies credentials and issues a token
func (a *AuthUseCase) Login(ctx context.Context, username, password string) (*usecase.AuthResult, error) {
	user, err := a.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		a.logger.Warn("Login rejected", map[string]any{"username": username, "reason": "bad password"})
		return nil, errs.ErrInvalidCredentials
	}
	if !user.Enabled {
		a.logger.Warn("Login rejected", map[string]any{"username": username, "reason": "disabled"})
		return nil, errs.ErrUserDisabled
	}

	return a.issue(user)
}

func (a *AuthUseCase) issue(user *entity.User) (*usecase.AuthResult, error) {
	token, expiresAt, err := a.tokens.Issue(coreport.Principal{Username: user.Username, Role: string(user.Role)})
	if err != nil {
		return nil, fmt.Errorf("%w: issue token: %v", errs.ErrInternalServer, err)
	}
	return &usecase.AuthResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user.ToResponse(),
	}, nil
}
