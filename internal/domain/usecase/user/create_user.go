package user

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
	"github.com/amirhossein-jamali/cardbank/internal/domain/port/usecase"
)

// CreateUser creates a new user with a hashed password
func (u *UserUseCase) CreateUser(ctx context.Context, params usecase.CreateUserParams) (*entity.UserResponse, error) {
	user, err := u.createUser(ctx, params.Username, params.Password, params.Role)
	if err != nil {
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}

// Register creates a plain USER account; exported for the auth use case
func (u *UserUseCase) Register(ctx context.Context, username, password string) (*entity.User, error) {
	return u.createUser(ctx, username, password, string(entity.RoleUser))
}

func (u *UserUseCase) createUser(ctx context.Context, username, password, roleName string) (*entity.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", errs.ErrInvalidRequest)
	}

	exists, err := u.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", errs.ErrUsernameTaken, username)
	}

	role, err := entity.ParseRole(roleName)
	if err != nil {
		return nil, err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("%w: hash password: %v", errs.ErrInternalServer, err)
	}

	user, err := entity.NewUser(username, hash, role, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		u.logger.Error("Failed to create user", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User created", map[string]any{
		"userId":   user.ID,
		"username": user.Username,
		"role":     string(user.Role),
	})
	return user, nil
}

// EnsureDefaultAdmin creates the bootstrap administrator when absent
func (u *UserUseCase) EnsureDefaultAdmin(ctx context.Context, username, password string) error {
	if username == "" {
		return nil
	}

	exists, err := u.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		u.logger.Info("Default admin already exists", map[string]any{"username": username})
		return nil
	}

	_, err = u.createUser(ctx, username, password, string(entity.RoleAdmin))
	return err
}
