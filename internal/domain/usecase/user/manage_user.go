package user

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
)

// BlockUser disables a user. Cards keep their own status.
func (u *UserUseCase) BlockUser(ctx context.Context, userID uint64) (*entity.UserResponse, error) {
	return u.setEnabled(ctx, userID, false)
}

// ActivateUser re-enables a user. Cards keep their own status.
func (u *UserUseCase) ActivateUser(ctx context.Context, userID uint64) (*entity.UserResponse, error) {
	return u.setEnabled(ctx, userID, true)
}

func (u *UserUseCase) setEnabled(ctx context.Context, userID uint64, enabled bool) (*entity.UserResponse, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Enabled != enabled {
		user.SetEnabled(enabled, u.timeProvider)
		if err := u.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
		u.logger.Info("User enabled flag changed", map[string]any{
			"userId":  userID,
			"enabled": enabled,
		})
	}

	resp := user.ToResponse()
	return &resp, nil
}

// DeleteUser removes a user. A user who still owns cards cannot be deleted;
// the cards have to be deleted first.
func (u *UserUseCase) DeleteUser(ctx context.Context, userID uint64) error {
	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	owned, err := u.cardRepo.CountByOwner(ctx, userID)
	if err != nil {
		return err
	}
	if owned > 0 {
		return fmt.Errorf("%w: %d card(s)", errs.ErrUserHasCards, owned)
	}

	if err := u.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	u.logger.Info("User deleted", map[string]any{"userId": userID})
	return nil
}
