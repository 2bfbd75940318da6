package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
	"github.com/amirhossein-jamali/cardbank/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/cardbank/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/cardbank/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/cardbank/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

type fixture struct {
	users   *persistencemocks.MockUserRepository
	cards   *persistencemocks.MockCardRepository
	hasher  *coremocks.MockPasswordHasher
	useCase *user.UserUseCase
}

func newFixture(t *testing.T) *fixture {
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(now).Maybe()

	f := &fixture{
		users:  persistencemocks.NewMockUserRepository(t),
		cards:  persistencemocks.NewMockCardRepository(t),
		hasher: coremocks.NewMockPasswordHasher(t),
	}
	f.useCase = user.NewUserUseCase(f.users, f.cards, f.hasher, clock, logger.NewNoopLogger())
	return f
}

func TestCreateUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.users.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil)
	f.hasher.EXPECT().Hash("s3cret").Return("hashed", nil)
	f.users.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, u *entity.User) error {
			assert.Equal(t, "hashed", u.PasswordHash)
			assert.True(t, u.Enabled)
			u.ID = 7
			return nil
		})

	resp, err := f.useCase.CreateUser(ctx, usecase.CreateUserParams{Username: "alice", Password: "s3cret", Role: "admin"})

	require.NoError(t, err)
	assert.Equal(t, entity.UserResponse{ID: 7, Username: "alice", Role: entity.RoleAdmin, Enabled: true}, *resp)
}

func TestCreateUserValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingPassword", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.useCase.CreateUser(ctx, usecase.CreateUserParams{Username: "alice"})
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("UsernameTaken", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().ExistsByUsername(ctx, "alice").Return(true, nil)

		_, err := f.useCase.CreateUser(ctx, usecase.CreateUserParams{Username: "alice", Password: "x"})
		assert.ErrorIs(t, err, errs.ErrUsernameTaken)
	})

	t.Run("UnknownRole", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil)

		_, err := f.useCase.CreateUser(ctx, usecase.CreateUserParams{Username: "alice", Password: "x", Role: "ROOT"})
		assert.ErrorIs(t, err, errs.ErrInvalidRole)
	})

	t.Run("HashFailure", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil)
		f.hasher.EXPECT().Hash("x").Return("", errors.New("cost too high"))

		_, err := f.useCase.CreateUser(ctx, usecase.CreateUserParams{Username: "alice", Password: "x", Role: "USER"})
		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}

func TestRegisterAlwaysCreatesUserRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.users.EXPECT().ExistsByUsername(ctx, "bob").Return(false, nil)
	f.hasher.EXPECT().Hash("pw").Return("hashed", nil)
	f.users.EXPECT().Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RoleUser
	})).Return(nil)

	created, err := f.useCase.Register(ctx, "bob", "pw")

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, created.Role)
}

func TestEnsureDefaultAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().ExistsByUsername(ctx, "admin").Return(false, nil).Times(2)
		f.hasher.EXPECT().Hash("admin").Return("hashed", nil)
		f.users.EXPECT().Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Role == entity.RoleAdmin && u.Username == "admin"
		})).Return(nil)

		require.NoError(t, f.useCase.EnsureDefaultAdmin(ctx, "admin", "admin"))
	})

	t.Run("Exists", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().ExistsByUsername(ctx, "admin").Return(true, nil)

		require.NoError(t, f.useCase.EnsureDefaultAdmin(ctx, "admin", "admin"))
	})

	t.Run("Disabled", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.useCase.EnsureDefaultAdmin(ctx, "", ""))
	})
}

func TestBlockAndActivateUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	stored := &entity.User{ID: 3, Username: "carol", Role: entity.RoleUser, Enabled: true}

	f.users.EXPECT().GetByID(ctx, uint64(3)).RunAndReturn(func(context.Context, uint64) (*entity.User, error) {
		copied := *stored
		return &copied, nil
	})
	f.users.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).RunAndReturn(func(_ context.Context, u *entity.User) error {
		assert.Equal(t, now, u.UpdatedAt)
		*stored = *u
		return nil
	}).Times(2)

	resp, err := f.useCase.BlockUser(ctx, 3)
	require.NoError(t, err)
	assert.False(t, resp.Enabled)

	// already disabled: no write
	resp, err = f.useCase.BlockUser(ctx, 3)
	require.NoError(t, err)
	assert.False(t, resp.Enabled)

	resp, err = f.useCase.ActivateUser(ctx, 3)
	require.NoError(t, err)
	assert.True(t, resp.Enabled)
}

func TestBlockUnknownUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.users.EXPECT().GetByID(ctx, uint64(99)).Return(nil, errs.ErrUserNotFound)

	_, err := f.useCase.BlockUser(ctx, 99)
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	carol := &entity.User{ID: 3, Username: "carol", Role: entity.RoleUser}

	t.Run("OwnsCards", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetByID(ctx, uint64(3)).Return(carol, nil)
		f.cards.EXPECT().CountByOwner(ctx, uint64(3)).Return(2, nil)

		err := f.useCase.DeleteUser(ctx, 3)
		assert.ErrorIs(t, err, errs.ErrUserHasCards)
	})

	t.Run("NoCards", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetByID(ctx, uint64(3)).Return(carol, nil)
		f.cards.EXPECT().CountByOwner(ctx, uint64(3)).Return(0, nil)
		f.users.EXPECT().Delete(ctx, uint64(3)).Return(nil)

		require.NoError(t, f.useCase.DeleteUser(ctx, 3))
	})

	t.Run("Unknown", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetByID(ctx, uint64(4)).Return(nil, errs.ErrUserNotFound)

		assert.ErrorIs(t, f.useCase.DeleteUser(ctx, 4), errs.ErrUserNotFound)
	})
}

func TestListUsers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.users.EXPECT().List(ctx).Return([]*entity.User{
		{ID: 1, Username: "admin", Role: entity.RoleAdmin, Enabled: true},
		{ID: 2, Username: "john", Role: entity.RoleUser},
	}, nil)

	users, err := f.useCase.ListUsers(ctx)

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "admin", users[0].Username)
	assert.False(t, users[1].Enabled)
}
