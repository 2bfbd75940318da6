package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardbank/internal/domain/usecase/auth"
	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/cardbank/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/cardbank/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var expiry = time.Date(2025, 6, 15, 11, 0, 0, 0, time.UTC)

type registrarFunc func(ctx context.Context, username, password string) (*entity.User, error)

func (f registrarFunc) Register(ctx context.Context, username, password string) (*entity.User, error) {
	return f(ctx, username, password)
}

type authFixture struct {
	users  *persistencemocks.MockUserRepository
	hasher *coremocks.MockPasswordHasher
	tokens *coremocks.MockTokenManager
}

func newAuthFixture(t *testing.T) *authFixture {
	return &authFixture{
		users:  persistencemocks.NewMockUserRepository(t),
		hasher: coremocks.NewMockPasswordHasher(t),
		tokens: coremocks.NewMockTokenManager(t),
	}
}

func (f *authFixture) useCase(registrar auth.Registrar) *auth.AuthUseCase {
	return auth.NewAuthUseCase(registrar, f.users, f.hasher, f.tokens, logger.NewNoopLogger())
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	john := &entity.User{ID: 2, Username: "john", PasswordHash: "hash", Role: entity.RoleUser, Enabled: true}

	t.Run("Success", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().GetByUsername(ctx, "john").Return(john, nil)
		f.hasher.EXPECT().Verify("secret", "hash").Return(true)
		f.tokens.EXPECT().Issue(coreport.Principal{Username: "john", Role: "USER"}).Return("jwt", expiry, nil)

		result, err := f.useCase(nil).Login(ctx, "john", "secret")

		require.NoError(t, err)
		assert.Equal(t, "jwt", result.Token)
		assert.Equal(t, expiry, result.ExpiresAt)
		assert.Equal(t, john.ToResponse(), result.User)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().GetByUsername(ctx, "ghost").Return(nil, errs.ErrUserNotFound)

		_, err := f.useCase(nil).Login(ctx, "ghost", "secret")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().GetByUsername(ctx, "john").Return(john, nil)
		f.hasher.EXPECT().Verify("nope", "hash").Return(false)

		_, err := f.useCase(nil).Login(ctx, "john", "nope")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Disabled", func(t *testing.T) {
		f := newAuthFixture(t)
		disabled := *john
		disabled.Enabled = false
		f.users.EXPECT().GetByUsername(ctx, "john").Return(&disabled, nil)
		f.hasher.EXPECT().Verify("secret", "hash").Return(true)

		_, err := f.useCase(nil).Login(ctx, "john", "secret")
		assert.ErrorIs(t, err, errs.ErrUserDisabled)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().GetByUsername(ctx, "john").Return(nil, errs.ErrDatabaseConnection)

		_, err := f.useCase(nil).Login(ctx, "john", "secret")
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})

	t.Run("TokenFailure", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().GetByUsername(ctx, "john").Return(john, nil)
		f.hasher.EXPECT().Verify("secret", "hash").Return(true)
		f.tokens.EXPECT().Issue(coreport.Principal{Username: "john", Role: "USER"}).Return("", time.Time{}, errors.New("no key"))

		_, err := f.useCase(nil).Login(ctx, "john", "secret")
		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("SignsInNewUser", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.EXPECT().Issue(coreport.Principal{Username: "bob", Role: "USER"}).Return("jwt", expiry, nil)
		registrar := registrarFunc(func(_ context.Context, username, password string) (*entity.User, error) {
			assert.Equal(t, "pw", password)
			return &entity.User{ID: 5, Username: username, Role: entity.RoleUser, Enabled: true}, nil
		})

		result, err := f.useCase(registrar).Register(ctx, "bob", "pw")

		require.NoError(t, err)
		assert.Equal(t, "jwt", result.Token)
		assert.Equal(t, uint64(5), result.User.ID)
		assert.Equal(t, entity.RoleUser, result.User.Role)
	})

	t.Run("UsernameTaken", func(t *testing.T) {
		f := newAuthFixture(t)
		registrar := registrarFunc(func(context.Context, string, string) (*entity.User, error) {
			return nil, errs.ErrUsernameTaken
		})

		_, err := f.useCase(registrar).Register(ctx, "bob", "pw")
		assert.ErrorIs(t, err, errs.ErrUsernameTaken)
	})
}
