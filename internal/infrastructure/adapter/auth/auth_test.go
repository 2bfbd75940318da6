package auth

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
	coremocks "github.com/amirhossein-jamali/cardbank/mocks/port/core"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newClock(t *testing.T, now time.Time) *coremocks.MockTimeProvider {
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(now).Maybe()
	return clock
}

func TestJWTRoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	m := NewJWTTokenManager("secret", "cardbank", time.Hour, newClock(t, now))

	token, expiresAt, err := m.Issue(coreport.Principal{Username: "john", Role: "USER"})
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	principal, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, coreport.Principal{Username: "john", Role: "USER"}, principal)
}

func TestJWTRejections(t *testing.T) {
	issued := time.Now().Truncate(time.Second)
	issuer := NewJWTTokenManager("secret", "cardbank", time.Minute, newClock(t, issued))
	token, _, err := issuer.Issue(coreport.Principal{Username: "john", Role: "ADMIN"})
	require.NoError(t, err)

	t.Run("Expired", func(t *testing.T) {
		later := NewJWTTokenManager("secret", "cardbank", time.Minute, newClock(t, issued.Add(2*time.Minute)))
		_, err := later.Verify(token)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewJWTTokenManager("other", "cardbank", time.Minute, newClock(t, issued))
		_, err := other.Verify(token)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("WrongIssuer", func(t *testing.T) {
		other := NewJWTTokenManager("secret", "someone-else", time.Minute, newClock(t, issued))
		_, err := other.Verify(token)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("NoneAlgorithm", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			Role: "ADMIN",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "mallory",
				Issuer:    "cardbank",
				ExpiresAt: jwt.NewNumericDate(issued.Add(time.Hour)),
			},
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = issuer.Verify(unsigned)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := issuer.Verify("not-a-token")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, h.Verify("s3cret", hash))
	assert.False(t, h.Verify("wrong", hash))
	assert.False(t, h.Verify("s3cret", "not-a-hash"))
}

func TestBcryptCostFallback(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, 12, NewBcryptHasher(12).cost)
}
