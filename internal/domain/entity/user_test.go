package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	clock := newFixedClock(t)

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser(" john ", "hash", RoleUser, clock)

		require.NoError(t, err)
		assert.Equal(t, "john", user.Username)
		assert.Equal(t, RoleUser, user.Role)
		assert.True(t, user.Enabled)
		assert.Equal(t, fixedNow, user.CreatedAt)
	})

	t.Run("Empty username", func(t *testing.T) {
		user, err := NewUser("  ", "hash", RoleUser, clock)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		assert.Nil(t, user)
	})

	t.Run("Unknown role", func(t *testing.T) {
		_, err := NewUser("john", "hash", Role("ROOT"), clock)
		assert.ErrorIs(t, err, errs.ErrInvalidRole)
	})
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	_, err = ParseRole("superuser")
	assert.ErrorIs(t, err, errs.ErrInvalidRole)
}

func TestUserToResponseOmitsHash(t *testing.T) {
	clock := newFixedClock(t)
	user, err := NewUser("john", "secret-hash", RoleAdmin, clock)
	require.NoError(t, err)
	user.ID = 4
	user.SetEnabled(false, clock)

	resp := user.ToResponse()
	assert.Equal(t, UserResponse{ID: 4, Username: "john", Role: RoleAdmin, Enabled: false}, resp)
	assert.True(t, user.IsAdmin())
}

func TestPageRequestNormalize(t *testing.T) {
	assert.Equal(t, PageRequest{Page: 0, Size: DefaultPageSize}, PageRequest{Page: -1, Size: 0}.Normalize())
	assert.Equal(t, PageRequest{Page: 2, Size: MaxPageSize}, PageRequest{Page: 2, Size: 1000}.Normalize())
	assert.Equal(t, 20, PageRequest{Page: 2, Size: 10}.Offset())
}

func TestNewPage(t *testing.T) {
	page := NewPage([]int{1, 2}, PageRequest{Page: 0, Size: 2}, 5)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(5), page.TotalItems)

	empty := NewPage[int](nil, PageRequest{Page: 0, Size: 10}, 0)
	assert.NotNil(t, empty.Items)
	assert.Equal(t, 0, empty.TotalPages)

	mapped := MapPage(page, func(v int) string { return string(rune('a' + v)) })
	assert.Equal(t, []string{"b", "c"}, mapped.Items)
}
