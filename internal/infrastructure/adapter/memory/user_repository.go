package memory

import (
	"context"
	"sort"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
)

// UserRepository implements persistence.UserRepository in memory
type UserRepository struct {
	session session
}

func copyUser(u *entity.User) *entity.User {
	c := *u
	return &c
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var user *entity.User
	err := r.session.read(func(d *dataset) error {
		stored, ok := d.users[id]
		if !ok {
			return errs.ErrUserNotFound
		}
		user = copyUser(stored)
		return nil
	})
	return user, err
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var user *entity.User
	err := r.session.read(func(d *dataset) error {
		for _, stored := range d.users {
			if stored.Username == username {
				user = copyUser(stored)
				return nil
			}
		}
		return errs.ErrUserNotFound
	})
	return user, err
}

// ExistsByUsername checks whether a username is taken
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.GetByUsername(ctx, username)
	if err == nil {
		return true, nil
	}
	if err == errs.ErrUserNotFound {
		return false, nil
	}
	return false, err
}

// Create stores a new user and assigns its ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	return r.session.write(ctx, func(d *dataset) error {
		for _, stored := range d.users {
			if stored.Username == user.Username {
				return errs.ErrUsernameTaken
			}
		}
		user.ID = d.nextUserID
		d.nextUserID++
		d.users[user.ID] = copyUser(user)
		return nil
	})
}

// Update persists role and enabled flag of an existing user
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	return r.session.write(ctx, func(d *dataset) error {
		stored, ok := d.users[user.ID]
		if !ok {
			return errs.ErrUserNotFound
		}
		stored.Role = user.Role
		stored.Enabled = user.Enabled
		stored.UpdatedAt = user.UpdatedAt
		return nil
	})
}

// Delete removes a user permanently; refused while the user still owns cards
func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	return r.session.write(ctx, func(d *dataset) error {
		if _, ok := d.users[id]; !ok {
			return errs.ErrUserNotFound
		}
		for _, card := range d.cards {
			if card.OwnerID == id {
				return errs.ErrUserHasCards
			}
		}
		delete(d.users, id)
		return nil
	})
}

// List returns all users ordered by ID
func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	err := r.session.read(func(d *dataset) error {
		for _, stored := range d.users {
			users = append(users, copyUser(stored))
		}
		return nil
	})
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, err
}
