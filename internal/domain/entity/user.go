package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
)

// Role is the authorization role of a user
type Role string

// Roles
const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole validates a role name; matching is case-insensitive
func ParseRole(role string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(role))) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidRole, role)
	}
}

// User represents an account holder or administrator
type User struct {
	ID           uint64    // Unique identifier for the user
	Username     string    // Unique login name
	PasswordHash string    // One-way hash of the password, never exposed
	Role         Role      // USER or ADMIN
	Enabled      bool      // Disabled users cannot log in
	CreatedAt    time.Time // When the user was created
	UpdatedAt    time.Time // When the user was last updated
}

// NewUser creates a new enabled user; the password must already be hashed
func NewUser(username, passwordHash string, role Role, timeProvider coreport.TimeProvider) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", errs.ErrInvalidRequest)
	}
	if role != RoleUser && role != RoleAdmin {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidRole, role)
	}

	now := timeProvider.Now()
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		Enabled:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// SetEnabled toggles the enabled flag
func (u *User) SetEnabled(enabled bool, timeProvider coreport.TimeProvider) {
	u.Enabled = enabled
	u.UpdatedAt = timeProvider.Now()
}

// IsAdmin reports whether the user has the ADMIN role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserResponse is the client-safe projection of a user
type UserResponse struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Enabled  bool   `json:"enabled"`
}

// ToResponse converts the user to its projection
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
		Enabled:  u.Enabled,
	}
}
