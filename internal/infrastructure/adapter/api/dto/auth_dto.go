package dto

import (
	"time"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
)

// CredentialsRequest is the body of register and login calls
type CredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued bearer token
type AuthResponse struct {
	Token     string              `json:"token"`
	TokenType string              `json:"tokenType"`
	ExpiresAt time.Time           `json:"expiresAt"`
	User      entity.UserResponse `json:"user"`
}
