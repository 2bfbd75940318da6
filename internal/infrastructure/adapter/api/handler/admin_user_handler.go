package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardbank/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AdminUserHandler exposes user administration to ADMIN principals
type AdminUserHandler struct {
	userUseCase usecase.UserUseCase
	logger      coreport.Logger
}

// NewAdminUserHandler creates a new admin user handler instance
func NewAdminUserHandler(userUseCase usecase.UserUseCase, logger coreport.Logger) *AdminUserHandler {
	return &AdminUserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// ListUsers handles GET /api/admin/users
func (h *AdminUserHandler) ListUsers(c *gin.Context) {
	users, err := h.userUseCase.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "Failed to list users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /api/admin/user/:userId
func (h *AdminUserHandler) GetUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	user, err := h.userUseCase.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "Failed to get user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser handles POST /api/admin/user
func (h *AdminUserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	user, err := h.userUseCase.CreateUser(c.Request.Context(), usecase.CreateUserParams{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondError(c, h.logger, "Failed to create user", err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// BlockUser handles PATCH /api/admin/user/:userId/block
func (h *AdminUserHandler) BlockUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	user, err := h.userUseCase.BlockUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "Failed to block user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ActivateUser handles PATCH /api/admin/user/:userId/activate
func (h *AdminUserHandler) ActivateUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	user, err := h.userUseCase.ActivateUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "Failed to activate user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /api/admin/user/:userId
func (h *AdminUserHandler) DeleteUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	if err := h.userUseCase.DeleteUser(c.Request.Context(), userID); err != nil {
		respondError(c, h.logger, "Failed to delete user", err)
		return
	}
	c.Status(http.StatusNoContent)
}
