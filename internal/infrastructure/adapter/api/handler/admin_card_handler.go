package handler

import (
	"net/http"
	"strings"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardbank/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AdminCardHandler exposes card administration to ADMIN principals
type AdminCardHandler struct {
	cardUseCase usecase.CardUseCase
	logger      coreport.Logger
}

// NewAdminCardHandler creates a new admin card handler instance
func NewAdminCardHandler(cardUseCase usecase.CardUseCase, logger coreport.Logger) *AdminCardHandler {
	return &AdminCardHandler{
		cardUseCase: cardUseCase,
		logger:      logger,
	}
}

// ListCards handles GET /api/admin/cards
func (h *AdminCardHandler) ListCards(c *gin.Context) {
	var query dto.ListCardsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBadRequest(c, "Invalid query: "+err.Error())
		return
	}

	page, err := h.cardUseCase.ListAllCards(c.Request.Context(), query.Status,
		entity.PageRequest{Page: query.Page, Size: query.Size})
	if err != nil {
		respondError(c, h.logger, "Failed to list cards", err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// CreateCard handles POST /api/admin/card?username=
func (h *AdminCardHandler) CreateCard(c *gin.Context) {
	username := strings.TrimSpace(c.Query("username"))
	if username == "" {
		respondBadRequest(c, "Missing required query parameter: username")
		return
	}

	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	params := usecase.CreateCardParams{Balance: string(req.Balance)}
	if req.ExpirationDate != nil && *req.ExpirationDate != "" {
		date, err := entity.ParseDate(*req.ExpirationDate)
		if err != nil {
			respondBadRequest(c, "expirationDate must be YYYY-MM-DD")
			return
		}
		params.ExpirationDate = date
	}

	card, err := h.cardUseCase.CreateCardForUser(c.Request.Context(), username, params)
	if err != nil {
		respondError(c, h.logger, "Failed to create card", err)
		return
	}

	c.JSON(http.StatusCreated, card)
}

// BlockCard handles PATCH /api/admin/card/:cardId/block
func (h *AdminCardHandler) BlockCard(c *gin.Context) {
	cardID, ok := pathID(c, "cardId")
	if !ok {
		return
	}

	card, err := h.cardUseCase.BlockCard(c.Request.Context(), cardID)
	if err != nil {
		respondError(c, h.logger, "Failed to block card", err)
		return
	}

	c.JSON(http.StatusOK, card)
}

// ActivateCard handles PATCH /api/admin/card/:cardId/activate
func (h *AdminCardHandler) ActivateCard(c *gin.Context) {
	cardID, ok := pathID(c, "cardId")
	if !ok {
		return
	}

	card, err := h.cardUseCase.ActivateCard(c.Request.Context(), cardID)
	if err != nil {
		respondError(c, h.logger, "Failed to activate card", err)
		return
	}

	c.JSON(http.StatusOK, card)
}

// DeleteCard handles DELETE /api/admin/card/:cardId
func (h *AdminCardHandler) DeleteCard(c *gin.Context) {
	cardID, ok := pathID(c, "cardId")
	if !ok {
		return
	}

	if err := h.cardUseCase.DeleteCard(c.Request.Context(), cardID); err != nil {
		respondError(c, h.logger, "Failed to delete card", err)
		return
	}

	c.Status(http.StatusNoContent)
}
