package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardbank/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// UserCardHandler serves a card owner's own cards. Every operation acts on
// behalf of the authenticated principal; ownership is checked by the use cases.
type UserCardHandler struct {
	cardUseCase     usecase.CardUseCase
	transferUseCase usecase.TransferUseCase
	logger          coreport.Logger
}

// NewUserCardHandler creates a new user card handler instance
func NewUserCardHandler(
	cardUseCase usecase.CardUseCase,
	transferUseCase usecase.TransferUseCase,
	logger coreport.Logger,
) *UserCardHandler {
	return &UserCardHandler{
		cardUseCase:     cardUseCase,
		transferUseCase: transferUseCase,
		logger:          logger,
	}
}

// ListCards handles GET /api/user/card?status=&page=&size=
func (h *UserCardHandler) ListCards(c *gin.Context) {
	username, ok := h.username(c)
	if !ok {
		return
	}

	var query dto.ListCardsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBadRequest(c, "Invalid query: "+err.Error())
		return
	}

	page, err := h.cardUseCase.ListUserCards(c.Request.Context(), username, query.Status,
		entity.PageRequest{Page: query.Page, Size: query.Size})
	if err != nil {
		respondError(c, h.logger, "Failed to list user cards", err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// RequestBlock handles PATCH /api/user/card/:cardId/block
func (h *UserCardHandler) RequestBlock(c *gin.Context) {
	username, ok := h.username(c)
	if !ok {
		return
	}
	cardID, ok := pathID(c, "cardId")
	if !ok {
		return
	}

	card, err := h.cardUseCase.RequestBlockCard(c.Request.Context(), username, cardID)
	if err != nil {
		respondError(c, h.logger, "Failed to block own card", err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// Transfer handles POST /api/user/card/transfer
func (h *UserCardHandler) Transfer(c *gin.Context) {
	username, ok := h.username(c)
	if !ok {
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	receipt, err := h.transferUseCase.Transfer(c.Request.Context(), username, usecase.TransferRequest{
		FromCardID: req.FromCardID,
		ToCardID:   req.ToCardID,
		Amount:     string(req.Amount),
	})
	if err != nil {
		respondError(c, h.logger, "Transfer rejected", err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// GetBalance handles GET /api/user/card/:cardId/balance
func (h *UserCardHandler) GetBalance(c *gin.Context) {
	username, ok := h.username(c)
	if !ok {
		return
	}
	cardID, ok := pathID(c, "cardId")
	if !ok {
		return
	}

	balance, err := h.cardUseCase.GetBalance(c.Request.Context(), username, cardID)
	if err != nil {
		respondError(c, h.logger, "Failed to get balance", err)
		return
	}
	c.JSON(http.StatusOK, balance)
}

// ListTransfers handles GET /api/user/card/:cardId/transfers
func (h *UserCardHandler) ListTransfers(c *gin.Context) {
	username, ok := h.username(c)
	if !ok {
		return
	}
	cardID, ok := pathID(c, "cardId")
	if !ok {
		return
	}

	transfers, err := h.transferUseCase.ListTransfers(c.Request.Context(), username, cardID)
	if err != nil {
		respondError(c, h.logger, "Failed to list transfers", err)
		return
	}
	c.JSON(http.StatusOK, transfers)
}

func (h *UserCardHandler) username(c *gin.Context) (string, bool) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok || principal.Username == "" {
		c.AbortWithStatus(http.StatusUnauthorized)
		return "", false
	}
	return principal.Username, true
}
