package handler

import (
	"context"
	"net/http"
	"time"

	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// PingFunc checks that the backing store is reachable
type PingFunc func(ctx context.Context) error

// HealthHandler reports liveness of the service and its store
type HealthHandler struct {
	ping         PingFunc
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewHealthHandler creates a health handler; a nil ping always reports healthy
func NewHealthHandler(ping PingFunc, tp coreport.TimeProvider, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{ping: ping, timeProvider: tp, logger: logger}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	now := h.timeProvider.Now()
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			h.logger.Warn("Health check failed", map[string]any{"error": err.Error()})
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "time": now})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "time": now})
}
