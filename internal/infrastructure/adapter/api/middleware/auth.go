package middleware

import (
	"net/http"
	"strings"

	domainerr "github.com/amirhossein-jamali/cardbank/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

const principalKey = "cardbank.principal"

// CurrentPrincipal returns the identity verified by Authenticate
func CurrentPrincipal(c *gin.Context) (coreport.Principal, bool) {
	value, ok := c.Get(principalKey)
	if !ok {
		return coreport.Principal{}, false
	}
	principal, ok := value.(coreport.Principal)
	return principal, ok
}

// Authenticate requires a valid "Authorization: Bearer <token>" header
func Authenticate(tokens coreport.TokenManager, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
			abortUnauthorized(c, "Missing bearer token")
			return
		}

		principal, err := tokens.Verify(strings.TrimSpace(header[7:]))
		if err != nil {
			logger.Debug("Rejected access token", map[string]any{
				"error":      err.Error(),
				"path":       c.Request.URL.Path,
				"request_id": coreport.RequestIDFrom(c.Request.Context()),
			})
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireRole lets the request through only when the principal holds one of roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := CurrentPrincipal(c)
		if !ok {
			abortUnauthorized(c, "Missing bearer token")
			return
		}
		for _, role := range roles {
			if strings.EqualFold(principal.Role, role) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
			Code:    domainerr.CodeAccessDenied,
			Kind:    string(domainerr.KindAccessDenied),
			Message: "Insufficient role",
		})
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Code:    domainerr.CodeInvalidCredentials,
		Kind:    string(domainerr.KindInvalidCredentials),
		Message: message,
	})
}
