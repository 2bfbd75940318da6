package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/amirhossein-jamali/cardbank/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// StatusForKind maps a business error kind to its HTTP status
func StatusForKind(kind domainerr.Kind) int {
	switch kind {
	case domainerr.KindNotFound:
		return http.StatusNotFound
	case domainerr.KindAccessDenied:
		return http.StatusForbidden
	case domainerr.KindInvalidAmount,
		domainerr.KindInvalidStatus,
		domainerr.KindInvalidRole,
		domainerr.KindInvalidRequest,
		domainerr.KindInsufficientBalance:
		return http.StatusBadRequest
	case domainerr.KindCardNotActive, domainerr.KindCardExpired:
		return http.StatusUnprocessableEntity
	case domainerr.KindUsernameTaken,
		domainerr.KindAlreadyBlocked,
		domainerr.KindUserHasCards,
		domainerr.KindConflict:
		return http.StatusConflict
	case domainerr.KindInvalidCredentials, domainerr.KindUserDisabled:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as an ErrorResponse. Internal failures are logged
// with full detail and reported to the client without it.
func respondError(c *gin.Context, logger coreport.Logger, message string, err error) {
	kind := domainerr.KindOf(err)
	status := StatusForKind(kind)

	fields := domainerr.LogFieldsOf(err)
	fields["method"] = c.Request.Method
	fields["path"] = c.FullPath()
	fields["status"] = status
	fields["request_id"] = coreport.RequestIDFrom(c.Request.Context())

	body := dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Kind:    string(kind),
		Message: err.Error(),
	}
	if status == http.StatusInternalServerError {
		logger.Error(message, fields)
		body.Message = "Internal server error"
	} else {
		logger.Warn(message, fields)
	}

	c.AbortWithStatusJSON(status, body)
}

// respondBadRequest rejects a malformed request before it reaches a use case
func respondBadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.CodeInvalidRequest,
		Kind:    string(domainerr.KindInvalidRequest),
		Message: message,
	})
}

// pathID parses a positive numeric path parameter
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		respondBadRequest(c, "Invalid "+name+" format")
		return 0, false
	}
	return id, true
}
