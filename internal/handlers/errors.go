package handlers

import (
	"errors"
	"net/http"

	"inventory_management/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errInternal     = "internal server error"
	errInvalidID    = "invalid product id"
	bearerChallenge = "Bearer"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err, "request_id", c.GetString(requestIDKey)}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// unauthorized aborts with 401 and a bearer challenge.
func unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", bearerChallenge)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}

// validationFailed answers 422 for input that failed binding or domain checks.
func (h *Handler) validationFailed(c *gin.Context, err error) {
	if h.log != nil {
		h.log.Infow("request_validation_failed", "path", c.FullPath(), "err", err)
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": bindingMessage(err)})
}

// respondError maps service errors onto status codes. Anything unknown is a 500.
func (h *Handler) respondError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		h.validationFailed(c, err)
	case errors.Is(err, service.ErrUsernameTaken), errors.Is(err, service.ErrSKUTaken):
		c.JSON(http.StatusConflict, gin.H{"error": conflictMessage(err)})
	case errors.Is(err, service.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrProductNotFound.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		unauthorized(c, service.ErrInvalidCredentials.Error())
	case errors.Is(err, service.ErrInvalidToken):
		unauthorized(c, service.ErrInvalidToken.Error())
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, logKey, err, kv...)
	}
}

func conflictMessage(err error) string {
	if errors.Is(err, service.ErrUsernameTaken) {
		return service.ErrUsernameTaken.Error()
	}
	return service.ErrSKUTaken.Error()
}
