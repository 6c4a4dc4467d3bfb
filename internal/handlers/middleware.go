package handlers

import (
	"strings"
	"time"

	"inventory_management/internal/models"
	"inventory_management/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// gin.Context keys.
const (
	userKey      = "user"
	requestIDKey = "requestId"
)

const requestIDHeader = "X-Request-ID"

const (
	errMissingAuthHeader = "missing Authorization header"
	errBadAuthHeader     = "invalid Authorization header format"
)

// userIdentity resolves the bearer token and stores the user in the context.
func (h *Handler) userIdentity(c *gin.Context) {
	token, msg := bearerToken(c)
	if token == "" {
		unauthorized(c, msg)
		return
	}

	user, err := h.services.ResolveToken(c.Request.Context(), token)
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_token_rejected", "err", err, "request_id", c.GetString(requestIDKey))
		}
		unauthorized(c, service.ErrInvalidToken.Error())
		return
	}

	c.Set(userKey, user)
	c.Next()
}

// bearerToken extracts the token from the Authorization header. Browsers
// cannot set headers on WebSocket upgrades, so those may pass ?token= instead.
func bearerToken(c *gin.Context) (string, string) {
	header := c.GetHeader("Authorization")
	if header == "" {
		if websocket.IsWebSocketUpgrade(c.Request) {
			if t := c.Query("token"); t != "" {
				return t, ""
			}
		}
		return "", errMissingAuthHeader
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errBadAuthHeader
	}
	return strings.TrimSpace(parts[1]), ""
}

// currentUser returns the user set by userIdentity.
func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	u, _ := v.(*models.User)
	return u
}

// requestID propagates X-Request-ID or assigns a fresh one.
func (h *Handler) requestID(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDKey, id)
	c.Header(requestIDHeader, id)
	c.Next()
}

func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()

	if h.log == nil {
		return
	}
	fields := []interface{}{
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
		"client_ip", c.ClientIP(),
		"request_id", c.GetString(requestIDKey),
	}
	if u := currentUser(c); u != nil {
		fields = append(fields, "user", u.Username)
	}
	h.log.Infow("http_request", fields...)
}

func (h *Handler) cors() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	origins := h.allowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			break
		}
	}
	if !cfg.AllowAllOrigins {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
