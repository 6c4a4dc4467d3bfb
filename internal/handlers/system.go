package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	defaultVersion = "1.0.0"
	statusOK       = "ok"
	healthTimeout  = 2 * time.Second
)

// @Summary      API information
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Inventory Management Tool API",
		"version": h.version,
		"docs":    "/swagger/index.html",
	})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			h.logAndJSONError(c, http.StatusServiceUnavailable, "database unavailable", "health_db_ping_failed", err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}
