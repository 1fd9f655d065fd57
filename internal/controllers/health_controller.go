package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/promoforge/adscript/internal/store"
	"github.com/promoforge/adscript/internal/utils"
)

type HealthController struct {
	store *store.Client // nil when history is disabled
}

func NewHealthController(st *store.Client) *HealthController {
	return &HealthController{store: st}
}

// HealthCheck reports service health; the database check only applies when
// the history store is configured.
func (h *HealthController) HealthCheck(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"database":  "disabled",
			"timestamp": time.Now().UTC(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		utils.Zlog.Error("Database health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "unhealthy",
			"database":  "down",
			"timestamp": time.Now().UTC(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"database":  "up",
		"timestamp": time.Now().UTC(),
	})
}
