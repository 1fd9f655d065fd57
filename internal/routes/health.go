package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promoforge/adscript/internal/controllers"
	"github.com/promoforge/adscript/internal/store"
)

// SetupHealthRoutes configures health check endpoints
func SetupHealthRoutes(router *gin.Engine, st *store.Client) {
	healthController := controllers.NewHealthController(st)

	// Root endpoint
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// Health check endpoint
	router.GET("/health", healthController.HealthCheck)
}
