package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/promoforge/adscript/internal/api/scripts"
	"github.com/promoforge/adscript/internal/middleware"
	"github.com/promoforge/adscript/internal/store"
)

// SetupRoutes configures all application routes
func SetupRoutes(router *gin.Engine, svc *scripts.Service, st *store.Client) {
	// Apply global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())

	// Setup route groups
	SetupHealthRoutes(router, st)
	scripts.RegisterRoutes(router, svc)
	Setup404Handler(router)
}
