package scripts

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the scripts feature under /api/v1.
func RegisterRoutes(router *gin.Engine, svc *Service) {
	ctl := NewController(svc)

	group := router.Group("/api/v1/scripts")
	{
		group.POST("", ctl.Generate)
		group.GET("/recent", ctl.Recent)
	}
}
