package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	circles := api.Group("/circles")
	{
		circles.POST("/match", h.matchCircle)
		circles.GET("/stats", APIKeyAuthMiddleware(h.cfg, h.logger), h.getStats)
		circles.GET("/:id", h.getCircle)
		circles.POST("/:id/leave", h.leaveCircle)

		// История и HTTP fallback отправки
		circles.GET("/:id/messages", h.listMessages)
		circles.POST("/:id/messages", h.postMessage)
		circles.PATCH("/:id/messages/:messageId", h.editMessage)
		circles.POST("/:id/messages/:messageId/reactions", h.addReaction)
		circles.DELETE("/:id/messages/:messageId/reactions", h.removeReaction)

		// Real-time канал круга
		circles.GET("/:id/ws", h.serveWS)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
