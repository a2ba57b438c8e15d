package sessions

import (
	"github.com/gin-gonic/gin"
	"github.com/pokerbase/bankroll-api/internal/loaders"
)

func RegisterRoutes(router *gin.RouterGroup, db *loaders.PostgresClient) {
	controller := NewController(NewService(db))

	router.GET("/sessions", controller.List)
	router.POST("/sessions", controller.Create)
	router.GET("/sessions/:sessionId", controller.Get)
	router.PATCH("/sessions/:sessionId", controller.Update)
	router.DELETE("/sessions/:sessionId", controller.Delete)

	router.GET("/sessions/:sessionId/updates", controller.ListUpdates)
	router.POST("/sessions/:sessionId/updates", controller.AddUpdate)
	router.DELETE("/sessions/:sessionId/updates/:updateId", controller.DeleteUpdate)
}
