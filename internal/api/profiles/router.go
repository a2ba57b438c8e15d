package profiles

import (
	"github.com/gin-gonic/gin"
	"github.com/pokerbase/bankroll-api/internal/loaders"
)

func RegisterRoutes(router *gin.RouterGroup, db *loaders.PostgresClient) {
	controller := NewController(db)

	router.GET("/profiles/:userId", controller.Get)
	router.PATCH("/profiles/:userId", controller.Update)
	router.GET("/public/:username", controller.GetPublic)
}
