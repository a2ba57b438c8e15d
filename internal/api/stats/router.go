package stats

import (
	"github.com/gin-gonic/gin"
	"github.com/pokerbase/bankroll-api/internal/loaders"
)

func RegisterRoutes(router *gin.RouterGroup, db *loaders.PostgresClient) {
	controller := NewController(db)

	router.GET("/stats", controller.List)
	router.GET("/stats/overall", controller.Overall)
}
