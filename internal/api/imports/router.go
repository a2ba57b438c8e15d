package imports

import (
	"github.com/gin-gonic/gin"
	"github.com/pokerbase/bankroll-api/internal/config"
	"github.com/pokerbase/bankroll-api/internal/loaders"
)

// RegisterRoutes wires the import feature and returns its worker pool so the
// caller can stop it on shutdown.
func RegisterRoutes(router *gin.RouterGroup, db *loaders.PostgresClient, cfg *config.Config) *WorkerPool {
	workers := NewWorkerPool(cfg.WorkerCount, cfg.QueueCapacity)

	service := NewService(db, workers, NewJobStore())
	workers.SetProcessFunc(service.ProcessImportJob)
	workers.Start()

	controller := NewController(service)
	router.POST("/imports", controller.Process)
	router.GET("/imports/:jobId", controller.Status)

	return workers
}
