package api

import (
	"github.com/gin-gonic/gin"
	"github.com/pokerbase/bankroll-api/internal/api/imports"
	"github.com/pokerbase/bankroll-api/internal/api/profiles"
	"github.com/pokerbase/bankroll-api/internal/api/sessions"
	"github.com/pokerbase/bankroll-api/internal/api/stats"
	"github.com/pokerbase/bankroll-api/internal/config"
	"github.com/pokerbase/bankroll-api/internal/loaders"
)

// RegisterRoutes mounts every feature router under /api/v1 and returns the
// import worker pool so main can drain it on shutdown.
func RegisterRoutes(engine *gin.Engine, db *loaders.PostgresClient, cfg *config.Config) *imports.WorkerPool {
	v1 := engine.Group("/api/v1")

	sessions.RegisterRoutes(v1, db)
	stats.RegisterRoutes(v1, db)
	profiles.RegisterRoutes(v1, db)
	return imports.RegisterRoutes(v1, db, cfg)
}
