package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/pokerbase/bankroll-api/internal/api"
	"github.com/pokerbase/bankroll-api/internal/config"
	"github.com/pokerbase/bankroll-api/internal/loaders"
	"github.com/pokerbase/bankroll-api/internal/utils"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	if err := utils.InitLogger(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer utils.SyncLogger()

	utils.Zlog.Info("Starting service",
		zap.String("service", cfg.ServiceName),
		zap.String("environment", cfg.Environment),
		zap.String("port", cfg.Port))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := loaders.NewPostgresClient(ctx, cfg.DatabaseURL, int32(cfg.WorkerCount*2))
	cancel()
	if err != nil {
		utils.Zlog.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	workers := api.RegisterRoutes(engine, db, cfg)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Zlog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	utils.Zlog.Info("Shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		utils.Zlog.Error("Server shutdown failed", zap.Error(err))
	}
	workers.Stop(shutdownCtx)
	utils.Zlog.Info("Stopped")
}
