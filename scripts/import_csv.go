package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pokerbase/bankroll-api/internal/csvimport"
	"github.com/pokerbase/bankroll-api/internal/loaders"
	"github.com/pokerbase/bankroll-api/internal/utils"
	"go.uber.org/zap"
)

// Standalone bulk importer: feeds a PBT Bankroll CSV export straight into the
// database, bypassing the HTTP API. Useful for backfilling a user's history.
func main() {
	csvFile := flag.String("file", "export.csv", "Path to the CSV export")
	dbDSN := flag.String("db", "", "PostgreSQL DSN connection string")
	userID := flag.String("user", "", "Target user ID")
	flag.Parse()

	if *dbDSN == "" {
		fmt.Println("Error: Database DSN is required. Use -db flag")
		flag.Usage()
		os.Exit(1)
	}
	if *userID == "" {
		fmt.Println("Error: User ID is required. Use -user flag")
		flag.Usage()
		os.Exit(1)
	}

	if err := utils.InitLogger("development", "info"); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer utils.SyncLogger()
	logger := utils.Zlog

	ctx := context.Background()

	logger.Info("Reading CSV export", zap.String("file", *csvFile))
	raw, err := os.ReadFile(*csvFile)
	if err != nil {
		logger.Fatal("Failed to read CSV file", zap.Error(err))
	}

	result := csvimport.ImportSessions(string(raw))
	for _, msg := range result.Errors {
		logger.Warn("Parse error", zap.String("error", msg))
	}
	if len(result.Sessions) == 0 {
		logger.Fatal("No valid sessions found in export")
	}
	logger.Info("Parsed export",
		zap.Int("sessions", len(result.Sessions)),
		zap.Int("parseErrors", len(result.Errors)),
		zap.Int("skippedRows", result.SkippedRows))

	logger.Info("Connecting to PostgreSQL database")
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	pgClient, err := loaders.NewPostgresClient(connectCtx, *dbDSN, 4)
	cancel()
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer pgClient.Close()

	imported := 0
	failed := 0
	for i, session := range result.Sessions {
		insertCtx, insertCancel := context.WithTimeout(ctx, 10*time.Second)
		_, err := pgClient.CreateSession(insertCtx, *userID, session)
		insertCancel()
		if err != nil {
			logger.Error("Failed to persist session",
				zap.Int("session", i+1),
				zap.Error(err))
			failed++
			continue
		}
		imported++

		if imported%25 == 0 {
			logger.Info("Import progress",
				zap.Int("imported", imported),
				zap.Int("total", len(result.Sessions)))
		}
	}

	logger.Info("Import complete",
		zap.Int("imported", imported),
		zap.Int("failed", failed),
		zap.Int("parseErrors", len(result.Errors)),
		zap.Int("skippedRows", result.SkippedRows))
}
