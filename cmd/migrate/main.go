package main

import (
	"log"
	"readiness-engine/internal/config"
	"readiness-engine/internal/database"
	"readiness-engine/internal/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Logger)
	defer logger.Sync()

	if err := database.RunMigrations(cfg.GetDSN(), "database/migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
}
