package main

import (
	"fmt"
	"os"

	"invoicetrack/internal/database"
	"invoicetrack/internal/logger"
	"invoicetrack/internal/seed"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Seed error: %v", err)
	}
}

func run() error {
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	if err := seed.Run(dbManager.DB()); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	logger.Get().Infof("Seeded demo user %s with fixture invoices", seed.DemoEmail)
	return nil
}
