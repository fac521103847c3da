package main

import (
	"number_game/internal/config" // Custom import path (Config)
	"number_game/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus"
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	database, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	if err := db.Migrate(database); err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	// Optionally seed an admin so the target number can be set right away
	if cfg.SeedAdmin() {
		if err := db.SeedAdmin(database, cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			logrus.Fatalf("admin seed failed: %v", err)
		}
	}
}
