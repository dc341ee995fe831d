package main

import (
	"medtrack/internal/config" // Custom package for configuration
	"medtrack/internal/db"     // Custom package for database migration
)

// Main function to run database migrations
func main() {
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg.DSN())      // Run the migration with the database DSN
}
