package main

import (
	"log"

	"github.com/imyj1013/community-be/internal/handlers"
	"github.com/imyj1013/community-be/internal/router"
	"github.com/imyj1013/community-be/pkg/config"
	"github.com/imyj1013/community-be/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Validator and error envelope
	e.Validator = validators.NewValidator()
	e.HTTPErrorHandler = handlers.HTTPErrorHandler

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, db.Mongo, cfg)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
