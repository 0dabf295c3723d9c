package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/worklane/worklane-go/internal/api/middleware"
	"github.com/worklane/worklane-go/internal/api/routes"
	"github.com/worklane/worklane-go/internal/config"
	"github.com/worklane/worklane-go/internal/config/db"
	"github.com/worklane/worklane-go/internal/domain/audit"
	"github.com/worklane/worklane-go/internal/domain/contract"
	"github.com/worklane/worklane-go/internal/domain/payment"
	"github.com/worklane/worklane-go/internal/domain/user"
	"github.com/worklane/worklane-go/pkg/finance"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&user.User{},
		&contract.Contract{},
		&payment.Payment{},
		&audit.AuditLog{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Exchange rates: built-in table, optionally overridden from file
	rates := finance.DefaultRates()
	if config.RatesFile != "" {
		loaded, err := finance.LoadRates(config.RatesFile)
		if err != nil {
			log.Fatalf("Failed to load currency rates from %s: %v", config.RatesFile, err)
		}
		rates = loaded
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, db.DB, rates)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
