package main

import (
	"log"

	_ "github.com/formforge/formforge/docs"
	"github.com/formforge/formforge/internal/api/middleware"
	"github.com/formforge/formforge/internal/api/routes"
	"github.com/formforge/formforge/internal/config"
	"github.com/formforge/formforge/internal/config/db"
	"github.com/gin-gonic/gin"
)

// @title FormForge API
// @version 1.0
// @description Form builder backend: form definitions, dynamic submission validation, stats.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and run migrations
	db.Init()

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	routes.RegisterRoutes(r)

	log.Printf("Listening on :%s", config.ServerPort)
	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
