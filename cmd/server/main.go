package main

import (
	"log"

	"github.com/appdotbuilder/dating-app-website/internal/config"
	"github.com/appdotbuilder/dating-app-website/internal/db"
	"github.com/appdotbuilder/dating-app-website/internal/handler"
	"github.com/appdotbuilder/dating-app-website/internal/router"
	"github.com/appdotbuilder/dating-app-website/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Best-effort seeding: an empty store gets the default content, but a
	// failure here must not keep the server from starting.
	if err := service.NewSeedService(db.DB).Initialize(); err != nil {
		log.Printf("failed to seed default content: %v", err)
	}

	gin.SetMode(cfg.GinMode)
	api := handler.NewAPI(db.DB)
	r := router.SetupRouter(api, cfg.AllowedOrigins)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
