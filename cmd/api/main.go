// server/cmd/api/main.go
package main

import (
	"log"

	"hadirkoe-api-server/config"
	"hadirkoe-api-server/internal/api/routes"
	"hadirkoe-api-server/internal/database"
	"hadirkoe-api-server/internal/s3"
	"hadirkoe-api-server/internal/socket"
	"hadirkoe-api-server/internal/syncer"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load .env (optional) and configuration
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	// 2. Connect to MongoDB
	db, err := database.Connect(cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// 3. Seed the default form-options document on first run
	if err := database.SeedDefaultConfig(db); err != nil {
		log.Fatalf("Failed to seed default config: %v", err)
	}

	// 4. Blob storage for photo evidence (optional)
	var uploader *s3.Uploader
	if cfg.S3.Bucket != "" {
		uploader, err = s3.NewUploader(cfg.S3)
		if err != nil {
			log.Fatalf("Failed to create S3 uploader: %v", err)
		}
	} else {
		log.Println("S3 bucket not configured; photo uploads disabled")
	}

	// 5. External attendance sync (optional, fire-and-forget)
	var forwarder *syncer.WebhookForwarder
	if cfg.Sync.WebhookURL != "" {
		forwarder = syncer.NewWebhookForwarder(cfg.Sync.WebhookURL)
	} else {
		log.Println("Sync webhook not configured; forwarding disabled")
	}

	// 6. Live attendance feed hub
	hub := socket.NewHub()

	// 7. Router
	router := routes.SetupRouter(cfg, db, uploader, forwarder, hub)

	// 8. Start server
	log.Printf("Starting API server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
