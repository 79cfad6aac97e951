package main

import (
	"context"
	"log"

	"hrm-backend/internal/config"
	"hrm-backend/internal/database"
	"hrm-backend/internal/server"
	"hrm-backend/internal/storage/postgres"

	"github.com/joho/godotenv"
)

func main() {
	// Best effort: env vars win over .env values.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Database init failed: %v", err)
	}

	store := postgres.NewStore(db)
	if err := database.SeedSuperuser(context.Background(), cfg, store); err != nil {
		log.Fatalf("Superuser seed failed: %v", err)
	}

	app := server.New(cfg, store)

	log.Println("Server running on port", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
