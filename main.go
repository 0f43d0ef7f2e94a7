package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"vendorbook/v/internal/api"
	"vendorbook/v/internal/config"
	"vendorbook/v/internal/database"
	"vendorbook/v/internal/migrations"
	"vendorbook/v/internal/seed"
	"vendorbook/v/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log.Printf("database path: %s", cfg.DatabaseDSN)

	db := database.Connect(cfg.DatabaseDSN)
	defer db.Close()

	migrations.Run(db)
	seed.Run(db)

	handler := api.New(store.New(db), cfg.Secret)

	log.Printf("vendorbook server starting on :%s", cfg.HTTPPort)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, handler.Router()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
