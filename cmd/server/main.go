package main

import (
	"log"

	"choppinzskys-backend/internal/api"
	"choppinzskys-backend/internal/config"
	"choppinzskys-backend/internal/database"
)

func main() {
	cfg := config.LoadConfig()

	store := database.OpenStore(cfg)
	defer store.Close()

	r := api.NewRouter(cfg, store)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
