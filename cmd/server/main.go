package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/co2re/innovation-hub/internal/api"
	"github.com/co2re/innovation-hub/internal/db"
	"github.com/co2re/innovation-hub/internal/ingest"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Print("Loaded environment from .env")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.ApplyMigrations(ctx, pool); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	registry, err := ingest.LoadRegistry(os.Getenv("SOURCES_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load source registry: %v", err)
	}

	var fetcher ingest.Fetcher
	if os.Getenv("SCRAPER_ENGINE") == "colly" {
		fetcher = ingest.NewCollyFetcher()
	}

	pipeline := ingest.NewPipeline(db.NewStore(pool), fetcher, registry)

	srv := api.NewServer(pool, pipeline)
	log.Printf("Server starting on port %s...", port)
	if err := srv.Start(port); err != nil {
		log.Fatal(err)
	}
}
