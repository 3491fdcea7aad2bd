package main

import (
	"context"
	"log"
	"os"
	"time"

	"codejam_core/internal/platform/config"
	"codejam_core/internal/platform/database"
)

const usage = "Usage: migrate ensure | migrate reset --yes"

func main() {
	if len(os.Args) < 2 {
		log.Fatal(usage)
	}

	config.Load()

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Cannot connect to database: %v", err)
	}
	defer database.Close(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch os.Args[1] {
	case "ensure":
		if err := database.EnsureSchema(ctx, db); err != nil {
			log.Fatalf("Ensure schema failed: %v", err)
		}
		log.Println("Schema ensured successfully!")
	case "reset":
		confirm := len(os.Args) > 2 && os.Args[2] == "--yes"
		if !confirm {
			log.Fatal("Refusing to reset: this destroys all data. Re-run with --yes to confirm.")
		}
		if err := database.ResetSchema(ctx, db, confirm); err != nil {
			log.Fatalf("Reset schema failed: %v", err)
		}
		log.Println("Schema reset successfully!")
	default:
		log.Fatalf("Unknown command: %s\n%s", os.Args[1], usage)
	}
}
