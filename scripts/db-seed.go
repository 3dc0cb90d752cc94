package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/portfolio-api/config"
	"github.com/portfolio-api/database"
)

func main() {
	reset := flag.Bool("reset", false, "delete every project before seeding")
	flag.Parse()

	log.Println("Starting database seed...")

	if err := seed(*reset); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Database seed completed successfully!")
}

// seed migrates and fills the projects table. The pool is closed before it
// returns.
func seed(reset bool) (err error) {
	config.LoadEnv()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.StoreDriver != config.StoreDriverPostgres {
		return fmt.Errorf("seeding needs STORE_DRIVER=%s, got %s", config.StoreDriverPostgres, cfg.StoreDriver)
	}

	db, err := database.Open(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := database.Close(db); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close database: %w", closeErr)
		}
	}()

	if err := database.Migrate(db); err != nil {
		return err
	}

	if reset {
		if err := database.Reset(db); err != nil {
			return err
		}
	}

	return database.Seed(db, database.FixtureProjects())
}
