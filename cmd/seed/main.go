package main

import (
	"context"
	"log"
	"time"

	"career-bridge/internal/config"
	"career-bridge/internal/database/migration"
	dbpostgres "career-bridge/internal/database/postgres"
	"career-bridge/internal/database/seeder"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	runner := migration.Runner{Dir: "migrations"}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	seed := seeder.Runner{Seeders: seeder.Defaults()}
	if err := seed.Run(ctx, db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	log.Println("seeding complete")
}
