package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates the losses ledger if it does not exist yet. One row
// per loss event; a (product, size) pair may own several rows per day.
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	lossesTableSQL := `
		CREATE TABLE IF NOT EXISTS losses (
			id UUID PRIMARY KEY,
			product TEXT NOT NULL,
			quantity INTEGER NOT NULL,
			size TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := db.Exec(ctx, lossesTableSQL); err != nil {
		return err
	}

	// Every read and the day reset filter on created_at.
	createdAtIndexSQL := `
		CREATE INDEX IF NOT EXISTS idx_losses_created_at
		ON losses (created_at)
	`
	if _, err := db.Exec(ctx, createdAtIndexSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
