package main

import (
	"context"
	"database/sql"
	"delivery-analytics-service/internal/adapters/csvfile"
	"delivery-analytics-service/internal/adapters/repositories"
	"delivery-analytics-service/internal/config"
	"delivery-analytics-service/internal/platform/db"
	"delivery-analytics-service/internal/ports"
	"fmt"
	"log"
	"strings"
)

// dbtool mirrors the raw delivery CSV into a SQL database so the server can
// run with DATASET_SOURCE=sql.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	dialect, err := db.ParseDialect(cfg.DBDriver)
	if err != nil {
		log.Fatal(err)
	}

	if dialect == db.Postgres && strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(dialect, cfg.DSN())
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	csvPath := config.Get("SEED_PATH", cfg.DatasetPath)
	if err := initAndImport(context.Background(), conn, dialect, csvPath); err != nil {
		log.Fatal(err)
	}
}

func initAndImport(ctx context.Context, conn *sql.DB, dialect db.Dialect, csvPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(conn, dialect); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	log.Println("Schema ready.")

	src := csvfile.NewSource(csvPath)
	store := repositories.NewSQLDeliveryRepository(conn, dialect)
	if err := importDeliveries(ctx, src, store); err != nil {
		return fmt.Errorf("import %q: %w", csvPath, err)
	}
	log.Println("Import complete.")

	return nil
}

// importDeliveries copies the raw records of src into store unchanged.
func importDeliveries(ctx context.Context, src ports.DeliverySource, store ports.DeliveryStore) error {
	records, err := src.LoadDeliveries(ctx)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	log.Printf("Importing records=%d...", len(records))
	if err := store.ReplaceDeliveries(ctx, records); err != nil {
		return fmt.Errorf("write store: %w", err)
	}

	return nil
}
