package repositories

import (
	"database/sql"
	"delivery-analytics-service/internal/platform/db"
	"errors"
	"fmt"
)

// Initialize the deliveries mirror schema. Imputed columns are nullable so
// the table holds the raw file; cleaning happens when the dataset is built.
func InitSchema(conn *sql.DB, dialect db.Dialect) error {
	if conn == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createDeliveriesQuery := `
	CREATE TABLE IF NOT EXISTS deliveries (
		row_index INTEGER PRIMARY KEY,
		order_id TEXT NOT NULL,
		distance_km DOUBLE PRECISION,
		weather TEXT,
		traffic_level TEXT,
		time_of_day TEXT,
		vehicle_type TEXT,
		preparation_time_min DOUBLE PRECISION,
		courier_experience_yrs DOUBLE PRECISION,
		delivery_time_min DOUBLE PRECISION
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_deliveries_weather_traffic
	ON deliveries(weather, traffic_level);
	`

	statements := []string{
		createDeliveriesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema (%s): exec statement #%d: %w", dialect, i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
