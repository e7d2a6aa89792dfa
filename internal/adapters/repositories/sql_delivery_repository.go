package repositories

import (
	"context"
	"database/sql"
	"delivery-analytics-service/internal/domain"
	"delivery-analytics-service/internal/platform/db"
	"delivery-analytics-service/internal/platform/obs"
	"delivery-analytics-service/internal/ports"
	"errors"
	"fmt"
	"math"
	"strings"
)

// SQL-backed mirror of the delivery dataset. It implements both the
// DeliverySource and DeliveryStore ports for Postgres and SQLite.
type SQLDeliveryRepository struct {
	DB      *sql.DB
	Dialect db.Dialect
}

var (
	_ ports.DeliverySource = (*SQLDeliveryRepository)(nil)
	_ ports.DeliveryStore  = (*SQLDeliveryRepository)(nil)
)

func NewSQLDeliveryRepository(conn *sql.DB, dialect db.Dialect) *SQLDeliveryRepository {
	return &SQLDeliveryRepository{DB: conn, Dialect: dialect}
}

// Return all mirrored records in original file order.
func (s *SQLDeliveryRepository) LoadDeliveries(ctx context.Context) (_ []domain.DeliveryRecord, err error) {
	defer obs.Time(ctx, "sql.LoadDeliveries")(&err)

	if s.DB == nil {
		return nil, errors.New("sql delivery repository: DB is nil")
	}

	query := `
	SELECT
		order_id,
		distance_km,
		weather,
		traffic_level,
		time_of_day,
		vehicle_type,
		preparation_time_min,
		courier_experience_yrs,
		delivery_time_min
	FROM deliveries
	ORDER BY row_index;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load deliveries: query deliveries table: %w", err)
	}
	defer rows.Close()

	records := make([]domain.DeliveryRecord, 0, 1024)
	for rows.Next() {
		var (
			orderID                      string
			weather, traffic, tod, vtype sql.NullString
			dist, prep, exp, delivery    sql.NullFloat64
		)
		if err := rows.Scan(&orderID, &dist, &weather, &traffic, &tod, &vtype, &prep, &exp, &delivery); err != nil {
			return nil, fmt.Errorf("load deliveries: scan row: %w", err)
		}
		records = append(records, domain.DeliveryRecord{
			OrderID:              orderID,
			DistanceKm:           fromNullFloat(dist),
			Weather:              weather.String,
			TrafficLevel:         traffic.String,
			TimeOfDay:            tod.String,
			VehicleType:          vtype.String,
			PreparationTimeMin:   fromNullFloat(prep),
			CourierExperienceYrs: fromNullFloat(exp),
			DeliveryTimeMin:      fromNullFloat(delivery),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load deliveries: row iteration: %w", err)
	}

	return records, nil
}

// Replace the mirror contents with records, keeping their order.
func (s *SQLDeliveryRepository) ReplaceDeliveries(ctx context.Context, records []domain.DeliveryRecord) (err error) {
	defer obs.Time(ctx, "sql.ReplaceDeliveries")(&err)

	if s.DB == nil {
		return errors.New("sql delivery repository: DB is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace deliveries: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM deliveries;`); err != nil {
		return fmt.Errorf("replace deliveries: clear table: %w", err)
	}

	ph := make([]string, 10)
	for i := range ph {
		ph[i] = s.Dialect.Placeholder(i + 1)
	}
	query := fmt.Sprintf(`
	INSERT INTO deliveries (
		row_index,
		order_id,
		distance_km,
		weather,
		traffic_level,
		time_of_day,
		vehicle_type,
		preparation_time_min,
		courier_experience_yrs,
		delivery_time_min
	)
	VALUES (%s);
	`, strings.Join(ph, ", "))

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("replace deliveries: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		if strings.TrimSpace(r.OrderID) == "" {
			return fmt.Errorf("replace deliveries: empty order id at row %d", i+1)
		}

		_, err := stmt.ExecContext(ctx,
			i,
			r.OrderID,
			toNullFloat(r.DistanceKm),
			toNullString(r.Weather),
			toNullString(r.TrafficLevel),
			toNullString(r.TimeOfDay),
			toNullString(r.VehicleType),
			toNullFloat(r.PreparationTimeMin),
			toNullFloat(r.CourierExperienceYrs),
			toNullFloat(r.DeliveryTimeMin),
		)
		if err != nil {
			return fmt.Errorf("replace deliveries: insert order_id=%s: %w", r.OrderID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace deliveries: commit tx: %w", err)
	}

	return nil
}

func toNullFloat(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: !math.IsNaN(v)}
}

func toNullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

func fromNullFloat(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}
