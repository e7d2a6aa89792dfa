package ports

import (
	"context"
	"delivery-analytics-service/internal/domain"
)

// Port: a boundary for reading raw delivery records from a data source.
// Implementations return records as stored, without imputation; missing
// categorical values are "" and missing numeric values are NaN.
type DeliverySource interface {
	// Return every record in source order.
	LoadDeliveries(ctx context.Context) ([]domain.DeliveryRecord, error)
}
