package ports

import (
	"context"
	"delivery-analytics-service/internal/domain"
)

// Contract for writing a mirror of the raw dataset.
type DeliveryStore interface {
	// Replace the stored records with the given ones.
	ReplaceDeliveries(ctx context.Context, records []domain.DeliveryRecord) error
}
