package services

import (
	"context"
	"delivery-analytics-service/internal/domain"
	"delivery-analytics-service/internal/platform/obs"
	"delivery-analytics-service/internal/ports"
	"errors"
	"fmt"
	"log"
	"sync"
)

// DatasetLoader builds the cleaned dataset from a source exactly once.
// The first result, dataset or error, is returned to every later caller;
// the source is static for the lifetime of the process.
type DatasetLoader struct {
	source ports.DeliverySource

	once sync.Once
	ds   *domain.Dataset
	err  error
}

func NewDatasetLoader(source ports.DeliverySource) *DatasetLoader {
	return &DatasetLoader{source: source}
}

// Load returns the memoized dataset, reading the source on first use.
func (l *DatasetLoader) Load(ctx context.Context) (*domain.Dataset, error) {
	l.once.Do(func() {
		// The result outlives the first caller, so its cancellation must not leak in.
		l.ds, l.err = l.load(context.WithoutCancel(ctx))
	})
	return l.ds, l.err
}

func (l *DatasetLoader) load(ctx context.Context) (_ *domain.Dataset, err error) {
	defer obs.Time(ctx, "dataset.Load")(&err)

	if l.source == nil {
		return nil, errors.New("load dataset: source is nil")
	}

	raw, err := l.source.LoadDeliveries(ctx)
	if err != nil {
		obs.DatasetLoadFailures.Inc()
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	ds := domain.NewDataset(raw)
	obs.DatasetRecords.Set(float64(ds.Len()))
	log.Printf("dataset loaded records=%d courier_experience_median=%.2f", ds.Len(), ds.CourierExperienceMedian())

	return ds, nil
}
