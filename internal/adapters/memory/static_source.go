package memory

import (
	"context"
	"delivery-analytics-service/internal/domain"
	"sync/atomic"
)

// StaticSource serves a fixed set of raw records, or a fixed error.
// Calls counts LoadDeliveries invocations.
type StaticSource struct {
	records []domain.DeliveryRecord
	err     error
	calls   atomic.Int64
}

func NewStaticSource(records []domain.DeliveryRecord) *StaticSource {
	return &StaticSource{records: records}
}

func NewFailingSource(err error) *StaticSource {
	return &StaticSource{err: err}
}

func (s *StaticSource) LoadDeliveries(ctx context.Context) ([]domain.DeliveryRecord, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}

	out := make([]domain.DeliveryRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *StaticSource) Calls() int64 { return s.calls.Load() }
