package services

import (
	"context"
	"delivery-analytics-service/internal/domain"
	"fmt"
)

// FilterFields are the categorical fields a dashboard offers as selections.
var FilterFields = []domain.Field{
	domain.FieldWeather,
	domain.FieldTrafficLevel,
	domain.FieldVehicleType,
	domain.FieldTimeOfDay,
}

// Options holds the selectable values per filter field, derived from data.
type Options map[domain.Field][]string

// Summary is everything a front end renders for one selection.
type Summary struct {
	Criteria                 domain.Criteria
	Count                    int
	AvgDeliveryTimeMin       float64
	AvgDistanceKm            float64
	GlobalAvgDeliveryTimeMin float64
	GlobalAvgDistanceKm      float64
	Records                  []domain.DeliveryRecord
}

// Empty reports whether the selection matched no records; averages are 0 then.
func (s *Summary) Empty() bool { return s.Count == 0 }

// Dashboard answers the queries shared by every presentation front end.
type Dashboard struct {
	Loader *DatasetLoader
}

func NewDashboard(loader *DatasetLoader) *Dashboard {
	return &Dashboard{Loader: loader}
}

// Options returns the sorted distinct values of every filter field.
func (d *Dashboard) Options(ctx context.Context) (Options, error) {
	ds, err := d.Loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	out := make(Options, len(FilterFields))
	for _, f := range FilterFields {
		values, err := ds.DistinctValues(f)
		if err != nil {
			return nil, fmt.Errorf("dashboard options: %w", err)
		}
		out[f] = values
	}

	return out, nil
}

// Select returns the records matching criteria in load order.
func (d *Dashboard) Select(ctx context.Context, criteria domain.Criteria) ([]domain.DeliveryRecord, error) {
	ds, err := d.Loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	recs, err := ds.Filter(criteria)
	if err != nil {
		return nil, fmt.Errorf("dashboard select: %w", err)
	}
	return recs, nil
}

// Summarize filters the dataset and computes selection and dataset-wide averages.
func (d *Dashboard) Summarize(ctx context.Context, criteria domain.Criteria) (*Summary, error) {
	ds, err := d.Loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	recs, err := ds.Filter(criteria)
	if err != nil {
		return nil, fmt.Errorf("dashboard summarize: %w", err)
	}

	all := ds.Records()
	s := &Summary{
		Criteria: criteria,
		Count:    len(recs),
		Records:  recs,
	}

	targets := []struct {
		records []domain.DeliveryRecord
		field   domain.Field
		dst     *float64
	}{
		{recs, domain.FieldDeliveryTimeMin, &s.AvgDeliveryTimeMin},
		{recs, domain.FieldDistanceKm, &s.AvgDistanceKm},
		{all, domain.FieldDeliveryTimeMin, &s.GlobalAvgDeliveryTimeMin},
		{all, domain.FieldDistanceKm, &s.GlobalAvgDistanceKm},
	}
	for _, t := range targets {
		v, err := domain.Aggregate(t.records, t.field)
		if err != nil {
			return nil, fmt.Errorf("dashboard summarize: %w", err)
		}
		*t.dst = v
	}

	return s, nil
}
