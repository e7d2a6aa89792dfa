package domain

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/stat"
)

// Criteria selects records by exact equality on categorical fields.
// All pairs must match (logical AND); an empty Criteria matches every record.
type Criteria map[Field]string

// Dataset is the cleaned, immutable set of delivery records loaded at startup.
// It is safe for concurrent readers.
type Dataset struct {
	records                 []DeliveryRecord
	courierExperienceMedian float64
}

// NewDataset applies the fixed cleaning pass to raw records:
//   - empty Weather, Traffic_Level and Time_of_Day become Unknown;
//     whitespace-only values are kept as given
//   - NaN Courier_Experience_yrs becomes the median of the non-missing values
//
// The median is computed before any value is filled. When no record carries
// a courier experience the fill value is 0.
func NewDataset(raw []DeliveryRecord) *Dataset {
	median := courierExperienceMedian(raw)

	records := make([]DeliveryRecord, len(raw))
	for i, r := range raw {
		r.Weather = fillCategory(r.Weather)
		r.TrafficLevel = fillCategory(r.TrafficLevel)
		r.TimeOfDay = fillCategory(r.TimeOfDay)
		if math.IsNaN(r.CourierExperienceYrs) {
			r.CourierExperienceYrs = median
		}
		records[i] = r
	}

	return &Dataset{
		records:                 records,
		courierExperienceMedian: median,
	}
}

func fillCategory(v string) string {
	if v == "" {
		return Unknown
	}
	return v
}

func courierExperienceMedian(raw []DeliveryRecord) float64 {
	present := make([]float64, 0, len(raw))
	for _, r := range raw {
		if !math.IsNaN(r.CourierExperienceYrs) {
			present = append(present, r.CourierExperienceYrs)
		}
	}
	if len(present) == 0 {
		return 0
	}

	return series.Floats(present).Median()
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// Records returns a copy of all records in load order.
func (d *Dataset) Records() []DeliveryRecord {
	out := make([]DeliveryRecord, len(d.records))
	copy(out, d.records)
	return out
}

// CourierExperienceMedian returns the value used to fill missing courier experience.
func (d *Dataset) CourierExperienceMedian() float64 { return d.courierExperienceMedian }

// DistinctValues returns the sorted distinct values of a categorical field.
func (d *Dataset) DistinctValues(field Field) ([]string, error) {
	if !field.IsCategorical() {
		return nil, fmt.Errorf("distinct values %q: %w", field, ErrNotCategorical)
	}

	seen := make(map[string]struct{})
	values := make([]string, 0, 8)
	for _, r := range d.records {
		v, _ := r.Category(field)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)

	return values, nil
}

// Filter returns the records matching every pair in criteria, in load order.
// The result is never nil.
func (d *Dataset) Filter(criteria Criteria) ([]DeliveryRecord, error) {
	for f := range criteria {
		if !f.IsCategorical() {
			return nil, fmt.Errorf("filter on %q: %w", f, ErrNotCategorical)
		}
	}

	out := make([]DeliveryRecord, 0, len(d.records))
	for _, r := range d.records {
		if matches(r, criteria) {
			out = append(out, r)
		}
	}

	return out, nil
}

func matches(r DeliveryRecord, criteria Criteria) bool {
	for f, want := range criteria {
		got, _ := r.Category(f)
		if got != want {
			return false
		}
	}
	return true
}

// Aggregate returns the arithmetic mean of a numeric field over records.
// Missing (NaN) values are skipped. A selection with no values yields 0;
// callers decide whether to show it or fall back to a dataset-wide average.
func Aggregate(records []DeliveryRecord, field Field) (float64, error) {
	if !field.IsNumeric() {
		return 0, fmt.Errorf("aggregate %q: %w", field, ErrNotNumeric)
	}

	values := make([]float64, 0, len(records))
	for _, r := range records {
		if v, _ := r.Number(field); !math.IsNaN(v) {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return 0, nil
	}

	return stat.Mean(values, nil), nil
}
