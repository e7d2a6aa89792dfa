package csvfile

import (
	"bytes"
	"context"
	"delivery-analytics-service/internal/domain"
	"delivery-analytics-service/internal/platform/obs"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// DefaultPath is the dataset file name the dashboards have always read.
const DefaultPath = "Food_Delivery_Times.csv"

// Cell values treated as missing, in addition to empty cells.
var missingTokens = []string{"", "NA", "N/A", "NaN", "nan", "null", "<nil>"}

// Source reads delivery records from a CSV file with a header row.
// Header names may carry surrounding whitespace; cell values are kept as-is.
type Source struct {
	Path string
}

func NewSource(path string) *Source {
	return &Source{Path: path}
}

// LoadDeliveries parses the whole file. Any failure to open the file is
// reported as domain.ErrDatasetNotFound.
func (s *Source) LoadDeliveries(ctx context.Context) (_ []domain.DeliveryRecord, err error) {
	defer obs.Time(ctx, "csv.LoadDeliveries")(&err)

	if strings.TrimSpace(s.Path) == "" {
		return nil, fmt.Errorf("load deliveries: %w: path is empty", domain.ErrDatasetNotFound)
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("load deliveries: %w: %v", domain.ErrDatasetNotFound, err)
	}

	// gota rejects a frame without rows, so a file holding only the header
	// is answered here as an empty dataset.
	if header, ok := headerOnly(data); ok {
		if err := checkColumns(header); err != nil {
			return nil, fmt.Errorf("load deliveries: %q: %w", s.Path, err)
		}
		return []domain.DeliveryRecord{}, nil
	}

	// Every column is read as text so padded header names cannot defeat
	// per-column typing; numeric columns are converted after renaming.
	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(missingTokens),
		dataframe.WithLazyQuotes(true),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("load deliveries: parse %q: %w", s.Path, df.Err)
	}

	names := df.Names()
	for i, n := range names {
		names[i] = strings.TrimSpace(n)
	}
	if err := df.SetNames(names...); err != nil {
		return nil, fmt.Errorf("load deliveries: trim header: %w", err)
	}

	if err := checkColumns(names); err != nil {
		return nil, fmt.Errorf("load deliveries: %q: %w", s.Path, err)
	}

	return toRecords(df), nil
}

// headerOnly reports whether data holds a single CSV row, returning its
// trimmed names.
func headerOnly(data []byte) ([]string, bool) {
	r := csv.NewReader(bytes.NewReader(data))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, false
	}
	if _, err := r.Read(); err != io.EOF {
		return nil, false
	}

	for i, n := range header {
		header[i] = strings.TrimSpace(n)
	}
	return header, true
}

func checkColumns(names []string) error {
	for _, c := range domain.Columns {
		if !hasColumn(names, string(c)) {
			return fmt.Errorf("missing column %q", c)
		}
	}
	return nil
}

func hasColumn(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func toRecords(df dataframe.DataFrame) []domain.DeliveryRecord {
	orderIDs := textColumn(df, domain.FieldOrderID)
	weather := textColumn(df, domain.FieldWeather)
	traffic := textColumn(df, domain.FieldTrafficLevel)
	timeOfDay := textColumn(df, domain.FieldTimeOfDay)
	vehicle := textColumn(df, domain.FieldVehicleType)

	distance := df.Col(string(domain.FieldDistanceKm)).Float()
	prep := df.Col(string(domain.FieldPreparationTimeMin)).Float()
	experience := df.Col(string(domain.FieldCourierExperience)).Float()
	delivery := df.Col(string(domain.FieldDeliveryTimeMin)).Float()

	out := make([]domain.DeliveryRecord, df.Nrow())
	for i := range out {
		out[i] = domain.DeliveryRecord{
			OrderID:              orderIDs[i],
			DistanceKm:           distance[i],
			Weather:              weather[i],
			TrafficLevel:         traffic[i],
			TimeOfDay:            timeOfDay[i],
			VehicleType:          vehicle[i],
			PreparationTimeMin:   prep[i],
			CourierExperienceYrs: experience[i],
			DeliveryTimeMin:      delivery[i],
		}
	}

	return out
}

// textColumn returns a string column with missing cells as "".
func textColumn(df dataframe.DataFrame, f domain.Field) []string {
	col := df.Col(string(f))
	out := make([]string, col.Len())
	for i := range out {
		e := col.Elem(i)
		if e.IsNA() {
			continue
		}
		out[i] = e.String()
	}
	return out
}
