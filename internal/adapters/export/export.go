package export

import (
	"delivery-analytics-service/internal/domain"
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the worksheet name used for XLSX exports.
const DefaultSheet = "Deliveries"

// Frame builds a DataFrame with one column per dataset field, in file order.
func Frame(records []domain.DeliveryRecord) dataframe.DataFrame {
	cols := make([]series.Series, 0, len(domain.Columns))
	for _, f := range domain.Columns {
		if f == domain.FieldOrderID {
			ids := make([]string, len(records))
			for i, r := range records {
				ids[i] = r.OrderID
			}
			cols = append(cols, series.New(ids, series.String, string(f)))
			continue
		}

		if f.IsCategorical() {
			vals := make([]string, len(records))
			for i, r := range records {
				vals[i], _ = r.Category(f)
			}
			cols = append(cols, series.New(vals, series.String, string(f)))
			continue
		}

		vals := make([]float64, len(records))
		for i, r := range records {
			vals[i], _ = r.Number(f)
		}
		cols = append(cols, series.New(vals, series.Float, string(f)))
	}

	return dataframe.New(cols...)
}

// WriteCSV writes records as CSV with a header row.
func WriteCSV(w io.Writer, records []domain.DeliveryRecord) error {
	df := Frame(records)
	if err := df.WriteCSV(w); err != nil {
		return fmt.Errorf("export csv: %w", err)
	}
	return nil
}

// WriteXLSX writes records to a single-sheet workbook.
func WriteXLSX(w io.Writer, sheet string, records []domain.DeliveryRecord) error {
	if sheet == "" {
		sheet = DefaultSheet
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("export xlsx: rename sheet: %w", err)
	}

	header := make([]any, len(domain.Columns))
	for i, c := range domain.Columns {
		header[i] = string(c)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("export xlsx: write header: %w", err)
	}

	for i, r := range records {
		row := []any{
			r.OrderID,
			r.DistanceKm,
			r.Weather,
			r.TrafficLevel,
			r.TimeOfDay,
			r.VehicleType,
			r.PreparationTimeMin,
			r.CourierExperienceYrs,
			r.DeliveryTimeMin,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("export xlsx: cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("export xlsx: write row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export xlsx: write workbook: %w", err)
	}

	return nil
}
