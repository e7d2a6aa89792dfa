package handlers

import (
	"bytes"
	"delivery-analytics-service/internal/adapters/export"
	"delivery-analytics-service/internal/api/dto"
	"delivery-analytics-service/internal/domain"
	"delivery-analytics-service/internal/services"
	"fmt"
	"log"
	"net/http"
	"strings"
)

const noMatchMessage = "No records match these exact criteria in the source data."

// DeliveryHandler exposes read-only dashboard queries over the dataset.
type DeliveryHandler struct {
	Dashboard *services.Dashboard
}

// Options lists the selectable values for each filter.
func (h *DeliveryHandler) Options(w http.ResponseWriter, r *http.Request) {
	opts, err := h.Dashboard.Options(r.Context())
	if err != nil {
		writeDatasetError(w, r, "dashboard options", err)
		return
	}

	res := dto.OptionsResponse{
		Weather:      opts[domain.FieldWeather],
		TrafficLevel: opts[domain.FieldTrafficLevel],
		VehicleType:  opts[domain.FieldVehicleType],
		TimeOfDay:    opts[domain.FieldTimeOfDay],
	}
	writeJSON(w, r, http.StatusOK, res)
}

// Summary returns counts, averages and the history table for a selection.
func (h *DeliveryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseCriteria(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	s, err := h.Dashboard.Summarize(r.Context(), criteria)
	if err != nil {
		writeDatasetError(w, r, "dashboard summary", err)
		return
	}

	res := dto.SummaryResponse{
		Filters:                  criteriaParams(s.Criteria),
		Count:                    s.Count,
		AvgDeliveryTimeMin:       s.AvgDeliveryTimeMin,
		AvgDistanceKm:            s.AvgDistanceKm,
		GlobalAvgDeliveryTimeMin: s.GlobalAvgDeliveryTimeMin,
		GlobalAvgDistanceKm:      s.GlobalAvgDistanceKm,
		Deliveries:               make([]dto.DeliveryRowResponse, 0, len(s.Records)),
	}
	if s.Empty() {
		res.Message = noMatchMessage
	}
	for _, rec := range s.Records {
		res.Deliveries = append(res.Deliveries, dto.DeliveryRowResponse{
			OrderID:         rec.OrderID,
			DistanceKm:      rec.DistanceKm,
			TimeOfDay:       rec.TimeOfDay,
			DeliveryTimeMin: rec.DeliveryTimeMin,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Export downloads the selected records as CSV (default) or XLSX.
func (h *DeliveryHandler) Export(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "xlsx" {
		writeError(w, r, http.StatusBadRequest, "format must be csv or xlsx")
		return
	}

	criteria, err := parseCriteria(r, "format")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	recs, err := h.Dashboard.Select(r.Context(), criteria)
	if err != nil {
		writeDatasetError(w, r, "dashboard export", err)
		return
	}

	// Buffer so an encoding failure can still produce a JSON error response.
	var buf bytes.Buffer
	contentType := "text/csv"
	if format == "xlsx" {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		err = export.WriteXLSX(&buf, export.DefaultSheet, recs)
	} else {
		err = export.WriteCSV(&buf, recs)
	}
	if err != nil {
		log.Printf("export deliveries failed: format=%s err=%v", format, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "deliveries."+format))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("write export failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}
