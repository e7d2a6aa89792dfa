package handlers

import (
	"delivery-analytics-service/internal/domain"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"
)

// writeJSON encodes v before any header is sent, so an unencodable value
// still yields a 500 instead of an empty 200.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
		status = http.StatusInternalServerError
		body = []byte(`{"error":"internal server error"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		log.Printf("write failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeDatasetError maps a dataset access failure to a response. A missing
// dataset is reported to the user; anything else stays internal.
func writeDatasetError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, domain.ErrDatasetNotFound) {
		writeError(w, r, http.StatusServiceUnavailable,
			"dataset not found: ensure the delivery CSV is present at the configured path")
		return
	}
	log.Printf("%s failed: %v", op, err)
	writeError(w, r, http.StatusInternalServerError, "internal server error")
}

// Query parameter names accepted as filters, mapped to dataset fields.
var filterParams = map[string]domain.Field{
	"weather":       domain.FieldWeather,
	"traffic_level": domain.FieldTrafficLevel,
	"vehicle_type":  domain.FieldVehicleType,
	"time_of_day":   domain.FieldTimeOfDay,
}

// parseCriteria builds Criteria from query parameters. Keys in allowExtra are
// skipped; any other unknown key is an error.
func parseCriteria(r *http.Request, allowExtra ...string) (domain.Criteria, error) {
	q := r.URL.Query()
	criteria := make(domain.Criteria, len(q))

	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)

outer:
	for _, k := range keys {
		for _, extra := range allowExtra {
			if k == extra {
				continue outer
			}
		}

		f, ok := filterParams[k]
		if !ok {
			return nil, fmt.Errorf("unknown filter %q", k)
		}

		values := q[k]
		if len(values) != 1 {
			return nil, fmt.Errorf("filter %q must be given once", k)
		}
		v := strings.TrimSpace(values[0])
		if v == "" {
			continue
		}
		criteria[f] = v
	}

	return criteria, nil
}

func criteriaParams(c domain.Criteria) map[string]string {
	out := make(map[string]string, len(c))
	for param, f := range filterParams {
		if v, ok := c[f]; ok {
			out[param] = v
		}
	}
	return out
}
