package api

import (
	"delivery-analytics-service/internal/api/handlers"
	"delivery-analytics-service/internal/services"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(dashboard *services.Dashboard) http.Handler {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)

	deliveryHandler := &handlers.DeliveryHandler{Dashboard: dashboard}

	r.Get("/health", handlers.Health)
	r.Get("/options", deliveryHandler.Options)
	r.Get("/deliveries", deliveryHandler.Summary)
	r.Get("/deliveries/export", deliveryHandler.Export)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
