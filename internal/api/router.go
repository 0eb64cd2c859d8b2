package api

import (
	"net/http"

	"campus-courier-service/internal/api/handlers"
	"campus-courier-service/internal/domain"
	"campus-courier-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware
// of concrete adapters).
func NewRouter(
	graph *domain.LocationGraph,
	registry *services.OrderRegistry,
	optimizer *services.RouteOptimizer,
	defaultStart string,
) http.Handler {
	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{Graph: graph, Registry: registry}
	locationHandler := &handlers.LocationHandler{Graph: graph}
	orderHandler := &handlers.OrderHandler{Registry: registry}
	planHandler := &handlers.PlanHandler{
		Optimizer:    optimizer,
		DefaultStart: defaultStart,
	}

	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/locations", locationHandler.List)
	mux.HandleFunc("/orders", orderHandler.Collection)
	mux.HandleFunc("/orders/", orderHandler.Item)
	mux.HandleFunc("/plans", planHandler.Plan)
	mux.HandleFunc("/statistics", orderHandler.Statistics)

	return loggingMiddleware(mux)
}
