package handlers

import (
	"net/http"

	"campus-courier-service/internal/domain"
	"campus-courier-service/internal/services"
)

// HealthHandler provides a minimal liveness check with basic system
// counts for the operations dashboard.
type HealthHandler struct {
	Graph    *domain.LocationGraph
	Registry *services.OrderRegistry
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	stats := h.Registry.Statistics()
	res := map[string]any{
		"status":      "ok",
		"locations":   h.Graph.LocationCount(),
		"connections": h.Graph.ConnectionCount(),
		"orders":      stats.TotalOrders,
	}
	writeJSON(w, r, http.StatusOK, res)
}
