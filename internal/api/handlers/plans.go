package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"campus-courier-service/internal/api/dto"
	"campus-courier-service/internal/services"
)

type PlanHandler struct {
	Optimizer    *services.RouteOptimizer
	DefaultStart string
}

// Plan computes a delivery route for the requested orders (all pending
// ones when order_ids is absent) and optionally starts it, moving the
// included orders to in_progress.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	start := strings.TrimSpace(req.StartLocation)
	if start == "" {
		start = strings.TrimSpace(h.DefaultStart)
	}
	if start == "" {
		writeError(w, r, http.StatusBadRequest, "start_location is required")
		return
	}

	var (
		path    []string
		meters  float64
		details services.RouteDetails
		err     error
	)

	if req.Start {
		path, meters, details, err = h.Optimizer.StartRoute(r.Context(), start, req.OrderIDs)
		if err != nil {
			log.Printf("start route failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
	} else {
		path, meters, details = h.Optimizer.PlanDeliveryRoute(r.Context(), start, req.OrderIDs)
	}

	legs := make([]dto.LegResponse, 0, len(details.Legs))
	for _, leg := range details.Legs {
		legs = append(legs, dto.LegResponse{
			Step:       leg.Step,
			From:       leg.From,
			To:         leg.To,
			Meters:     leg.Meters,
			HeadingDeg: leg.HeadingDeg,
		})
	}

	res := dto.PlanResponse{
		StartLocation:    start,
		Path:             path,
		DistanceMeters:   meters,
		EstimatedMinutes: details.EstimatedMinutes,
		OrderIDs:         details.OrderIDs,
		TotalOrders:      details.TotalOrders,
		StopActions:      details.StopActions,
		Legs:             legs,
		Started:          req.Start,
	}

	writeJSON(w, r, http.StatusOK, res)
}
