package handlers

import (
	"net/http"

	"campus-courier-service/internal/api/dto"
	"campus-courier-service/internal/domain"
)

// LocationHandler exposes the campus map as a read-only listing.
type LocationHandler struct {
	Graph *domain.LocationGraph
}

func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	names := h.Graph.AllLocations()
	res := dto.ListLocationsResponse{
		Locations: make([]dto.LocationResponse, 0, len(names)),
	}
	for _, name := range names {
		loc, ok := h.Graph.Location(name)
		if !ok {
			continue
		}
		res.Locations = append(res.Locations, dto.LocationResponse{
			Name:          loc.Name,
			Code:          loc.Code,
			X:             loc.Coordinates.X,
			Y:             loc.Coordinates.Y,
			Description:   loc.Description,
			DeliveryPoint: loc.DeliveryPoint,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
