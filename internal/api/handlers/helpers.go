package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"campus-courier-service/internal/api/dto"
	"campus-courier-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func orderResponse(order domain.Order) dto.OrderResponse {
	return dto.OrderResponse{
		OrderID:          order.OrderID,
		CustomerName:     order.CustomerName,
		PickupLocation:   order.PickupLocation,
		DeliveryLocation: order.DeliveryLocation,
		Items:            order.Items,
		Priority:         order.Priority,
		Status:           string(order.Status),
		CreatedAt:        order.CreatedAt,
		CompletedAt:      order.CompletedAt,
	}
}
