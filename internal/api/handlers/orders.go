package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"campus-courier-service/internal/api/dto"
	"campus-courier-service/internal/domain"
	"campus-courier-service/internal/services"
)

// OrderHandler exposes order intake and lifecycle endpoints.
type OrderHandler struct {
	Registry *services.OrderRegistry
}

// Collection routes: GET /orders lists, POST /orders creates.
func (h *OrderHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *OrderHandler) list(w http.ResponseWriter, r *http.Request) {
	var orders []domain.Order
	switch status := r.URL.Query().Get("status"); status {
	case "":
		orders = h.Registry.AllOrders()
	case string(domain.StatusPending):
		orders = h.Registry.PendingOrders()
	default:
		for _, order := range h.Registry.AllOrders() {
			if order.Status == domain.OrderStatus(status) {
				orders = append(orders, order)
			}
		}
	}

	res := dto.ListOrdersResponse{
		Orders: make([]dto.OrderResponse, 0, len(orders)),
	}
	for _, order := range orders {
		res.Orders = append(res.Orders, orderResponse(order))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *OrderHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequest

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

	if strings.TrimSpace(req.CustomerName) == "" {
		writeError(w, r, http.StatusBadRequest, "customer_name is required")
		return
	}
	if len(req.Items) == 0 {
		writeError(w, r, http.StatusBadRequest, "items must be non-empty")
		return
	}

	id, err := h.Registry.CreateOrder(
		r.Context(),
		req.CustomerName,
		req.PickupLocation,
		req.DeliveryLocation,
		req.Items,
		req.Priority,
	)
	if err != nil {
		if errors.Is(err, services.ErrInvalidLocation) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}

		log.Printf("create order failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.CreateOrderResponse{OrderID: id})
}

// Item routes: GET /orders/{id}, POST /orders/{id}/cancel,
// POST /orders/{id}/complete.
func (h *OrderHandler) Item(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/orders/")
	id, action, _ := strings.Cut(rest, "/")
	if id == "" {
		writeError(w, r, http.StatusNotFound, "order id required")
		return
	}

	switch action {
	case "":
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.get(w, r, id)
	case "cancel", "complete":
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.transition(w, r, id, action)
	default:
		writeError(w, r, http.StatusNotFound, "unknown order action")
	}
}

func (h *OrderHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	order, ok := h.Registry.Order(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "order not found")
		return
	}

	writeJSON(w, r, http.StatusOK, orderResponse(order))
}

func (h *OrderHandler) transition(w http.ResponseWriter, r *http.Request, id, action string) {
	if _, ok := h.Registry.Order(id); !ok {
		writeError(w, r, http.StatusNotFound, "order not found")
		return
	}

	var err error
	switch action {
	case "cancel":
		err = h.Registry.CancelOrder(r.Context(), id)
	case "complete":
		err = h.Registry.CompleteOrder(r.Context(), id)
	}
	if err != nil {
		log.Printf("%s order failed: id=%s err=%v", action, id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	order, _ := h.Registry.Order(id)
	writeJSON(w, r, http.StatusOK, orderResponse(order))
}

// Statistics reports order counts per status and the completion rate.
func (h *OrderHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	stats := h.Registry.Statistics()
	writeJSON(w, r, http.StatusOK, dto.StatisticsResponse{
		TotalOrders:    stats.TotalOrders,
		Pending:        stats.Pending,
		InProgress:     stats.InProgress,
		Completed:      stats.Completed,
		Cancelled:      stats.Cancelled,
		CompletionRate: stats.CompletionRate,
	})
}
