package dto

import "time"

type CreateOrderRequest struct {
	CustomerName     string   `json:"customer_name"`
	PickupLocation   string   `json:"pickup_location"`
	DeliveryLocation string   `json:"delivery_location"`
	Items            []string `json:"items"`
	Priority         int      `json:"priority"`
}

type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
}

type OrderResponse struct {
	OrderID          string     `json:"order_id"`
	CustomerName     string     `json:"customer_name"`
	PickupLocation   string     `json:"pickup_location"`
	DeliveryLocation string     `json:"delivery_location"`
	Items            []string   `json:"items"`
	Priority         int        `json:"priority"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	CompletedAt      *time.Time `json:"completed_at"`
}

type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

type StatisticsResponse struct {
	TotalOrders    int     `json:"total_orders"`
	Pending        int     `json:"pending"`
	InProgress     int     `json:"in_progress"`
	Completed      int     `json:"completed"`
	Cancelled      int     `json:"cancelled"`
	CompletionRate float64 `json:"completion_rate"`
}
