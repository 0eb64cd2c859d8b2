package domain

import "time"

// Order lifecycle states. An order starts Pending, moves to InProgress
// when included in a started route, and ends in Completed or Cancelled.
// Terminal states are never left.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusInProgress OrderStatus = "in_progress"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// Terminal reports whether the status permits no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// A pickup-and-delivery order. The pickup location must be visited before
// the delivery location on any planned route.
//
// Orders are owned by the order registry, which is the only writer.
// Planning code receives value copies and signals status transitions back
// to the registry.
type Order struct {
	OrderID          string
	CustomerName     string
	PickupLocation   string
	DeliveryLocation string
	Items            []string
	Priority         int
	Status           OrderStatus
	CreatedAt        time.Time
	CompletedAt      *time.Time
}

// Counts of orders per lifecycle state plus the overall completion rate.
type Statistics struct {
	TotalOrders    int
	Pending        int
	InProgress     int
	Completed      int
	Cancelled      int
	CompletionRate float64
}
