package ports

import (
	"context"

	"campus-courier-service/internal/domain"
)

// Port: durable storage for orders behind the in-memory registry.
// The registry writes through on every state change and hydrates from
// ListOrders at startup.
type OrderRepository interface {
	// Insert or update a single order.
	SaveOrder(ctx context.Context, order domain.Order) error
	// Retrieve every stored order.
	ListOrders(ctx context.Context) ([]domain.Order, error)
}
