package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"campus-courier-service/internal/domain"
	"campus-courier-service/internal/ports"
)

var ErrInvalidLocation = errors.New("invalid location")

// OrderRegistry owns the order set and its lifecycle. It is the single
// writer for order state: planning code receives value copies and asks
// the registry for transitions.
//
// All exported methods are safe for concurrent use. The registry hands
// out snapshots, so a plan computed from PendingOrders never observes
// orders mutating mid-computation.
type OrderRegistry struct {
	mu      sync.Mutex
	oracle  ports.LocationOracle
	repo    ports.OrderRepository
	orders  map[string]*domain.Order
	counter int
	now     func() time.Time
}

// NewOrderRegistry builds a registry validating locations against oracle.
// repo may be nil; without it orders live in memory only.
func NewOrderRegistry(oracle ports.LocationOracle, repo ports.OrderRepository) *OrderRegistry {
	return &OrderRegistry{
		oracle: oracle,
		repo:   repo,
		orders: make(map[string]*domain.Order),
		now:    time.Now,
	}
}

// Load hydrates the registry from the repository and advances the id
// counter past the highest stored id so restarts never reuse one.
func (r *OrderRegistry) Load(ctx context.Context) error {
	if r.repo == nil {
		return nil
	}

	stored, err := r.repo.ListOrders(ctx)
	if err != nil {
		return fmt.Errorf("load orders: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range stored {
		order := o
		r.orders[order.OrderID] = &order

		if seq, ok := orderSequence(order.OrderID); ok && seq > r.counter {
			r.counter = seq
		}
	}

	return nil
}

// orderSequence extracts the numeric counter from an "ORD-%04d" id.
func orderSequence(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, "ORD-")
	if !ok {
		return 0, false
	}

	seq, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return seq, true
}

// CreateOrder validates and registers a new order in Pending state and
// returns its id. Ids are "ORD-%04d", monotonically increasing per
// registry instance, never reused.
func (r *OrderRegistry) CreateOrder(ctx context.Context, customer, pickup, delivery string, items []string, priority int) (string, error) {
	if !r.oracle.HasLocation(pickup) {
		return "", fmt.Errorf("create order: %w: pickup location %q", ErrInvalidLocation, pickup)
	}
	if !r.oracle.HasLocation(delivery) {
		return "", fmt.Errorf("create order: %w: delivery location %q", ErrInvalidLocation, delivery)
	}
	if len(items) == 0 {
		return "", errors.New("create order: items must be non-empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.counter++
	order := &domain.Order{
		OrderID:          fmt.Sprintf("ORD-%04d", r.counter),
		CustomerName:     customer,
		PickupLocation:   pickup,
		DeliveryLocation: delivery,
		Items:            slices.Clone(items),
		Priority:         priority,
		Status:           domain.StatusPending,
		CreatedAt:        r.now(),
	}
	r.orders[order.OrderID] = order

	if err := r.persist(ctx, order); err != nil {
		// Roll the registration back so memory and storage stay consistent.
		delete(r.orders, order.OrderID)
		r.counter--
		return "", fmt.Errorf("create order: %w", err)
	}

	return order.OrderID, nil
}

// Order returns a copy of the order with the given id.
func (r *OrderRegistry) Order(id string) (domain.Order, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return domain.Order{}, false
	}
	return *order, true
}

// AllOrders returns a snapshot of every order, sorted by id.
func (r *OrderRegistry) AllOrders() []domain.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		out = append(out, *order)
	}
	slices.SortFunc(out, func(a, b domain.Order) int {
		return strings.Compare(a.OrderID, b.OrderID)
	})
	return out
}

// PendingOrders returns a snapshot of all Pending orders sorted by
// (priority, createdAt) descending: most urgent first, and among equal
// priorities the most recently created first.
func (r *OrderRegistry) PendingOrders() []domain.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		if order.Status == domain.StatusPending {
			out = append(out, *order)
		}
	}

	slices.SortFunc(out, func(a, b domain.Order) int {
		if a.Priority != b.Priority {
			return b.Priority - a.Priority
		}
		if a.CreatedAt.After(b.CreatedAt) {
			return -1
		}
		if b.CreatedAt.After(a.CreatedAt) {
			return 1
		}
		// Stable fallback for identical timestamps.
		return strings.Compare(b.OrderID, a.OrderID)
	})
	return out
}

// StartOrders moves every listed Pending order to InProgress.
// Unknown ids and orders in other states are skipped.
func (r *OrderRegistry) StartOrders(ctx context.Context, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range ids {
		order, ok := r.orders[id]
		if !ok || order.Status != domain.StatusPending {
			continue
		}

		order.Status = domain.StatusInProgress
		if err := r.persist(ctx, order); err != nil {
			return fmt.Errorf("start orders: %w", err)
		}
	}
	return nil
}

// CompleteOrder marks an order delivered and stamps the completion time.
// Unknown ids and already-terminal orders are no-ops.
func (r *OrderRegistry) CompleteOrder(ctx context.Context, id string) error {
	return r.finish(ctx, id, domain.StatusCompleted)
}

// CancelOrder cancels an order from any non-terminal state.
// Unknown ids and already-terminal orders are no-ops.
func (r *OrderRegistry) CancelOrder(ctx context.Context, id string) error {
	return r.finish(ctx, id, domain.StatusCancelled)
}

func (r *OrderRegistry) finish(ctx context.Context, id string, status domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok || order.Status.Terminal() {
		return nil
	}

	prior := order.Status
	done := r.now()
	order.Status = status
	order.CompletedAt = &done

	if err := r.persist(ctx, order); err != nil {
		order.Status = prior
		order.CompletedAt = nil
		return fmt.Errorf("finish order %s: %w", id, err)
	}
	return nil
}

// Statistics derives order counts per status and the completion rate.
func (r *OrderRegistry) Statistics() domain.Statistics {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := domain.Statistics{TotalOrders: len(r.orders)}
	for _, order := range r.orders {
		switch order.Status {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusInProgress:
			stats.InProgress++
		case domain.StatusCompleted:
			stats.Completed++
		case domain.StatusCancelled:
			stats.Cancelled++
		}
	}

	if stats.TotalOrders > 0 {
		stats.CompletionRate = float64(stats.Completed) / float64(stats.TotalOrders)
	}
	return stats
}

// persist writes through to the repository. Callers hold the lock.
func (r *OrderRegistry) persist(ctx context.Context, order *domain.Order) error {
	if r.repo == nil {
		return nil
	}

	if err := r.repo.SaveOrder(ctx, *order); err != nil {
		return fmt.Errorf("save order %s: %w", order.OrderID, err)
	}
	return nil
}
