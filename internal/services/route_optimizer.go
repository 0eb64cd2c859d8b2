package services

import (
	"context"
	"math"
	"slices"

	"campus-courier-service/internal/domain"
)

// Average courier speed used for time estimates, in meters per second.
const assumedSpeedMps = 1.0

// RouteOptimizer builds a single interleaved pickup-and-delivery route
// for a set of orders using a greedy nearest-action heuristic.
//
// The heuristic minimizes immediate travel distance at each step across
// all open pickups and deliveries simultaneously. It does not attempt a
// globally optimal pickup-delivery-problem solution; callers may rely on
// precedence correctness and determinism, never on minimal distance.
type RouteOptimizer struct {
	registry   *OrderRegistry
	pathfinder *Pathfinder
}

func NewRouteOptimizer(registry *OrderRegistry, pathfinder *Pathfinder) *RouteOptimizer {
	return &RouteOptimizer{registry: registry, pathfinder: pathfinder}
}

// Aggregate description of a planned route, for API responses and the
// execution layer.
type RouteDetails struct {
	OrderIDs         []string
	TotalOrders      int
	DistanceMeters   float64
	EstimatedMinutes float64
	StopActions      map[string][]string
	Legs             []domain.LegInstruction
}

// candidate is one possible next step: travel to an order's pickup or
// delivery location.
type candidate struct {
	action domain.Action
	target string
	path   []string
	meters float64
}

// OptimizeRoute plans one route from start that picks up and delivers
// every order, pickup always preceding delivery.
//
// Each iteration scores a candidate per open order — its pickup location
// if the order has not been picked up yet, otherwise its delivery
// location — and moves to the cheapest one. Delivery only becomes a
// candidate after pickup, which makes the precedence invariant
// structural. Cost ties are broken by ascending order id.
//
// If no candidate is reachable (disconnected graph), the path built so
// far is returned as a partial plan; callers detect this by replaying
// the route against the order set.
func (o *RouteOptimizer) OptimizeRoute(ctx context.Context, start string, orders []domain.Order) ([]string, float64) {
	if len(orders) == 0 {
		return []string{start}, 0
	}

	byID := make(map[string]domain.Order, len(orders))
	remaining := make([]string, 0, len(orders))
	for _, order := range orders {
		if _, ok := byID[order.OrderID]; ok {
			continue
		}
		byID[order.OrderID] = order
		remaining = append(remaining, order.OrderID)
	}
	// Id-sorted iteration makes the tie-break deterministic.
	slices.Sort(remaining)

	pickedUp := make(map[string]struct{}, len(orders))
	path := []string{start}
	total := 0.0
	current := start

	for len(remaining) > 0 {
		best := candidate{meters: math.Inf(1)}
		found := false

		for _, id := range remaining {
			order := byID[id]

			action := domain.Action{Kind: domain.ActionPickup, OrderID: id}
			target := order.PickupLocation
			if _, ok := pickedUp[id]; ok {
				action = domain.Action{Kind: domain.ActionDeliver, OrderID: id}
				target = order.DeliveryLocation
			}

			subPath, meters := o.pathfinder.FindShortestPath(ctx, current, target)
			if len(subPath) == 0 {
				continue
			}

			// Strict less: earlier (smaller) ids win ties.
			if meters < best.meters {
				best = candidate{action: action, target: target, path: subPath, meters: meters}
				found = true
			}
		}

		if !found {
			// Nothing reachable. Return the partial plan built so far.
			break
		}

		if len(best.path) > 1 {
			path = append(path, best.path[1:]...)
		}
		total += best.meters
		current = best.target

		switch best.action.Kind {
		case domain.ActionPickup:
			pickedUp[best.action.OrderID] = struct{}{}
		case domain.ActionDeliver:
			delete(pickedUp, best.action.OrderID)
			remaining = slices.DeleteFunc(remaining, func(id string) bool {
				return id == best.action.OrderID
			})
		}
	}

	return path, total
}

// PlanDeliveryRoute resolves orderIDs to pending orders and plans a
// route for them from start.
//
// A nil orderIDs selects every pending order in registry priority order.
// Ids that are unknown or no longer pending are skipped. An empty
// resolved set yields ([start], 0) with zero-value details, not an
// error.
func (o *RouteOptimizer) PlanDeliveryRoute(ctx context.Context, start string, orderIDs []string) ([]string, float64, RouteDetails) {
	var orders []domain.Order
	if orderIDs == nil {
		orders = o.registry.PendingOrders()
	} else {
		orders = make([]domain.Order, 0, len(orderIDs))
		for _, id := range orderIDs {
			order, ok := o.registry.Order(id)
			if !ok || order.Status != domain.StatusPending {
				continue
			}
			orders = append(orders, order)
		}
	}

	if len(orders) == 0 {
		return []string{start}, 0, RouteDetails{}
	}

	path, meters := o.OptimizeRoute(ctx, start, orders)

	ids := make([]string, 0, len(orders))
	for _, order := range orders {
		ids = append(ids, order.OrderID)
	}

	details := RouteDetails{
		OrderIDs:         ids,
		TotalOrders:      len(orders),
		DistanceMeters:   meters,
		EstimatedMinutes: meters / assumedSpeedMps / 60,
		StopActions:      BuildRouteInfo(path, orders),
		Legs:             o.pathfinder.Instructions(path),
	}

	return path, meters, details
}

// StartRoute plans a route and transitions every included order from
// Pending to InProgress.
func (o *RouteOptimizer) StartRoute(ctx context.Context, start string, orderIDs []string) ([]string, float64, RouteDetails, error) {
	path, meters, details := o.PlanDeliveryRoute(ctx, start, orderIDs)

	if err := o.registry.StartOrders(ctx, details.OrderIDs); err != nil {
		return nil, 0, RouteDetails{}, err
	}

	return path, meters, details, nil
}

// DeliveredOrders reports which of the given orders a route actually
// delivers, in id order. Comparing this against the requested set
// detects partial plans from OptimizeRoute's early-termination guard.
func DeliveredOrders(path []string, orders []domain.Order) []string {
	delivered := make([]string, 0, len(orders))
	for _, actions := range BuildRouteActions(path, orders) {
		for _, action := range actions {
			if action.Kind == domain.ActionDeliver {
				delivered = append(delivered, action.OrderID)
			}
		}
	}
	slices.Sort(delivered)
	return slices.Compact(delivered)
}
