package services

import "campus-courier-service/internal/domain"

// BuildRouteActions replays a route left to right against an order set
// and records, per stop, which orders are picked up and delivered there.
//
// At each visited location every matching pickup is recorded first, then
// every delivery whose order is already aboard. An order is therefore
// never delivered at an earlier stop than its pickup, and a shared
// pickup/delivery location handles both in the same stop. Only stops
// with at least one action appear in the result; actions for a location
// are attributed to its first qualifying visit.
func BuildRouteActions(path []string, orders []domain.Order) map[string][]domain.Action {
	actions := make(map[string][]domain.Action)
	pickedUp := make(map[string]struct{}, len(orders))
	delivered := make(map[string]struct{}, len(orders))

	for _, stop := range path {
		for _, order := range orders {
			if stop != order.PickupLocation {
				continue
			}
			if _, ok := pickedUp[order.OrderID]; ok {
				continue
			}

			pickedUp[order.OrderID] = struct{}{}
			actions[stop] = append(actions[stop], domain.Action{Kind: domain.ActionPickup, OrderID: order.OrderID})
		}

		for _, order := range orders {
			if stop != order.DeliveryLocation {
				continue
			}
			if _, ok := pickedUp[order.OrderID]; !ok {
				continue
			}
			if _, ok := delivered[order.OrderID]; ok {
				continue
			}

			delivered[order.OrderID] = struct{}{}
			actions[stop] = append(actions[stop], domain.Action{Kind: domain.ActionDeliver, OrderID: order.OrderID})
		}
	}

	return actions
}

// BuildRouteInfo renders the replay as the string form consumed by the
// execution layer and API: location -> ["PICKUP:ORD-0001", ...].
func BuildRouteInfo(path []string, orders []domain.Order) map[string][]string {
	out := make(map[string][]string)
	for stop, actions := range BuildRouteActions(path, orders) {
		rendered := make([]string, 0, len(actions))
		for _, action := range actions {
			rendered = append(rendered, action.String())
		}
		out[stop] = rendered
	}
	return out
}
