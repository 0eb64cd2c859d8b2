package domain

import "fmt"

// ActionKind distinguishes the two things a courier can do at a stop.
// The set is closed; consumers switch exhaustively over it.
type ActionKind int

const (
	ActionPickup ActionKind = iota
	ActionDeliver
)

// A single pickup or delivery performed at a stop on a route.
type Action struct {
	Kind    ActionKind
	OrderID string
}

// String renders the action in the wire form consumed by the execution
// layer, e.g. "PICKUP:ORD-0001".
func (a Action) String() string {
	switch a.Kind {
	case ActionPickup:
		return "PICKUP:" + a.OrderID
	case ActionDeliver:
		return "DELIVER:" + a.OrderID
	default:
		return fmt.Sprintf("UNKNOWN:%s", a.OrderID)
	}
}

// One leg of a route, rendered as a navigation instruction for the
// execution layer.
type LegInstruction struct {
	Step       int
	From       string
	To         string
	Meters     float64
	HeadingDeg float64
}
