package domain

// Planar campus coordinates in an arbitrary local frame.
// Used for heading estimation by navigation consumers, never for routing
// (routing distances come from graph edge weights).
type Coordinates struct {
	X float64
	Y float64
}

// A named point on the campus map.
// Locations are immutable once registered except for coordinate updates
// applied by an external GPS-sync collaborator.
type Location struct {
	Name          string
	Code          string
	Coordinates   Coordinates
	Description   string
	DeliveryPoint bool
}
