package ports

import "context"

// A computed shortest path between two named locations.
type PathResult struct {
	Path   []string
	Meters float64
}

// Port: cache for shortest-path results keyed by (origin, destination).
// The pathfinder consults it before running a search and stores every
// computed result. Cache failures must degrade to a miss, never to a
// routing error.
type PathCache interface {
	// Return the cached result and whether it was present.
	Get(ctx context.Context, origin, destination string) (PathResult, bool, error)
	// Store a computed result.
	Put(ctx context.Context, origin, destination string, result PathResult) error
}
