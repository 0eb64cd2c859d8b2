package domain

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

var (
	ErrDuplicateLocation = errors.New("duplicate location")
	ErrUnknownLocation   = errors.New("unknown location")
)

// LocationGraph is an undirected, positively weighted graph of campus
// locations. Edge weights are walking distances in meters.
//
// The graph is append-only: build it once at startup, then treat it as
// read-only. It is not synchronized; routing code only reads it.
// Disconnected components are a valid state, unreachable pairs are
// reported by the pathfinder, not here.
type LocationGraph struct {
	locations map[string]Location
	adjacency map[string]map[string]float64
}

func NewLocationGraph() *LocationGraph {
	return &LocationGraph{
		locations: make(map[string]Location),
		adjacency: make(map[string]map[string]float64),
	}
}

// AddLocation registers a new named location.
// Re-registering an existing name fails with ErrDuplicateLocation rather
// than silently overwriting, so seed data mistakes surface early.
func (g *LocationGraph) AddLocation(name, code string, coords Coordinates, description string, deliveryPoint bool) error {
	if name == "" {
		return errors.New("add location: name must be non-empty")
	}

	if _, ok := g.locations[name]; ok {
		return fmt.Errorf("add location: %w: %q", ErrDuplicateLocation, name)
	}

	g.locations[name] = Location{
		Name:          name,
		Code:          code,
		Coordinates:   coords,
		Description:   description,
		DeliveryPoint: deliveryPoint,
	}
	g.adjacency[name] = make(map[string]float64)

	return nil
}

// AddConnection records a bidirectional path between two locations.
// Both directions are written in one call, which keeps the symmetry
// invariant distance(a,b) == distance(b,a) structural.
func (g *LocationGraph) AddConnection(a, b string, meters float64) error {
	if _, ok := g.locations[a]; !ok {
		return fmt.Errorf("add connection: %w: %q", ErrUnknownLocation, a)
	}
	if _, ok := g.locations[b]; !ok {
		return fmt.Errorf("add connection: %w: %q", ErrUnknownLocation, b)
	}

	if math.IsNaN(meters) || math.IsInf(meters, 0) || meters <= 0 {
		return fmt.Errorf("add connection: %q -> %q: weight must be finite and positive, got %v", a, b, meters)
	}

	g.adjacency[a][b] = meters
	g.adjacency[b][a] = meters

	return nil
}

// Neighbors returns the adjacent locations of name with their edge weights.
// Unknown or isolated names yield an empty map, never an error.
// The returned map is a copy; callers may not mutate graph internals.
func (g *LocationGraph) Neighbors(name string) map[string]float64 {
	edges := g.adjacency[name]

	out := make(map[string]float64, len(edges))
	for to, w := range edges {
		out[to] = w
	}
	return out
}

// Distance reports the direct edge weight between a and b, if one exists.
// This is not a shortest path; use the pathfinder for that.
func (g *LocationGraph) Distance(a, b string) (float64, bool) {
	w, ok := g.adjacency[a][b]
	return w, ok
}

// Location returns the registered location record for name.
func (g *LocationGraph) Location(name string) (Location, bool) {
	loc, ok := g.locations[name]
	return loc, ok
}

// HasLocation reports whether name is registered.
// This is the location-validity oracle used by order intake.
func (g *LocationGraph) HasLocation(name string) bool {
	_, ok := g.locations[name]
	return ok
}

// SetCoordinates updates a location's planar coordinates in place.
// The one permitted mutation after registration; used when a GPS survey
// refines the seed map.
func (g *LocationGraph) SetCoordinates(name string, coords Coordinates) error {
	loc, ok := g.locations[name]
	if !ok {
		return fmt.Errorf("set coordinates: %w: %q", ErrUnknownLocation, name)
	}

	loc.Coordinates = coords
	g.locations[name] = loc
	return nil
}

// AllLocations returns every registered location name, sorted.
func (g *LocationGraph) AllLocations() []string {
	names := make([]string, 0, len(g.locations))
	for name := range g.locations {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DeliveryPoints returns the names of all locations that accept
// deliveries, sorted.
func (g *LocationGraph) DeliveryPoints() []string {
	names := make([]string, 0, len(g.locations))
	for name, loc := range g.locations {
		if loc.DeliveryPoint {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// LocationCount returns the number of registered locations.
func (g *LocationGraph) LocationCount() int { return len(g.locations) }

// ConnectionCount returns the number of undirected edges.
func (g *LocationGraph) ConnectionCount() int {
	total := 0
	for _, edges := range g.adjacency {
		total += len(edges)
	}
	return total / 2
}
