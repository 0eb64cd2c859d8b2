package domain

import (
	"errors"
	"math"
	"testing"
)

func buildGraph(t *testing.T, names ...string) *LocationGraph {
	t.Helper()

	g := NewLocationGraph()
	for _, name := range names {
		if err := g.AddLocation(name, name[:1], Coordinates{}, "", true); err != nil {
			t.Fatalf("add location %q: %v", name, err)
		}
	}
	return g
}

func TestAddLocationRejectsDuplicates(t *testing.T) {
	g := buildGraph(t, "Capen Hall")

	err := g.AddLocation("Capen Hall", "CPN", Coordinates{}, "", true)
	if !errors.Is(err, ErrDuplicateLocation) {
		t.Fatalf("expected ErrDuplicateLocation, got %v", err)
	}
}

func TestAddConnectionValidation(t *testing.T) {
	g := buildGraph(t, "A", "B")

	if err := g.AddConnection("A", "Nowhere", 10); !errors.Is(err, ErrUnknownLocation) {
		t.Fatalf("expected ErrUnknownLocation for bad endpoint, got %v", err)
	}

	for _, w := range []float64{0, -5, math.Inf(1), math.NaN()} {
		if err := g.AddConnection("A", "B", w); err == nil {
			t.Errorf("weight %v accepted, want error", w)
		}
	}
}

func TestConnectionsAreSymmetric(t *testing.T) {
	g := buildGraph(t, "A", "B", "C")
	if err := g.AddConnection("A", "B", 12.5); err != nil {
		t.Fatalf("add connection: %v", err)
	}
	if err := g.AddConnection("B", "C", 7); err != nil {
		t.Fatalf("add connection: %v", err)
	}

	for _, pair := range [][2]string{{"A", "B"}, {"B", "C"}} {
		fwd, okFwd := g.Distance(pair[0], pair[1])
		rev, okRev := g.Distance(pair[1], pair[0])
		if !okFwd || !okRev {
			t.Fatalf("edge %v missing a direction", pair)
		}
		if fwd != rev {
			t.Errorf("edge %v asymmetric: %v vs %v", pair, fwd, rev)
		}
	}
}

func TestNeighborsReturnsCopy(t *testing.T) {
	g := buildGraph(t, "A", "B")
	if err := g.AddConnection("A", "B", 10); err != nil {
		t.Fatalf("add connection: %v", err)
	}

	n := g.Neighbors("A")
	n["B"] = 999

	if w, _ := g.Distance("A", "B"); w != 10 {
		t.Fatalf("graph mutated through Neighbors result: %v", w)
	}

	if got := g.Neighbors("unknown"); len(got) != 0 {
		t.Fatalf("unknown location neighbors = %v, want empty", got)
	}
}

func TestDistanceIsDirectEdgeOnly(t *testing.T) {
	g := buildGraph(t, "A", "B", "C")
	if err := g.AddConnection("A", "B", 10); err != nil {
		t.Fatalf("add connection: %v", err)
	}
	if err := g.AddConnection("B", "C", 5); err != nil {
		t.Fatalf("add connection: %v", err)
	}

	// A and C are connected through B but share no direct edge.
	if _, ok := g.Distance("A", "C"); ok {
		t.Fatal("Distance reported an indirect connection")
	}
}

func TestDeliveryPoints(t *testing.T) {
	g := NewLocationGraph()
	if err := g.AddLocation("Dorm", "D", Coordinates{}, "", true); err != nil {
		t.Fatalf("add location: %v", err)
	}
	if err := g.AddLocation("Loading Dock", "LD", Coordinates{}, "", false); err != nil {
		t.Fatalf("add location: %v", err)
	}

	pts := g.DeliveryPoints()
	if len(pts) != 1 || pts[0] != "Dorm" {
		t.Fatalf("delivery points = %v, want [Dorm]", pts)
	}

	if got := len(g.AllLocations()); got != 2 {
		t.Fatalf("all locations = %d, want 2", got)
	}
}

func TestSetCoordinates(t *testing.T) {
	g := buildGraph(t, "A")

	if err := g.SetCoordinates("A", Coordinates{X: 3, Y: 4}); err != nil {
		t.Fatalf("set coordinates: %v", err)
	}

	loc, _ := g.Location("A")
	if loc.Coordinates.X != 3 || loc.Coordinates.Y != 4 {
		t.Fatalf("coordinates = %+v, want (3,4)", loc.Coordinates)
	}

	if err := g.SetCoordinates("missing", Coordinates{}); !errors.Is(err, ErrUnknownLocation) {
		t.Fatalf("expected ErrUnknownLocation, got %v", err)
	}
}
