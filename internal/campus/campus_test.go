package campus

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSeedCounts(t *testing.T) {
	g := Default()

	if got := g.LocationCount(); got != 21 {
		t.Fatalf("locations = %d, want 21", got)
	}
	if got := g.ConnectionCount(); got != 33 {
		t.Fatalf("connections = %d, want 33", got)
	}
}

func TestDefaultSeedIsFullyReachable(t *testing.T) {
	g := Default()

	// BFS from the main hub; every seeded location must be reachable or
	// the planner can strand orders.
	const start = "Capen Hall"
	visited := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for neighbor := range g.Neighbors(current) {
			if !visited[neighbor] {
				visited[neighbor] = true
				queue = append(queue, neighbor)
			}
		}
	}

	for _, name := range g.AllLocations() {
		if !visited[name] {
			t.Errorf("location %q unreachable from %s", name, start)
		}
	}
}

func TestDefaultSeedEdgesSymmetric(t *testing.T) {
	g := Default()

	for _, name := range g.AllLocations() {
		for neighbor, meters := range g.Neighbors(name) {
			back, ok := g.Distance(neighbor, name)
			if !ok {
				t.Errorf("edge %s -> %s has no reverse", name, neighbor)
				continue
			}
			if back != meters {
				t.Errorf("edge %s <-> %s asymmetric: %v vs %v", name, neighbor, meters, back)
			}
		}
	}
}

func TestLoadGraph(t *testing.T) {
	raw := `{
		"locations": [
			{"name": "North Gate", "code": "NG", "x": 0, "y": 0, "description": "entrance", "delivery_point": false},
			{"name": "Library", "code": "LIB", "x": 1, "y": 2, "description": "main library", "delivery_point": true}
		],
		"connections": [
			{"from": "North Gate", "to": "Library", "meters": 120}
		]
	}`

	path := filepath.Join(t.TempDir(), "map.json")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write map file: %v", err)
	}

	g, err := LoadGraph(path)
	if err != nil {
		t.Fatalf("load graph: %v", err)
	}
	if g.LocationCount() != 2 || g.ConnectionCount() != 1 {
		t.Fatalf("counts = (%d, %d), want (2, 1)", g.LocationCount(), g.ConnectionCount())
	}
	if meters, ok := g.Distance("Library", "North Gate"); !ok || meters != 120 {
		t.Fatalf("distance = (%v, %v), want (120, true)", meters, ok)
	}

	pts := g.DeliveryPoints()
	if len(pts) != 1 || pts[0] != "Library" {
		t.Fatalf("delivery points = %v, want [Library]", pts)
	}
}

func TestLoadGraphErrors(t *testing.T) {
	if _, err := LoadGraph(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("missing file loaded without error")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatalf("write map file: %v", err)
	}
	if _, err := LoadGraph(path); err == nil {
		t.Fatal("malformed json loaded without error")
	}

	// Connections naming unknown locations surface the graph error.
	path = filepath.Join(t.TempDir(), "dangling.json")
	raw := `{"locations": [], "connections": [{"from": "A", "to": "B", "meters": 1}]}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write map file: %v", err)
	}
	if _, err := LoadGraph(path); err == nil {
		t.Fatal("dangling connection loaded without error")
	}
}
