// Package campus carries the seed map data for the University at
// Buffalo North Campus: buildings as graph locations and walking paths
// between them as weighted edges.
package campus

import (
	"encoding/json"
	"fmt"
	"os"

	"campus-courier-service/internal/domain"
)

type seedLocation struct {
	name          string
	code          string
	coords        domain.Coordinates
	description   string
	deliveryPoint bool
}

type seedConnection struct {
	a      string
	b      string
	meters float64
}

var locations = []seedLocation{
	// Academic buildings
	{"Capen Hall", "CPN", domain.Coordinates{X: 0, Y: 0}, "Main library and student center", true},
	{"Norton Hall", "NRN", domain.Coordinates{X: 2, Y: 0}, "Engineering and sciences", true},
	{"Alumni Arena", "AA", domain.Coordinates{X: 4, Y: 2}, "Athletics and events", true},
	{"Student Union", "SU", domain.Coordinates{X: 1, Y: 1}, "Student activities center", true},
	{"Davis Hall", "DAV", domain.Coordinates{X: 3, Y: -1}, "Engineering building", true},
	{"Baldy Hall", "BLD", domain.Coordinates{X: -1, Y: 2}, "Humanities building", true},
	{"Clemens Hall", "CLE", domain.Coordinates{X: -2, Y: 0}, "Social sciences", true},
	{"O'Brian Hall", "OBR", domain.Coordinates{X: 0, Y: 3}, "Law school", true},
	{"Jacobs Management Center", "JMC", domain.Coordinates{X: 2, Y: 3}, "Business school", true},
	{"Furnas Hall", "FUR", domain.Coordinates{X: 4, Y: 0}, "Engineering labs", true},
	{"Knox Hall", "KNX", domain.Coordinates{X: -1, Y: -1}, "Natural sciences", true},
	{"Park Hall", "PRK", domain.Coordinates{X: -2, Y: 2}, "Arts and humanities", true},

	// Residence halls
	{"Ellicott Complex", "ELL", domain.Coordinates{X: 5, Y: -2}, "Residence hall complex", true},
	{"Greiner Hall", "GRN", domain.Coordinates{X: 1, Y: -3}, "Residence hall", true},
	{"Governors Complex", "GOV", domain.Coordinates{X: -3, Y: -2}, "Residence hall complex", true},

	// Dining
	{"C3 Dining Center", "C3", domain.Coordinates{X: 5, Y: -1}, "Main dining facility", true},
	{"One World Café", "OWC", domain.Coordinates{X: 1, Y: 0}, "Café and dining", true},
	{"The Cellar", "CEL", domain.Coordinates{X: 0, Y: 1}, "Basement dining area", true},

	// Other campus points
	{"UB Commons", "UBC", domain.Coordinates{X: 2, Y: 1}, "Shopping and services", true},
	{"Baird Point", "BPD", domain.Coordinates{X: -1, Y: 3}, "Outdoor gathering space", true},
	{"Center for the Arts", "CFA", domain.Coordinates{X: -2, Y: 1}, "Arts and performances", true},
}

var connections = []seedConnection{
	// Main academic area
	{"Capen Hall", "Norton Hall", 200},
	{"Capen Hall", "Student Union", 150},
	{"Capen Hall", "One World Café", 100},
	{"Capen Hall", "Baldy Hall", 180},
	{"Capen Hall", "Clemens Hall", 220},
	{"Capen Hall", "Knox Hall", 250},

	// Engineering area
	{"Norton Hall", "Davis Hall", 150},
	{"Norton Hall", "Furnas Hall", 200},
	{"Davis Hall", "Furnas Hall", 100},

	// Student life area
	{"Student Union", "One World Café", 50},
	{"Student Union", "The Cellar", 30},
	{"Student Union", "UB Commons", 80},
	{"Alumni Arena", "Student Union", 250},
	{"Alumni Arena", "Furnas Hall", 180},

	// Humanities area
	{"Baldy Hall", "Park Hall", 150},
	{"Baldy Hall", "O'Brian Hall", 200},
	{"Baldy Hall", "Baird Point", 100},
	{"Clemens Hall", "Park Hall", 180},
	{"Park Hall", "Center for the Arts", 120},

	// Professional schools
	{"O'Brian Hall", "Jacobs Management Center", 150},
	{"O'Brian Hall", "Baird Point", 80},

	// Residence halls
	{"Ellicott Complex", "C3 Dining Center", 50},
	{"Ellicott Complex", "Furnas Hall", 300},
	{"Greiner Hall", "Knox Hall", 200},
	{"Greiner Hall", "Clemens Hall", 250},
	{"Governors Complex", "Park Hall", 300},
	{"Governors Complex", "Center for the Arts", 250},

	// Dining connections
	{"C3 Dining Center", "Alumni Arena", 350},
	{"One World Café", "UB Commons", 100},
	{"The Cellar", "UB Commons", 80},

	// Cross-campus
	{"UB Commons", "Alumni Arena", 200},
	{"Baird Point", "Center for the Arts", 150},
	{"Jacobs Management Center", "Alumni Arena", 300},
}

// Default builds the built-in UB North Campus graph.
func Default() *domain.LocationGraph {
	graph := domain.NewLocationGraph()

	for _, loc := range locations {
		if err := graph.AddLocation(loc.name, loc.code, loc.coords, loc.description, loc.deliveryPoint); err != nil {
			// The seed tables are compile-time constants; a failure here is a
			// programming error in this file.
			panic(fmt.Sprintf("campus seed: %v", err))
		}
	}

	for _, conn := range connections {
		if err := graph.AddConnection(conn.a, conn.b, conn.meters); err != nil {
			panic(fmt.Sprintf("campus seed: %v", err))
		}
	}

	return graph
}

type mapSeed struct {
	Locations []struct {
		Name          string  `json:"name"`
		Code          string  `json:"code"`
		X             float64 `json:"x"`
		Y             float64 `json:"y"`
		Description   string  `json:"description"`
		DeliveryPoint bool    `json:"delivery_point"`
	} `json:"locations"`
	Connections []struct {
		From   string  `json:"from"`
		To     string  `json:"to"`
		Meters float64 `json:"meters"`
	} `json:"connections"`
}

// LoadGraph builds a location graph from a JSON map file, for campuses
// other than the built-in one.
func LoadGraph(path string) (*domain.LocationGraph, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load campus map: read %q: %w", path, err)
	}

	var seed mapSeed
	if err := json.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("load campus map: parse json: %w", err)
	}

	graph := domain.NewLocationGraph()
	for _, loc := range seed.Locations {
		coords := domain.Coordinates{X: loc.X, Y: loc.Y}
		if err := graph.AddLocation(loc.Name, loc.Code, coords, loc.Description, loc.DeliveryPoint); err != nil {
			return nil, fmt.Errorf("load campus map: %w", err)
		}
	}
	for _, conn := range seed.Connections {
		if err := graph.AddConnection(conn.From, conn.To, conn.Meters); err != nil {
			return nil, fmt.Errorf("load campus map: %w", err)
		}
	}

	return graph, nil
}
