package ports

// LocationOracle answers whether a location name is known to the campus
// map. Order intake validates pickup/delivery fields through this narrow
// boundary so the registry never depends on how the graph is built.
type LocationOracle interface {
	HasLocation(name string) bool
}
