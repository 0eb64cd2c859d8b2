package dto

type PlanRequest struct {
	StartLocation string   `json:"start_location"`
	OrderIDs      []string `json:"order_ids"`
	Start         bool     `json:"start"`
}

type LegResponse struct {
	Step       int     `json:"step"`
	From       string  `json:"from"`
	To         string  `json:"to"`
	Meters     float64 `json:"meters"`
	HeadingDeg float64 `json:"heading_deg"`
}

type PlanResponse struct {
	StartLocation    string              `json:"start_location"`
	Path             []string            `json:"path"`
	DistanceMeters   float64             `json:"distance_meters"`
	EstimatedMinutes float64             `json:"estimated_minutes"`
	OrderIDs         []string            `json:"order_ids"`
	TotalOrders      int                 `json:"total_orders"`
	StopActions      map[string][]string `json:"stop_actions"`
	Legs             []LegResponse       `json:"legs"`
	Started          bool                `json:"started"`
}
