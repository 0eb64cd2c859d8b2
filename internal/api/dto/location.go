package dto

type LocationResponse struct {
	Name          string  `json:"name"`
	Code          string  `json:"code"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Description   string  `json:"description"`
	DeliveryPoint bool    `json:"delivery_point"`
}

type ListLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
}
