package dto

// TravelEstimateRequest prices either a free-form address pair or a staff
// member's trip to an event venue. CostPerMile is required in both forms.
type TravelEstimateRequest struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	EventID     string   `json:"event_id"`
	StaffID     string   `json:"staff_id"`
	CostPerMile *float64 `json:"cost_per_mile"`
}

type TravelEstimateResponse struct {
	RoundTripDistanceMiles float64 `json:"round_trip_distance_miles"`
	RoundTripCost          float64 `json:"round_trip_cost"`
}

type SetAPIKeyRequest struct {
	APIKey string `json:"api_key"`
}

type APIKeyStatusResponse struct {
	Configured bool `json:"configured"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}
