package domain

import "math"

// MetersPerMile converts routing distances (meters) to miles.
const MetersPerMile = 1609.34

// CredentialKey is the fixed name the routing API key is persisted under.
const CredentialKey = "google-maps-api-key"

// Round-trip travel for one staff member to a venue and back.
// Distance is rounded to one decimal place and cost to two.
type DistanceEstimate struct {
	RoundTripDistanceMiles float64
	RoundTripCost          float64
}

// NewDistanceEstimate derives a rounded round-trip estimate from a one-way
// driving distance. Cost is computed from the unrounded round-trip miles.
func NewDistanceEstimate(oneWayMeters float64, costPerMile float64) (DistanceEstimate, error) {
	oneWayMiles := oneWayMeters / MetersPerMile
	if math.IsNaN(oneWayMiles) || math.IsInf(oneWayMiles, 0) || oneWayMiles < 0 {
		return DistanceEstimate{}, NewValidationError("invalid distance result")
	}

	roundTripMiles := oneWayMiles * 2
	roundTripCost := roundTripMiles * costPerMile

	return DistanceEstimate{
		RoundTripDistanceMiles: Round1(roundTripMiles),
		RoundTripCost:          Round2(roundTripCost),
	}, nil
}

// Round1 rounds half away from zero at one decimal place.
func Round1(v float64) float64 { return math.Round(v*10) / 10 }

// Round2 rounds half away from zero at two decimal places.
func Round2(v float64) float64 { return math.Round(v*100) / 100 }
