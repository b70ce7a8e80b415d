package ports

import "context"

// Contract for resolving the one-way driving distance between two addresses.
type RoutingService interface {
	// Return the driving distance in meters. Failures are reported as
	// domain.TransportError, domain.ServiceError, domain.RouteUnavailableError,
	// domain.ErrMalformedResponse or domain.ErrMissingDistance.
	DrivingDistanceMeters(ctx context.Context, origin, destination, credential string) (float64, error)
}
