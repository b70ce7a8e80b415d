package services

import (
	"context"
	"event-staffing-service/internal/domain"
	"event-staffing-service/internal/platform/obs"
	"event-staffing-service/internal/ports"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
)

// TravelCostEstimator prices the round trip between two addresses using
// driving distance from the routing service. It holds no mutable state.
type TravelCostEstimator struct {
	credentials ports.CredentialStore
	routing     ports.RoutingService
	staff       ports.StaffRepository
	events      ports.EventRepository
	logger      *zap.Logger
}

func NewTravelCostEstimator(
	credentials ports.CredentialStore,
	routing ports.RoutingService,
	staff ports.StaffRepository,
	events ports.EventRepository,
	logger *zap.Logger,
) *TravelCostEstimator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TravelCostEstimator{
		credentials: credentials,
		routing:     routing,
		staff:       staff,
		events:      events,
		logger:      logger,
	}
}

// Estimate validates its inputs, makes exactly one routing call, and returns
// the rounded round-trip distance and cost. Routing errors are returned
// unchanged so callers can match them with errors.As.
func (e *TravelCostEstimator) Estimate(ctx context.Context, origin, destination string, costPerMile float64) (_ domain.DistanceEstimate, err error) {
	defer obs.Time(ctx, "estimator.Estimate")(&err)

	origin = strings.TrimSpace(origin)
	destination = strings.TrimSpace(destination)
	if origin == "" || destination == "" {
		return domain.DistanceEstimate{}, domain.NewValidationError("addresses required")
	}

	if math.IsNaN(costPerMile) || math.IsInf(costPerMile, 0) || costPerMile < 0 {
		return domain.DistanceEstimate{}, domain.NewValidationError("invalid cost per mile")
	}

	key, ok := e.credential(ctx)
	if !ok {
		return domain.DistanceEstimate{}, domain.NewValidationError("missing API credential")
	}

	meters, err := e.routing.DrivingDistanceMeters(ctx, origin, destination, key)
	if err != nil {
		return domain.DistanceEstimate{}, err
	}

	return domain.NewDistanceEstimate(meters, costPerMile)
}

// EstimateForAssignment prices travel from a staff member's address to an
// event venue.
func (e *TravelCostEstimator) EstimateForAssignment(ctx context.Context, eventID, staffID string, costPerMile float64) (domain.DistanceEstimate, error) {
	if e.staff == nil || e.events == nil {
		return domain.DistanceEstimate{}, fmt.Errorf("estimate for assignment: repositories not configured")
	}

	member, err := e.staff.GetStaff(ctx, strings.TrimSpace(staffID))
	if err != nil {
		return domain.DistanceEstimate{}, fmt.Errorf("estimate for assignment: %w", err)
	}

	event, err := e.events.GetEvent(ctx, strings.TrimSpace(eventID))
	if err != nil {
		return domain.DistanceEstimate{}, fmt.Errorf("estimate for assignment: %w", err)
	}

	return e.Estimate(ctx, member.Address, event.VenueAddress, costPerMile)
}

// A storage fault reads as "no credential"; it is logged, not returned.
func (e *TravelCostEstimator) credential(ctx context.Context) (string, bool) {
	key, found, err := e.credentials.Get(ctx)
	if err != nil {
		e.logger.Warn("credential store read failed",
			zap.String("req_id", obs.RequestID(ctx)),
			zap.Error(err),
		)
		return "", false
	}
	return key, found
}
