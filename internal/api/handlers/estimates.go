package handlers

import (
	"event-staffing-service/internal/api/dto"
	"event-staffing-service/internal/domain"
	"event-staffing-service/internal/services"
	"net/http"
	"strings"
)

// EstimateHandler prices staff travel.
type EstimateHandler struct {
	Estimator *services.TravelCostEstimator
}

func (h *EstimateHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req dto.TravelEstimateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.CostPerMile == nil {
		writeBadRequest(w, r, "cost_per_mile is required")
		return
	}

	byAssignment := strings.TrimSpace(req.EventID) != "" || strings.TrimSpace(req.StaffID) != ""
	byAddress := req.Origin != "" || req.Destination != ""
	if byAssignment && byAddress {
		writeBadRequest(w, r, "use either origin/destination or event_id/staff_id, not both")
		return
	}

	var (
		est domain.DistanceEstimate
		err error
	)
	if byAssignment {
		if strings.TrimSpace(req.EventID) == "" || strings.TrimSpace(req.StaffID) == "" {
			writeBadRequest(w, r, "event_id and staff_id are both required")
			return
		}
		est, err = h.Estimator.EstimateForAssignment(r.Context(), req.EventID, req.StaffID, *req.CostPerMile)
	} else {
		est, err = h.Estimator.Estimate(r.Context(), req.Origin, req.Destination, *req.CostPerMile)
	}
	if err != nil {
		writeDomainError(w, r, "estimate travel", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.TravelEstimateResponse{
		RoundTripDistanceMiles: est.RoundTripDistanceMiles,
		RoundTripCost:          est.RoundTripCost,
	})
}
