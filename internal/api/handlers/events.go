package handlers

import (
	"event-staffing-service/internal/api/dto"
	"event-staffing-service/internal/domain"
	"event-staffing-service/internal/services"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// EventHandler serves event listings and the assignment board.
type EventHandler struct {
	Dashboard *services.DashboardService
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	filter, err := parseEventFilter(r.URL.Query())
	if err != nil {
		writeDomainError(w, r, "list events", err)
		return
	}

	events, err := h.Dashboard.ListEvents(r.Context(), filter)
	if err != nil {
		writeDomainError(w, r, "list events", err)
		return
	}

	res := dto.ListEventsResponse{Events: make([]dto.EventResponse, 0, len(events))}
	for _, e := range events {
		res.Events = append(res.Events, dto.EventResponse{
			EventID:      e.EventID,
			ClientID:     e.ClientID,
			Name:         e.Name,
			VenueAddress: e.VenueAddress,
			StartsAt:     e.StartsAt,
			EndsAt:       e.EndsAt,
			GuestCount:   e.GuestCount,
			Status:       string(e.Status),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *EventHandler) Assignments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	filter, err := parseEventFilter(r.URL.Query())
	if err != nil {
		writeDomainError(w, r, "list assignments", err)
		return
	}

	summaries, err := h.Dashboard.AssignmentSummaries(r.Context(), filter)
	if err != nil {
		writeDomainError(w, r, "list assignments", err)
		return
	}

	res := dto.ListAssignmentsResponse{Assignments: make([]dto.AssignmentSummaryResponse, 0, len(summaries))}
	for _, s := range summaries {
		staff := make([]dto.AssignedStaffResponse, 0, len(s.Staff))
		for _, m := range s.Staff {
			staff = append(staff, dto.AssignedStaffResponse{StaffID: m.StaffID, Name: m.Name, Role: m.Role})
		}

		res.Assignments = append(res.Assignments, dto.AssignmentSummaryResponse{
			EventID:      s.EventID,
			EventName:    s.EventName,
			StartsAt:     s.StartsAt,
			VenueAddress: s.VenueAddress,
			Status:       string(s.Status),
			ClientID:     s.ClientID,
			ClientName:   s.ClientName,
			StaffCount:   s.StaffCount(),
			Staff:        staff,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func parseEventFilter(q url.Values) (domain.EventFilter, error) {
	filter := domain.EventFilter{ClientID: strings.TrimSpace(q.Get("client_id"))}

	if raw := strings.TrimSpace(q.Get("status")); raw != "" {
		status, err := domain.ParseEventStatus(raw)
		if err != nil {
			return domain.EventFilter{}, err
		}
		filter.Status = status
	}

	for _, p := range []struct {
		name string
		dst  **time.Time
	}{
		{"from", &filter.From},
		{"to", &filter.To},
	} {
		raw := strings.TrimSpace(q.Get(p.name))
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return domain.EventFilter{}, domain.NewValidationError(p.name + " must be an RFC3339 timestamp")
		}
		*p.dst = &t
	}

	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return domain.EventFilter{}, domain.NewValidationError("to must not be before from")
	}

	return filter, nil
}
