package dto

import "time"

type EventResponse struct {
	EventID      string    `json:"event_id"`
	ClientID     string    `json:"client_id"`
	Name         string    `json:"name"`
	VenueAddress string    `json:"venue_address"`
	StartsAt     time.Time `json:"starts_at"`
	EndsAt       time.Time `json:"ends_at"`
	GuestCount   int       `json:"guest_count"`
	Status       string    `json:"status"`
}

type ListEventsResponse struct {
	Events []EventResponse `json:"events"`
}

type AssignedStaffResponse struct {
	StaffID string `json:"staff_id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
}

type AssignmentSummaryResponse struct {
	EventID      string                  `json:"event_id"`
	EventName    string                  `json:"event_name"`
	StartsAt     time.Time               `json:"starts_at"`
	VenueAddress string                  `json:"venue_address"`
	Status       string                  `json:"status"`
	ClientID     string                  `json:"client_id"`
	ClientName   string                  `json:"client_name"`
	StaffCount   int                     `json:"staff_count"`
	Staff        []AssignedStaffResponse `json:"staff"`
}

type ListAssignmentsResponse struct {
	Assignments []AssignmentSummaryResponse `json:"assignments"`
}
