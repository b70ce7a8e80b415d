package domain

import (
	"fmt"
	"time"
)

type EventStatus string

const (
	EventDraft     EventStatus = "draft"
	EventConfirmed EventStatus = "confirmed"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

func ParseEventStatus(s string) (EventStatus, error) {
	switch EventStatus(s) {
	case EventDraft, EventConfirmed, EventCompleted, EventCancelled:
		return EventStatus(s), nil
	default:
		return "", NewValidationError(fmt.Sprintf("unknown event status: %q", s))
	}
}

// Event is a catered function booked by a client at a venue.
type Event struct {
	EventID      string
	ClientID     string
	Name         string
	VenueAddress string
	StartsAt     time.Time
	EndsAt       time.Time
	GuestCount   int
	Status       EventStatus
}

// Validate checks the invariants persisted events must hold.
func (e *Event) Validate() error {
	if e.EventID == "" {
		return NewValidationError("event id is required")
	}
	if e.EndsAt.Before(e.StartsAt) {
		return NewValidationError(fmt.Sprintf("event %s ends before it starts", e.EventID))
	}
	if e.GuestCount < 0 {
		return NewValidationError(fmt.Sprintf("event %s has negative guest count", e.EventID))
	}
	if _, err := ParseEventStatus(string(e.Status)); err != nil {
		return err
	}
	return nil
}

// Assignment places one staff member on one event in a given role.
type Assignment struct {
	EventID string
	StaffID string
	Role    string
}

// EventFilter narrows event listings. Zero values match everything.
// The time window is [From, To).
type EventFilter struct {
	ClientID string
	Status   EventStatus
	From     *time.Time
	To       *time.Time
}

// Matches reports whether the event passes every set criterion.
func (f EventFilter) Matches(e *Event) bool {
	if f.ClientID != "" && e.ClientID != f.ClientID {
		return false
	}
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	if f.From != nil && e.StartsAt.Before(*f.From) {
		return false
	}
	if f.To != nil && !e.StartsAt.Before(*f.To) {
		return false
	}
	return true
}

// AssignedStaff is one staffed position in a summary row.
type AssignedStaff struct {
	StaffID string
	Name    string
	Role    string
}

// Read model joining an event with its client and assigned staff.
type AssignmentSummary struct {
	EventID      string
	EventName    string
	StartsAt     time.Time
	VenueAddress string
	Status       EventStatus
	ClientID     string
	ClientName   string
	Staff        []AssignedStaff
}

func (s AssignmentSummary) StaffCount() int { return len(s.Staff) }
