package repositories

import (
	"database/sql"
	"encoding/json"
	"event-staffing-service/internal/domain"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// Seed is the on-disk shape of data/seeds/dashboard.json.
type Seed struct {
	Clients     []ClientSeed     `json:"clients"`
	Staff       []StaffSeed      `json:"staff"`
	Events      []EventSeed      `json:"events"`
	Assignments []AssignmentSeed `json:"assignments"`
}

type ClientSeed struct {
	ClientID    string    `json:"client_id"`
	Name        string    `json:"name"`
	ContactName string    `json:"contact_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
}

type StaffSeed struct {
	StaffID         string `json:"staff_id"`
	Name            string `json:"name"`
	Role            string `json:"role"`
	Address         string `json:"address"`
	HourlyRateCents int64  `json:"hourly_rate_cents"`
	Active          bool   `json:"active"`
}

type EventSeed struct {
	EventID      string    `json:"event_id"`
	ClientID     string    `json:"client_id"`
	Name         string    `json:"name"`
	VenueAddress string    `json:"venue_address"`
	StartsAt     time.Time `json:"starts_at"`
	EndsAt       time.Time `json:"ends_at"`
	GuestCount   int       `json:"guest_count"`
	Status       string    `json:"status"`
}

type AssignmentSeed struct {
	EventID string `json:"event_id"`
	StaffID string `json:"staff_id"`
	Role    string `json:"role"`
}

// SeedFromJSON upserts clients, staff, events, and assignments from a JSON file.
// Running it twice leaves the database unchanged.
func SeedFromJSON(conn *sql.DB, driver, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed dashboard: read %q: %w", jsonPath, err)
	}

	var data Seed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed dashboard: parse json: %w", err)
	}

	if err := validateSeed(&data); err != nil {
		return fmt.Errorf("seed dashboard: %w", err)
	}

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("seed dashboard: begin tx: %w", err)
	}
	defer tx.Rollback()

	clientQuery := sqlx.Rebind(sqlx.BindType(driver), `
	INSERT INTO clients (client_id, name, contact_name, email, phone, address, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (client_id) DO UPDATE
	SET name = EXCLUDED.name,
		contact_name = EXCLUDED.contact_name,
		email = EXCLUDED.email,
		phone = EXCLUDED.phone,
		address = EXCLUDED.address;
	`)
	for _, c := range data.Clients {
		createdAt := c.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}
		if _, err := tx.Exec(clientQuery, c.ClientID, strings.TrimSpace(c.Name), c.ContactName,
			c.Email, c.Phone, c.Address, formatTime(createdAt)); err != nil {
			return fmt.Errorf("seed dashboard: insert client_id=%s: %w", c.ClientID, err)
		}
	}

	staffQuery := sqlx.Rebind(sqlx.BindType(driver), `
	INSERT INTO staff (staff_id, name, role, address, hourly_rate_cents, active)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT (staff_id) DO UPDATE
	SET name = EXCLUDED.name,
		role = EXCLUDED.role,
		address = EXCLUDED.address,
		hourly_rate_cents = EXCLUDED.hourly_rate_cents,
		active = EXCLUDED.active;
	`)
	for _, s := range data.Staff {
		if _, err := tx.Exec(staffQuery, s.StaffID, strings.TrimSpace(s.Name), s.Role,
			s.Address, s.HourlyRateCents, boolToInt(s.Active)); err != nil {
			return fmt.Errorf("seed dashboard: insert staff_id=%s: %w", s.StaffID, err)
		}
	}

	eventQuery := sqlx.Rebind(sqlx.BindType(driver), `
	INSERT INTO events (event_id, client_id, name, venue_address, starts_at, ends_at, guest_count, status)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (event_id) DO UPDATE
	SET client_id = EXCLUDED.client_id,
		name = EXCLUDED.name,
		venue_address = EXCLUDED.venue_address,
		starts_at = EXCLUDED.starts_at,
		ends_at = EXCLUDED.ends_at,
		guest_count = EXCLUDED.guest_count,
		status = EXCLUDED.status;
	`)
	for _, e := range data.Events {
		if _, err := tx.Exec(eventQuery, e.EventID, e.ClientID, strings.TrimSpace(e.Name), e.VenueAddress,
			formatTime(e.StartsAt), formatTime(e.EndsAt), e.GuestCount, e.Status); err != nil {
			return fmt.Errorf("seed dashboard: insert event_id=%s: %w", e.EventID, err)
		}
	}

	assignmentQuery := sqlx.Rebind(sqlx.BindType(driver), `
	INSERT INTO event_staff (event_id, staff_id, role)
	VALUES (?, ?, ?)
	ON CONFLICT (event_id, staff_id) DO UPDATE
	SET role = EXCLUDED.role;
	`)
	for _, a := range data.Assignments {
		if _, err := tx.Exec(assignmentQuery, a.EventID, a.StaffID, a.Role); err != nil {
			return fmt.Errorf("seed dashboard: insert assignment %s/%s: %w", a.EventID, a.StaffID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed dashboard: commit tx: %w", err)
	}

	return nil
}

func validateSeed(data *Seed) error {
	for i, c := range data.Clients {
		if strings.TrimSpace(c.ClientID) == "" {
			return fmt.Errorf("client at index %d: client_id cannot be empty", i+1)
		}
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("client at index %d: name cannot be empty", i+1)
		}
	}

	for i, s := range data.Staff {
		if strings.TrimSpace(s.StaffID) == "" || strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("staff at index %d: staff_id and name are required", i+1)
		}
		if s.HourlyRateCents < 0 {
			return fmt.Errorf("staff at index %d: negative hourly rate", i+1)
		}
	}

	for i, e := range data.Events {
		ev := domain.Event{
			EventID:    strings.TrimSpace(e.EventID),
			StartsAt:   e.StartsAt,
			EndsAt:     e.EndsAt,
			GuestCount: e.GuestCount,
			Status:     domain.EventStatus(e.Status),
		}
		if err := ev.Validate(); err != nil {
			return fmt.Errorf("event at index %d: %w", i+1, err)
		}
	}

	seen := make(map[[2]string]bool, len(data.Assignments))
	for i, a := range data.Assignments {
		k := [2]string{a.EventID, a.StaffID}
		if a.EventID == "" || a.StaffID == "" {
			return fmt.Errorf("assignment at index %d: event_id and staff_id are required", i+1)
		}
		if seen[k] {
			return fmt.Errorf("assignment at index %d: duplicate %s/%s", i+1, a.EventID, a.StaffID)
		}
		seen[k] = true
	}

	return nil
}
