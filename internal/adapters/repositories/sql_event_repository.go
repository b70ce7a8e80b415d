package repositories

import (
	"context"
	"database/sql"
	"errors"
	"event-staffing-service/internal/domain"
	"event-staffing-service/internal/platform/obs"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SQL-backed implementation of the EventRepository port.
type SQLEventRepository struct {
	DB     *sql.DB
	driver string
}

func NewSQLEventRepository(conn *sql.DB, driver string) *SQLEventRepository {
	return &SQLEventRepository{DB: conn, driver: driver}
}

const selectEvents = `
	SELECT
		event_id,
		client_id,
		name,
		venue_address,
		starts_at,
		ends_at,
		guest_count,
		status
	FROM events
	`

func (s *SQLEventRepository) ListEvents(ctx context.Context) (_ []*domain.Event, err error) {
	defer obs.Time(ctx, "repo.ListEvents")(&err)

	if s.DB == nil {
		return nil, errors.New("sql event repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, selectEvents+`ORDER BY starts_at, event_id;`)
	if err != nil {
		return nil, fmt.Errorf("list events: query events table: %w", err)
	}
	defer rows.Close()

	events := make([]*domain.Event, 0, 64)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: row iteration: %w", err)
	}

	return events, nil
}

func (s *SQLEventRepository) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	if s.DB == nil {
		return nil, errors.New("sql event repository: DB is nil")
	}

	row := s.DB.QueryRowContext(ctx, sqlx.Rebind(sqlx.BindType(s.driver), selectEvents+`WHERE event_id = ?;`), eventID)
	e, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("event", eventID)
	}
	if err != nil {
		return nil, fmt.Errorf("get event %s: %w", eventID, err)
	}

	return e, nil
}

func (s *SQLEventRepository) ListAssignments(ctx context.Context) ([]domain.Assignment, error) {
	if s.DB == nil {
		return nil, errors.New("sql event repository: DB is nil")
	}

	query := `
	SELECT
		event_id,
		staff_id,
		role
	FROM event_staff
	ORDER BY event_id, staff_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list assignments: query event_staff table: %w", err)
	}
	defer rows.Close()

	var out []domain.Assignment
	for rows.Next() {
		var a domain.Assignment
		if err := rows.Scan(&a.EventID, &a.StaffID, &a.Role); err != nil {
			return nil, fmt.Errorf("list assignments: scan row: %w", err)
		}
		out = append(out, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list assignments: row iteration: %w", err)
	}

	return out, nil
}

func scanEvent(r rowScanner) (*domain.Event, error) {
	var (
		e                domain.Event
		startsAt, endsAt string
		guests           int64
		status           string
	)
	if err := r.Scan(&e.EventID, &e.ClientID, &e.Name, &e.VenueAddress, &startsAt, &endsAt, &guests, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan event row: %w", err)
	}

	var err error
	if e.StartsAt, err = parseTime("starts_at", startsAt); err != nil {
		return nil, err
	}
	if e.EndsAt, err = parseTime("ends_at", endsAt); err != nil {
		return nil, err
	}
	e.GuestCount = int(guests)
	e.Status = domain.EventStatus(status)

	return &e, nil
}
