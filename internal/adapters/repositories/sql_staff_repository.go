package repositories

import (
	"context"
	"database/sql"
	"errors"
	"event-staffing-service/internal/domain"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SQL-backed implementation of the StaffRepository port.
type SQLStaffRepository struct {
	DB     *sql.DB
	driver string
}

func NewSQLStaffRepository(conn *sql.DB, driver string) *SQLStaffRepository {
	return &SQLStaffRepository{DB: conn, driver: driver}
}

const selectStaff = `
	SELECT
		staff_id,
		name,
		role,
		address,
		hourly_rate_cents,
		active
	FROM staff
	`

func (s *SQLStaffRepository) ListStaff(ctx context.Context) ([]*domain.StaffMember, error) {
	if s.DB == nil {
		return nil, errors.New("sql staff repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, selectStaff+`ORDER BY staff_id;`)
	if err != nil {
		return nil, fmt.Errorf("list staff: query staff table: %w", err)
	}
	defer rows.Close()

	staff := make([]*domain.StaffMember, 0, 64)
	for rows.Next() {
		m, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("list staff: %w", err)
		}
		staff = append(staff, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list staff: row iteration: %w", err)
	}

	return staff, nil
}

func (s *SQLStaffRepository) GetStaff(ctx context.Context, staffID string) (*domain.StaffMember, error) {
	if s.DB == nil {
		return nil, errors.New("sql staff repository: DB is nil")
	}

	row := s.DB.QueryRowContext(ctx, sqlx.Rebind(sqlx.BindType(s.driver), selectStaff+`WHERE staff_id = ?;`), staffID)
	m, err := scanStaff(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("staff member", staffID)
	}
	if err != nil {
		return nil, fmt.Errorf("get staff %s: %w", staffID, err)
	}

	return m, nil
}

func scanStaff(r rowScanner) (*domain.StaffMember, error) {
	var (
		m      domain.StaffMember
		active int64
	)
	if err := r.Scan(&m.StaffID, &m.Name, &m.Role, &m.Address, &m.HourlyRateCents, &active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan staff row: %w", err)
	}
	m.Active = active != 0

	return &m, nil
}
