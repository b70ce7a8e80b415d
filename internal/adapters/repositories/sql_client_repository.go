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

// SQL-backed implementation of the ClientRepository port.
type SQLClientRepository struct {
	DB     *sql.DB
	driver string
}

func NewSQLClientRepository(conn *sql.DB, driver string) *SQLClientRepository {
	return &SQLClientRepository{DB: conn, driver: driver}
}

const selectClients = `
	SELECT
		client_id,
		name,
		contact_name,
		email,
		phone,
		address,
		created_at
	FROM clients
	`

// Return all clients stored in the database.
func (s *SQLClientRepository) ListClients(ctx context.Context) (_ []*domain.Client, err error) {
	defer obs.Time(ctx, "repo.ListClients")(&err)

	if s.DB == nil {
		return nil, errors.New("sql client repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, selectClients+`ORDER BY client_id;`)
	if err != nil {
		return nil, fmt.Errorf("list clients: query clients table: %w", err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0, 64)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("list clients: %w", err)
		}
		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list clients: row iteration: %w", err)
	}

	return clients, nil
}

func (s *SQLClientRepository) GetClient(ctx context.Context, clientID string) (*domain.Client, error) {
	if s.DB == nil {
		return nil, errors.New("sql client repository: DB is nil")
	}

	row := s.DB.QueryRowContext(ctx, sqlx.Rebind(sqlx.BindType(s.driver), selectClients+`WHERE client_id = ?;`), clientID)
	c, err := scanClient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("client", clientID)
	}
	if err != nil {
		return nil, fmt.Errorf("get client %s: %w", clientID, err)
	}

	return c, nil
}

func (s *SQLClientRepository) CreateClient(ctx context.Context, c *domain.Client) (err error) {
	defer obs.Time(ctx, "repo.CreateClient")(&err)

	if s.DB == nil {
		return errors.New("sql client repository: DB is nil")
	}

	q := sqlx.Rebind(sqlx.BindType(s.driver), `
	INSERT INTO clients (
		client_id,
		name,
		contact_name,
		email,
		phone,
		address,
		created_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`)

	if _, err := s.DB.ExecContext(ctx, q, c.ClientID, c.Name, c.ContactName, c.Email,
		c.Phone, c.Address, formatTime(c.CreatedAt)); err != nil {
		return fmt.Errorf("create client %s: %w", c.ClientID, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(r rowScanner) (*domain.Client, error) {
	var (
		c         domain.Client
		createdAt string
	)
	if err := r.Scan(&c.ClientID, &c.Name, &c.ContactName, &c.Email, &c.Phone, &c.Address, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan client row: %w", err)
	}

	t, err := parseTime("created_at", createdAt)
	if err != nil {
		return nil, err
	}
	c.CreatedAt = t

	return &c, nil
}
