package credentials

import (
	"context"
	"database/sql"
	"errors"
	"event-staffing-service/internal/platform/obs"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// SQLKeyValueStore keeps named values in the credentials table of the
// application database (SQLite or Postgres, selected by driver).
type SQLKeyValueStore struct {
	DB     *sql.DB
	driver string
}

func NewSQLKeyValueStore(conn *sql.DB, driver string) *SQLKeyValueStore {
	return &SQLKeyValueStore{DB: conn, driver: driver}
}

func (s *SQLKeyValueStore) GetKey(ctx context.Context, name string) (_ string, _ bool, err error) {
	defer obs.Time(ctx, "credentials.sql.GetKey")(&err)

	if s.DB == nil {
		return "", false, errors.New("credential store: db is nil")
	}

	if strings.TrimSpace(name) == "" {
		return "", false, errors.New("get credential: name must not be empty")
	}

	q := sqlx.Rebind(sqlx.BindType(s.driver), `
	SELECT value
    FROM credentials
    WHERE name = ?;
	`)

	var value string
	err = s.DB.QueryRowContext(ctx, q, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get credential: query credentials table: %w", err)
	}

	return value, true, nil
}

func (s *SQLKeyValueStore) SetKey(ctx context.Context, name, value string) error {
	if s.DB == nil {
		return errors.New("credential store: db is nil")
	}

	if strings.TrimSpace(name) == "" {
		return errors.New("insert credential: name must not be empty")
	}

	q := sqlx.Rebind(sqlx.BindType(s.driver), `
	INSERT INTO credentials (name, value, updated_at)
    VALUES (?, ?, ?)
	ON CONFLICT (name) DO UPDATE
	SET value = EXCLUDED.value,
		updated_at = EXCLUDED.updated_at;
	`)

	updatedAt := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.DB.ExecContext(ctx, q, name, value, updatedAt); err != nil {
		return fmt.Errorf("insert credential name=%q: %w", name, err)
	}

	return nil
}

func (s *SQLKeyValueStore) DeleteKey(ctx context.Context, name string) error {
	if s.DB == nil {
		return errors.New("credential store: db is nil")
	}

	q := sqlx.Rebind(sqlx.BindType(s.driver), `DELETE FROM credentials WHERE name = ?;`)
	if _, err := s.DB.ExecContext(ctx, q, name); err != nil {
		return fmt.Errorf("delete credential name=%q: %w", name, err)
	}

	return nil
}
