package repositories

import (
	"context"
	"database/sql"
	"event-staffing-service/internal/domain"
	"event-staffing-service/internal/platform/db"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedPath = "../../../data/seeds/dashboard.json"

func newTestDB(t *testing.T) (*sql.DB, string) {
	t.Helper()

	conn, driver, err := db.Open("", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, InitSchema(conn, driver))
	return conn, driver
}

func TestInitSchemaIsIdempotent(t *testing.T) {
	conn, driver := newTestDB(t)
	require.NoError(t, InitSchema(conn, driver))
	assert.Error(t, InitSchema(nil, driver))
}

func TestSeedFromJSON(t *testing.T) {
	conn, driver := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, SeedFromJSON(conn, driver, seedPath))
	require.NoError(t, SeedFromJSON(conn, driver, seedPath), "reseeding upserts")

	clients, err := NewSQLClientRepository(conn, driver).ListClients(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 2)

	staff, err := NewSQLStaffRepository(conn, driver).ListStaff(ctx)
	require.NoError(t, err)
	require.Len(t, staff, 3)
	assert.Equal(t, "s-001", staff[0].StaffID)
	assert.True(t, staff[0].Active)
	assert.False(t, staff[2].Active)
	assert.Equal(t, int64(3800), staff[0].HourlyRateCents)

	events := NewSQLEventRepository(conn, driver)
	list, err := events.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "e-101", list[0].EventID, "ordered by start time")

	assignments, err := events.ListAssignments(ctx)
	require.NoError(t, err)
	assert.Len(t, assignments, 3)
}

func TestSeedFromJSONRejectsInvalidRows(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{`},
		{name: "client without name", body: `{"clients": [{"client_id": "c1", "name": " "}]}`},
		{name: "staff negative rate", body: `{"staff": [{"staff_id": "s1", "name": "A", "hourly_rate_cents": -1}]}`},
		{name: "event ends before start", body: `{"events": [{"event_id": "e1", "status": "draft",
			"starts_at": "2026-01-02T00:00:00Z", "ends_at": "2026-01-01T00:00:00Z"}]}`},
		{name: "event unknown status", body: `{"events": [{"event_id": "e1", "status": "tentative",
			"starts_at": "2026-01-01T00:00:00Z", "ends_at": "2026-01-01T00:00:00Z"}]}`},
		{name: "duplicate assignment", body: `{"assignments": [
			{"event_id": "e1", "staff_id": "s1"}, {"event_id": "e1", "staff_id": "s1"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, driver := newTestDB(t)
			path := filepath.Join(t.TempDir(), "seed.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))

			assert.Error(t, SeedFromJSON(conn, driver, path))
		})
	}
}

func TestClientRepositoryCreateAndGet(t *testing.T) {
	conn, driver := newTestDB(t)
	repo := NewSQLClientRepository(conn, driver)
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 12, 30, 0, 0, time.FixedZone("PST", -8*3600))
	c, err := domain.NewClient("Bayside Gala", "Robin", "robin@bayside.example", "", "1 Pier", now)
	require.NoError(t, err)

	require.NoError(t, repo.CreateClient(ctx, c))
	assert.Error(t, repo.CreateClient(ctx, c), "duplicate id")

	got, err := repo.GetClient(ctx, c.ClientID)
	require.NoError(t, err)
	assert.Equal(t, c.Name, got.Name)
	assert.Equal(t, c.Email, got.Email)
	assert.True(t, now.Equal(got.CreatedAt))
	assert.Equal(t, time.UTC, got.CreatedAt.Location())

	_, err = repo.GetClient(ctx, "missing")
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestGetMissingEntities(t *testing.T) {
	conn, driver := newTestDB(t)
	ctx := context.Background()

	_, err := NewSQLStaffRepository(conn, driver).GetStaff(ctx, "nobody")
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	_, err = NewSQLEventRepository(conn, driver).GetEvent(ctx, "nothing")
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestGetSeededEvent(t *testing.T) {
	conn, driver := newTestDB(t)
	require.NoError(t, SeedFromJSON(conn, driver, seedPath))

	e, err := NewSQLEventRepository(conn, driver).GetEvent(context.Background(), "e-100")
	require.NoError(t, err)
	assert.Equal(t, "Fort Mason Center, San Francisco, CA", e.VenueAddress)
	assert.Equal(t, domain.EventConfirmed, e.Status)
	assert.Equal(t, 140, e.GuestCount)
	assert.Equal(t, time.Date(2026, 6, 13, 23, 0, 0, 0, time.UTC), e.StartsAt)
	require.NoError(t, e.Validate())
}

func TestPlaceholdersFollowDriver(t *testing.T) {
	q := selectStaff + `WHERE staff_id = ? AND active = ?;`

	assert.Equal(t, q, sqlx.Rebind(sqlx.BindType("sqlite"), q))

	pg := sqlx.Rebind(sqlx.BindType("pgx"), q)
	assert.Contains(t, pg, "staff_id = $1 AND active = $2")
	assert.NotContains(t, pg, "?")
}
