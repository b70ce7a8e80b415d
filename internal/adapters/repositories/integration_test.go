//go:build integration

package repositories

import (
	"context"
	"event-staffing-service/internal/domain"
	"event-staffing-service/internal/platform/db"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

func TestPostgresRepositories(t *testing.T) {
	ctx := context.Background()

	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("dashboard"),
		postgres.WithUsername("dashboard"),
		postgres.WithPassword("dashboard"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	conn, driver, err := db.Open(dsn, "")
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, "pgx", driver)

	require.NoError(t, InitSchema(conn, driver))
	require.NoError(t, SeedFromJSON(conn, driver, seedPath))
	require.NoError(t, SeedFromJSON(conn, driver, seedPath))

	clients := NewSQLClientRepository(conn, driver)
	c, err := domain.NewClient("Postgres Gala", "", "", "", "", time.Now())
	require.NoError(t, err)
	require.NoError(t, clients.CreateClient(ctx, c))

	got, err := clients.GetClient(ctx, c.ClientID)
	require.NoError(t, err)
	assert.Equal(t, "Postgres Gala", got.Name)

	list, err := clients.ListClients(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	e, err := NewSQLEventRepository(conn, driver).GetEvent(ctx, "e-100")
	require.NoError(t, err)
	assert.Equal(t, 140, e.GuestCount)

	m, err := NewSQLStaffRepository(conn, driver).GetStaff(ctx, "s-003")
	require.NoError(t, err)
	assert.False(t, m.Active)
}
