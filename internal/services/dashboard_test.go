package services

import (
	"context"
	"event-staffing-service/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var (
	jun1 = time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC)
	jun2 = time.Date(2026, 6, 2, 18, 0, 0, 0, time.UTC)
	jul1 = time.Date(2026, 7, 1, 18, 0, 0, 0, time.UTC)
)

func newDashboard(t *testing.T) (*DashboardService, *fakeClients, *fakePublisher, *observer.ObservedLogs) {
	t.Helper()

	clients := &fakeClients{clients: []*domain.Client{
		{ClientID: "c2", Name: "beta Bakery"},
		{ClientID: "c1", Name: "Acme"},
		{ClientID: "c0", Name: "acme"},
	}}
	staff := &fakeStaff{staff: []*domain.StaffMember{
		{StaffID: "s3", Name: "Zoe", Role: "server", Active: true},
		{StaffID: "s1", Name: "Alex", Role: "bartender", Active: true},
		{StaffID: "s2", Name: "Jamie", Role: "chef", Active: false},
	}}
	events := &fakeEvents{
		events: []*domain.Event{
			{EventID: "e3", ClientID: "c2", Name: "Summer Party", StartsAt: jul1, Status: domain.EventDraft},
			{EventID: "e2", ClientID: "c1", Name: "B Dinner", StartsAt: jun1, Status: domain.EventConfirmed},
			{EventID: "e1", ClientID: "c1", Name: "A Lunch", StartsAt: jun1, Status: domain.EventConfirmed},
			{EventID: "e4", ClientID: "gone", Name: "Orphan", StartsAt: jun2, Status: domain.EventCancelled},
		},
		assignments: []domain.Assignment{
			{EventID: "e1", StaffID: "s3", Role: "server"},
			{EventID: "e1", StaffID: "s1"},
			{EventID: "e1", StaffID: "ghost", Role: "chef"},
			{EventID: "e3", StaffID: "s2", Role: "chef"},
		},
	}

	core, logs := observer.New(zap.WarnLevel)
	publisher := &fakePublisher{}
	svc := NewDashboardService(clients, staff, events, publisher, zap.New(core))
	svc.now = func() time.Time { return jun1 }

	return svc, clients, publisher, logs
}

func TestListClientsSortedByNameThenID(t *testing.T) {
	svc, _, _, _ := newDashboard(t)

	got, err := svc.ListClients(context.Background())
	require.NoError(t, err)

	var ids []string
	for _, c := range got {
		ids = append(ids, c.ClientID)
	}
	assert.Equal(t, []string{"c0", "c1", "c2"}, ids)
}

func TestCreateClient(t *testing.T) {
	svc, clients, publisher, _ := newDashboard(t)

	c, err := svc.CreateClient(context.Background(), CreateClientRequest{
		Name:  "  Harbor View ",
		Email: "dana@harbor.example",
	})
	require.NoError(t, err)
	assert.Equal(t, "Harbor View", c.Name)
	assert.Len(t, c.ClientID, 36)
	assert.Equal(t, jun1, c.CreatedAt)

	assert.Len(t, clients.clients, 4)
	require.Len(t, publisher.published, 1)
	assert.Equal(t, c.ClientID, publisher.published[0].ClientID)
}

func TestCreateClientValidation(t *testing.T) {
	svc, clients, publisher, _ := newDashboard(t)

	for _, req := range []CreateClientRequest{
		{Name: "   "},
		{Name: "Ok", Email: "not-an-email"},
	} {
		_, err := svc.CreateClient(context.Background(), req)
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	}

	assert.Len(t, clients.clients, 3)
	assert.Empty(t, publisher.published)
}

func TestCreateClientPublishFailureIsLogged(t *testing.T) {
	svc, clients, publisher, logs := newDashboard(t)
	publisher.err = errBroker

	c, err := svc.CreateClient(context.Background(), CreateClientRequest{Name: "Still Saved"})
	require.NoError(t, err)
	assert.Equal(t, "Still Saved", clients.clients[3].Name)
	assert.Equal(t, 1, logs.FilterMessage("publish client.created failed").FilterField(zap.String("client_id", c.ClientID)).Len())
}

func TestCreateClientPersistFailure(t *testing.T) {
	svc, clients, publisher, _ := newDashboard(t)
	clients.err = errBroker

	_, err := svc.CreateClient(context.Background(), CreateClientRequest{Name: "Nope"})
	assert.ErrorIs(t, err, errBroker)
	assert.Empty(t, publisher.published)
}

func TestListStaff(t *testing.T) {
	svc, _, _, _ := newDashboard(t)

	all, err := svc.ListStaff(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"Alex", "Jamie", "Zoe"}, []string{all[0].Name, all[1].Name, all[2].Name})

	active, err := svc.ListStaff(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, active, 2)
	for _, m := range active {
		assert.True(t, m.Active)
	}
}

func TestListEventsFilterAndOrder(t *testing.T) {
	svc, _, _, _ := newDashboard(t)
	ctx := context.Background()

	all, err := svc.ListEvents(ctx, domain.EventFilter{})
	require.NoError(t, err)
	var ids []string
	for _, e := range all {
		ids = append(ids, e.EventID)
	}
	assert.Equal(t, []string{"e1", "e2", "e4", "e3"}, ids, "by start time, then name")

	byClient, err := svc.ListEvents(ctx, domain.EventFilter{ClientID: "c1"})
	require.NoError(t, err)
	assert.Len(t, byClient, 2)

	from, to := jun1, jul1
	window, err := svc.ListEvents(ctx, domain.EventFilter{From: &from, To: &to})
	require.NoError(t, err)
	assert.Len(t, window, 3, "window end is exclusive")

	drafts, err := svc.ListEvents(ctx, domain.EventFilter{Status: domain.EventDraft})
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "e3", drafts[0].EventID)
}

func TestAssignmentSummaries(t *testing.T) {
	svc, _, _, logs := newDashboard(t)

	got, err := svc.AssignmentSummaries(context.Background(), domain.EventFilter{})
	require.NoError(t, err)
	require.Len(t, got, 4)

	first := got[0]
	assert.Equal(t, "e1", first.EventID)
	assert.Equal(t, "Acme", first.ClientName)
	require.Equal(t, 2, first.StaffCount(), "unknown staff is skipped")
	assert.Equal(t, domain.AssignedStaff{StaffID: "s1", Name: "Alex", Role: "bartender"}, first.Staff[0], "role falls back to the roster")
	assert.Equal(t, "Zoe", first.Staff[1].Name)

	assert.Equal(t, "e2", got[1].EventID)
	assert.Empty(t, got[1].Staff)
	assert.NotNil(t, got[1].Staff)

	assert.Equal(t, "e4", got[2].EventID)
	assert.Equal(t, "", got[2].ClientName)

	assert.Equal(t, "Jamie", got[3].Staff[0].Name, "inactive staff still appear on past assignments")
	assert.Equal(t, 1, logs.FilterMessage("assignment references unknown staff member").Len())
}

func TestAssignmentSummariesFiltered(t *testing.T) {
	svc, _, _, _ := newDashboard(t)

	got, err := svc.AssignmentSummaries(context.Background(), domain.EventFilter{ClientID: "c2"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "beta Bakery", got[0].ClientName)
}

func TestGetClient(t *testing.T) {
	svc, _, _, _ := newDashboard(t)
	ctx := context.Background()

	c, err := svc.GetClient(ctx, " c2 ")
	require.NoError(t, err)
	assert.Equal(t, "beta Bakery", c.Name)

	_, err = svc.GetClient(ctx, "missing")
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	_, err = svc.GetClient(ctx, "  ")
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}
