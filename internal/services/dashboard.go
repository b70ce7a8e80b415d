package services

import (
	"context"
	"event-staffing-service/internal/domain"
	"event-staffing-service/internal/platform/obs"
	"event-staffing-service/internal/ports"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// CreateClientRequest carries the raw, untrimmed fields of a new client.
type CreateClientRequest struct {
	Name        string
	ContactName string
	Email       string
	Phone       string
	Address     string
}

// DashboardService serves the read models behind the dashboard views and
// client creation.
type DashboardService struct {
	clients   ports.ClientRepository
	staff     ports.StaffRepository
	events    ports.EventRepository
	publisher ports.EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewDashboardService(
	clients ports.ClientRepository,
	staff ports.StaffRepository,
	events ports.EventRepository,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		clients:   clients,
		staff:     staff,
		events:    events,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// ListClients returns every client ordered by name, case-insensitively, then id.
func (s *DashboardService) ListClients(ctx context.Context) ([]*domain.Client, error) {
	clients, err := s.clients.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	sort.SliceStable(clients, func(i, j int) bool {
		a, b := strings.ToLower(clients[i].Name), strings.ToLower(clients[j].Name)
		if a != b {
			return a < b
		}
		return clients[i].ClientID < clients[j].ClientID
	})

	return clients, nil
}

func (s *DashboardService) GetClient(ctx context.Context, clientID string) (*domain.Client, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, domain.NewValidationError("client id is required")
	}

	c, err := s.clients.GetClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// CreateClient persists a validated client, then announces it. A failed
// announcement is logged and does not undo the create.
func (s *DashboardService) CreateClient(ctx context.Context, req CreateClientRequest) (_ *domain.Client, err error) {
	defer obs.Time(ctx, "dashboard.CreateClient")(&err)

	c, err := domain.NewClient(req.Name, req.ContactName, req.Email, req.Phone, req.Address, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.clients.CreateClient(ctx, c); err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishClientCreated(ctx, c); err != nil {
			s.logger.Warn("publish client.created failed",
				zap.String("req_id", obs.RequestID(ctx)),
				zap.String("client_id", c.ClientID),
				zap.Error(err),
			)
		}
	}

	return c, nil
}

// ListStaff returns the roster ordered by name, then id.
func (s *DashboardService) ListStaff(ctx context.Context, activeOnly bool) ([]*domain.StaffMember, error) {
	all, err := s.staff.ListStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}

	out := make([]*domain.StaffMember, 0, len(all))
	for _, m := range all {
		if activeOnly && !m.Active {
			continue
		}
		out = append(out, m)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].StaffID < out[j].StaffID
	})

	return out, nil
}

// ListEvents returns the events passing filter, ordered by start time, then name.
func (s *DashboardService) ListEvents(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	all, err := s.events.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	out := make([]*domain.Event, 0, len(all))
	for _, e := range all {
		if filter.Matches(e) {
			out = append(out, e)
		}
	}

	sortEvents(out)
	return out, nil
}

// AssignmentSummaries joins the filtered events with their client and staff.
// Assignments naming an unknown staff member are skipped.
func (s *DashboardService) AssignmentSummaries(ctx context.Context, filter domain.EventFilter) (_ []domain.AssignmentSummary, err error) {
	defer obs.Time(ctx, "dashboard.AssignmentSummaries")(&err)

	events, err := s.ListEvents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("assignment summaries: %w", err)
	}

	clients, err := s.clients.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("assignment summaries: list clients: %w", err)
	}
	clientNames := make(map[string]string, len(clients))
	for _, c := range clients {
		clientNames[c.ClientID] = c.Name
	}

	roster, err := s.staff.ListStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("assignment summaries: list staff: %w", err)
	}
	staffByID := make(map[string]*domain.StaffMember, len(roster))
	for _, m := range roster {
		staffByID[m.StaffID] = m
	}

	assignments, err := s.events.ListAssignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("assignment summaries: list assignments: %w", err)
	}
	byEvent := make(map[string][]domain.AssignedStaff)
	for _, a := range assignments {
		m, ok := staffByID[a.StaffID]
		if !ok {
			s.logger.Warn("assignment references unknown staff member",
				zap.String("event_id", a.EventID),
				zap.String("staff_id", a.StaffID),
			)
			continue
		}

		role := a.Role
		if role == "" {
			role = m.Role
		}
		byEvent[a.EventID] = append(byEvent[a.EventID], domain.AssignedStaff{
			StaffID: m.StaffID,
			Name:    m.Name,
			Role:    role,
		})
	}

	summaries := make([]domain.AssignmentSummary, 0, len(events))
	for _, e := range events {
		staff := byEvent[e.EventID]
		if staff == nil {
			staff = []domain.AssignedStaff{}
		}
		sort.SliceStable(staff, func(i, j int) bool {
			if staff[i].Name != staff[j].Name {
				return staff[i].Name < staff[j].Name
			}
			return staff[i].StaffID < staff[j].StaffID
		})

		summaries = append(summaries, domain.AssignmentSummary{
			EventID:      e.EventID,
			EventName:    e.Name,
			StartsAt:     e.StartsAt,
			VenueAddress: e.VenueAddress,
			Status:       e.Status,
			ClientID:     e.ClientID,
			ClientName:   clientNames[e.ClientID],
			Staff:        staff,
		})
	}

	return summaries, nil
}

func sortEvents(events []*domain.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].StartsAt.Equal(events[j].StartsAt) {
			return events[i].StartsAt.Before(events[j].StartsAt)
		}
		if events[i].Name != events[j].Name {
			return events[i].Name < events[j].Name
		}
		return events[i].EventID < events[j].EventID
	})
}
