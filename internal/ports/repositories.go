package ports

import (
	"context"
	"event-staffing-service/internal/domain"
)

// Port: client persistence.
type ClientRepository interface {
	ListClients(ctx context.Context) ([]*domain.Client, error)
	GetClient(ctx context.Context, clientID string) (*domain.Client, error)
	CreateClient(ctx context.Context, c *domain.Client) error
}

// Port: staff roster persistence.
type StaffRepository interface {
	ListStaff(ctx context.Context) ([]*domain.StaffMember, error)
	GetStaff(ctx context.Context, staffID string) (*domain.StaffMember, error)
}

// Port: events and their staff assignments.
type EventRepository interface {
	ListEvents(ctx context.Context) ([]*domain.Event, error)
	GetEvent(ctx context.Context, eventID string) (*domain.Event, error)
	ListAssignments(ctx context.Context) ([]domain.Assignment, error)
}
