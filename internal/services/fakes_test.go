package services

import (
	"context"
	"errors"
	"event-staffing-service/internal/domain"
	"sync"
)

type fakeClients struct {
	mu      sync.Mutex
	clients []*domain.Client
	err     error
}

func (f *fakeClients) ListClients(context.Context) ([]*domain.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]*domain.Client(nil), f.clients...), nil
}

func (f *fakeClients) GetClient(_ context.Context, id string) (*domain.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.clients {
		if c.ClientID == id {
			return c, nil
		}
	}
	return nil, domain.NewNotFoundError("client", id)
}

func (f *fakeClients) CreateClient(_ context.Context, c *domain.Client) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.clients = append(f.clients, c)
	return nil
}

type fakeStaff struct {
	staff []*domain.StaffMember
}

func (f *fakeStaff) ListStaff(context.Context) ([]*domain.StaffMember, error) {
	return append([]*domain.StaffMember(nil), f.staff...), nil
}

func (f *fakeStaff) GetStaff(_ context.Context, id string) (*domain.StaffMember, error) {
	for _, m := range f.staff {
		if m.StaffID == id {
			return m, nil
		}
	}
	return nil, domain.NewNotFoundError("staff member", id)
}

type fakeEvents struct {
	events      []*domain.Event
	assignments []domain.Assignment
}

func (f *fakeEvents) ListEvents(context.Context) ([]*domain.Event, error) {
	return append([]*domain.Event(nil), f.events...), nil
}

func (f *fakeEvents) GetEvent(_ context.Context, id string) (*domain.Event, error) {
	for _, e := range f.events {
		if e.EventID == id {
			return e, nil
		}
	}
	return nil, domain.NewNotFoundError("event", id)
}

func (f *fakeEvents) ListAssignments(context.Context) ([]domain.Assignment, error) {
	return f.assignments, nil
}

type fakePublisher struct {
	published []*domain.Client
	err       error
}

func (p *fakePublisher) PublishClientCreated(_ context.Context, c *domain.Client) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, c)
	return nil
}

var errBroker = errors.New("broker unavailable")
