package distance

import (
	"context"
	"event-staffing-service/internal/domain"
	"sync"
)

type MockRoute struct {
	From, To string
	Meters   float64
}

// MockRoutingService answers from a fixed table and records every call.
type MockRoutingService struct {
	mu    sync.Mutex
	m     map[string]float64
	err   error
	calls []MockCall
}

type MockCall struct {
	Origin, Destination, Credential string
}

func NewMockRoutingService(routes []MockRoute) *MockRoutingService {
	m := make(map[string]float64, len(routes))
	for _, r := range routes {
		m[r.From+"|"+r.To] = r.Meters
	}
	return &MockRoutingService{m: m}
}

// FailWith makes every subsequent call return err.
func (p *MockRoutingService) FailWith(err error) *MockRoutingService {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
	return p
}

func (p *MockRoutingService) Calls() []MockCall {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]MockCall(nil), p.calls...)
}

func (p *MockRoutingService) DrivingDistanceMeters(ctx context.Context, origin, destination, credential string) (float64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls = append(p.calls, MockCall{Origin: origin, Destination: destination, Credential: credential})
	if p.err != nil {
		return 0, p.err
	}

	meters, ok := p.m[origin+"|"+destination]
	if !ok {
		return 0, &domain.RouteUnavailableError{Status: "NOT_FOUND"}
	}

	return meters, nil
}
