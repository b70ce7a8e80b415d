package ports

import (
	"context"
	"event-staffing-service/internal/domain"
)

// Outbound notifications about dashboard changes.
type EventPublisher interface {
	PublishClientCreated(ctx context.Context, c *domain.Client) error
}
