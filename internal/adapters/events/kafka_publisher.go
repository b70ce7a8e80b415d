package events

import (
	"context"
	"encoding/json"
	"event-staffing-service/internal/domain"
	"event-staffing-service/internal/platform/obs"
	"fmt"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
)

const (
	TypeClientCreated = "client.created"
	source            = "event-staffing-service"
)

// CloudEvent is the JSON envelope written to the topic.
type CloudEvent struct {
	ID     string          `json:"id"`
	Source string          `json:"source"`
	Type   string          `json:"type"`
	Time   time.Time       `json:"time"`
	Data   json.RawMessage `json:"data"`
}

// ClientCreated is the payload of a client.created event.
type ClientCreated struct {
	ClientID  string    `json:"client_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// KafkaPublisher implements ports.EventPublisher on a kafka-go Writer.
type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{writer: &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireOne,
		AllowAutoTopicCreation: true,
		WriteTimeout:           5 * time.Second,
	}}
}

func (p *KafkaPublisher) PublishClientCreated(ctx context.Context, c *domain.Client) (err error) {
	defer obs.Time(ctx, "events.PublishClientCreated")(&err)

	data, err := json.Marshal(ClientCreated{
		ClientID:  c.ClientID,
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("publish client.created: encode data: %w", err)
	}

	value, err := json.Marshal(CloudEvent{
		ID:     uuid.NewString(),
		Source: source,
		Type:   TypeClientCreated,
		Time:   time.Now().UTC(),
		Data:   data,
	})
	if err != nil {
		return fmt.Errorf("publish client.created: encode envelope: %w", err)
	}

	msg := kafkago.Message{Key: []byte(c.ClientID), Value: value}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish client.created %s: %w", c.ClientID, err)
	}

	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops events. Used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishClientCreated(context.Context, *domain.Client) error { return nil }

func (NoopPublisher) Close() error { return nil }
