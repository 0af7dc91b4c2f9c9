// Package events publishes trip lifecycle events to Kafka. Publishing is
// optional; a nil Publisher drops events silently so the API keeps working
// without a broker.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"
)

//go:generate mockgen -destination=mocks/mock_events.go -package=mocks travelmate/internal/events Publisher

// InvitationEvent is emitted when a trip owner invites a participant by
// email. Downstream consumers turn it into an actual email; the API itself
// only acknowledges the request.
type InvitationEvent struct {
	TripID    string    `json:"tripId"`
	TripName  string    `json:"tripName"`
	Email     string    `json:"email"`
	InvitedBy string    `json:"invitedBy"`
	SentAt    time.Time `json:"sentAt"`
}

// Publisher defines the interface for emitting trip events.
type Publisher interface {
	PublishInvitation(ctx context.Context, event InvitationEvent) error
	Close() error
}

// KafkaPublisher implements Publisher over a kafka-go writer.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher creates a publisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{}, // Hash by key for per-trip ordering
		RequiredAcks: kafka.RequireAll,
		Compression:  compress.Snappy,
		MaxAttempts:  3,
		BatchTimeout: 10 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(msg string, args ...any) {}),
		ErrorLogger:  kafka.LoggerFunc(log.Printf),
	}

	return &KafkaPublisher{writer: writer}, nil
}

// PublishInvitation writes an invitation event keyed by trip id.
func (p *KafkaPublisher) PublishInvitation(ctx context.Context, event InvitationEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal invitation event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.TripID),
		Value: value,
		Time:  event.SentAt,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish invitation event: %w", err)
	}

	return nil
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
