// Package kafka publishes order status change events to a Kafka topic.
// Events are emitted after the owning database transaction commits, so
// consumers only ever see statuses that were actually persisted.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marketplace/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// orderStatusChangedMessage is the wire format of a status change event.
type orderStatusChangedMessage struct {
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OrderStatusPublisher implements ports.OrderEventPublisher on top of a
// kafka-go writer. Messages are keyed by order ID, so all events of one
// order land on the same partition in emission order.
type OrderStatusPublisher struct {
	writer *kafka.Writer
}

// NewOrderStatusPublisher creates a publisher writing to the given broker
// and topic.
func NewOrderStatusPublisher(address, topic string) *OrderStatusPublisher {
	return &OrderStatusPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(address),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// PublishOrderStatusChanged sends a status change event.
func (p *OrderStatusPublisher) PublishOrderStatusChanged(
	ctx context.Context,
	event ports.OrderStatusChangedEvent,
) error {
	payload, err := json.Marshal(orderStatusChangedMessage{
		OrderID:    event.OrderID.String(),
		Status:     event.Status.String(),
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("kafka: marshal order status event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("kafka: write order status event: %w", err)
	}

	return nil
}

// Close flushes and closes the underlying writer.
func (p *OrderStatusPublisher) Close() error {
	return p.writer.Close()
}
