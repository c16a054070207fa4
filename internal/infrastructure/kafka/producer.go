// Package kafka publishes order lifecycle events.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"zapstore/internal/domain"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	EventOrderPlaced        = "order.placed"
	EventOrderStatusChanged = "order.status_changed"
)

// OrderEvent is the JSON value of every message. The message key is the order id.
type OrderEvent struct {
	EventID    string       `json:"eventId"`
	Type       string       `json:"type"`
	OccurredAt time.Time    `json:"occurredAt"`
	Order      domain.Order `json:"order"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	writer messageWriter
	now    func() time.Time
}

// NewProducer returns an async producer; delivery failures are only logged.
func NewProducer(logger *log.Logger, brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		BatchSize:    10,
		BatchTimeout: 500 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Printf("kafka: %d order events not delivered: %v", len(messages), err)
			}
		},
	}
	return &Producer{writer: writer, now: time.Now}
}

func (p *Producer) OrderPlaced(ctx context.Context, order domain.Order) error {
	return p.write(ctx, EventOrderPlaced, order)
}

func (p *Producer) OrderStatusChanged(ctx context.Context, order domain.Order) error {
	return p.write(ctx, EventOrderStatusChanged, order)
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

func (p *Producer) write(ctx context.Context, eventType string, order domain.Order) error {
	value, err := json.Marshal(OrderEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		OccurredAt: p.now().UTC(),
		Order:      order,
	})
	if err != nil {
		return fmt.Errorf("encode %s: %w", eventType, err)
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.ID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(eventType)},
		},
	})
}

// Noop drops every event. It is used when no brokers are configured.
type Noop struct{}

func (Noop) OrderPlaced(context.Context, domain.Order) error { return nil }
func (Noop) OrderStatusChanged(context.Context, domain.Order) error { return nil }
func (Noop) Close() error { return nil }
