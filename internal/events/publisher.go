// Package events publishes domain events for logged exercises.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// ExerciseLogged is emitted once per exercise accepted by the API.
type ExerciseLogged struct {
	ExerciseID  string    `json:"exercise_id"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Date        string    `json:"date"`
	LoggedAt    time.Time `json:"logged_at"`
}

// Publisher delivers events to downstream consumers.
type Publisher interface {
	PublishExerciseLogged(ctx context.Context, evt ExerciseLogged) error
}

// NoopPublisher drops every event. Used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishExerciseLogged(context.Context, ExerciseLogged) error { return nil }

// messageWriter is the subset of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events to a single Kafka topic keyed by user id,
// so one user's events stay ordered within a partition.
type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{writer: &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}}
}

func (p *KafkaPublisher) PublishExerciseLogged(ctx context.Context, evt ExerciseLogged) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode exercise.logged: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(evt.UserID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("exercise.logged")},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish exercise.logged: %w", err)
	}
	return nil
}

// Close flushes and releases the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
