// Package events publishes case lifecycle events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/Lalithkumar18-lk/Ai/internal/models"
)

const (
	TypeCreated       = "case.created"
	TypeStatusChanged = "case.status_changed"
	TypeAssigned      = "case.assigned"
	TypeResolved      = "case.resolved"
	TypeActionAdded   = "case.action_added"
	TypeChatAdded     = "case.chat_added"
)

type Event struct {
	Type   string      `json:"type"`
	CaseID string      `json:"case_id"`
	Status string      `json:"status"`
	At     time.Time   `json:"at"`
	Case   models.Case `json:"case"`
}

func New(eventType string, c models.Case) Event {
	return Event{
		Type:   eventType,
		CaseID: c.ID,
		Status: c.Status,
		At:     c.UpdatedAt,
		Case:   c,
	}
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close()
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close()                               {}

type KafkaPublisher struct {
	client *kgo.Client
	topic  string
}

func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka: no brokers configured")
	}
	if topic == "" {
		return nil, errors.New("kafka: topic is required")
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProducerBatchMaxBytes(1<<20),
		kgo.RecordRetries(3),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka: create client: %w", err)
	}
	return &KafkaPublisher{client: client, topic: topic}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, e Event) error {
	record, err := Record(p.topic, e)
	if err != nil {
		return err
	}
	return p.client.ProduceSync(ctx, record).FirstErr()
}

func (p *KafkaPublisher) Close() {
	p.client.Close()
}

// Record encodes an event keyed by case id so all events of a case land on
// the same partition.
func Record(topic string, e Event) (*kgo.Record, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encode event: %w", err)
	}
	return &kgo.Record{
		Topic: topic,
		Key:   []byte(e.CaseID),
		Value: data,
		Headers: []kgo.RecordHeader{
			{Key: "event_type", Value: []byte(e.Type)},
			{Key: "schema", Value: []byte(e.Case.Schema)},
		},
	}, nil
}
