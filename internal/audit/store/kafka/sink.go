// Package kafka publishes audit events to a Kafka topic. The topic feeds
// downstream compliance tooling; the Postgres store remains the queryable
// source for the admin API.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	"sortcheck/internal/audit"
)

type Sink struct {
	client *kgo.Client
	topic  string
}

// New connects to the given brokers and returns a sink producing to topic.
func New(brokers []string, topic string) (*Sink, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &Sink{client: client, topic: topic}, nil
}

// EnsureTopic creates the topic if it does not already exist.
func (s *Sink) EnsureTopic(ctx context.Context, partitions int32) error {
	adm := kadm.NewClient(s.client)
	resp, err := adm.CreateTopic(ctx, partitions, 1, nil, s.topic)
	if err == nil {
		err = resp.Err
	}
	if err != nil && !errors.Is(err, kerr.TopicAlreadyExists) {
		return fmt.Errorf("create topic %s: %w", s.topic, err)
	}
	return nil
}

// Append produces one event, keyed by sort code so events for the same
// sort code stay ordered within a partition.
func (s *Sink) Append(ctx context.Context, event audit.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}

	record := &kgo.Record{
		Key:   []byte(event.SortCode),
		Value: payload,
	}
	if err := s.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce audit event: %w", err)
	}
	return nil
}

// Close flushes outstanding records and releases the client.
func (s *Sink) Close() {
	s.client.Close()
}
