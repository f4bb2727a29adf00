package notify

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/IBM/sarama"
)

var ErrMissingKafkaBrokers = errors.New("missing KAFKA_BROKERS")

// KafkaNotifier publishes pipeline events (payment confirmed, cycle
// finalized, kit moved) to a Kafka topic for downstream sinks. Delivery is
// best-effort from the domain's point of view: callers log and continue.
//
// Env vars:
//   - KAFKA_BROKERS (comma-separated; notifier disabled when unset)
//   - KAFKA_EVENTS_TOPIC (default: lavaja.events)

type KafkaNotifier struct {
	producer sarama.SyncProducer
	topic    string
}

type envelope struct {
	Type       string          `json:"type"`
	OccurredAt string          `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

func NewKafkaNotifierFromEnv(brokersCSV, topic string) (*KafkaNotifier, error) {
	brokersCSV = strings.TrimSpace(brokersCSV)
	if brokersCSV == "" {
		return nil, ErrMissingKafkaBrokers
	}
	if topic == "" {
		topic = "lavaja.events"
	}

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Retry.Max = 3

	producer, err := sarama.NewSyncProducer(strings.Split(brokersCSV, ","), cfg)
	if err != nil {
		return nil, err
	}
	log.Printf("[notify][kafka] producer initialized topic=%s", topic)
	return &KafkaNotifier{producer: producer, topic: topic}, nil
}

func (n *KafkaNotifier) Publish(_ context.Context, eventType string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	b, err := json.Marshal(envelope{
		Type:       eventType,
		OccurredAt: time.Now().UTC().Format(time.RFC3339Nano),
		Payload:    body,
	})
	if err != nil {
		return err
	}

	_, _, err = n.producer.SendMessage(&sarama.ProducerMessage{
		Topic: n.topic,
		Key:   sarama.StringEncoder(eventType),
		Value: sarama.ByteEncoder(b),
	})
	if err != nil {
		log.Printf("[notify][kafka] send failed type=%s err=%v", eventType, err)
		return err
	}
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.producer.Close()
}
