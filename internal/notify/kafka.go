package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// kafkaWriter is the subset of *kafka.Writer used for publishing.
type kafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier publishes alerts as JSON messages keyed by ASIN so
// downstream consumers see each product's alerts in order.
type KafkaNotifier struct {
	writer kafkaWriter
}

// NewKafkaNotifier creates a KafkaNotifier writing to topic on brokers.
func NewKafkaNotifier(brokers []string, topic string) *KafkaNotifier {
	return &KafkaNotifier{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.Hash{},
		},
	}
}

// Name returns "kafka".
func (k *KafkaNotifier) Name() string { return "kafka" }

// SendAlert publishes one alert.
func (k *KafkaNotifier) SendAlert(ctx context.Context, alert *AlertPayload) error {
	return k.SendBatchAlert(ctx, []AlertPayload{*alert}, "")
}

// SendBatchAlert publishes each alert as its own message in one write.
func (k *KafkaNotifier) SendBatchAlert(ctx context.Context, alerts []AlertPayload, _ string) error {
	if len(alerts) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(alerts))
	for i := range alerts {
		value, err := json.Marshal(&alerts[i])
		if err != nil {
			return fmt.Errorf("marshaling alert %s: %w", alerts[i].AlertID, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(alerts[i].ASIN),
			Value: value,
		})
	}

	if err := k.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("writing kafka messages: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (k *KafkaNotifier) Close() error {
	return k.writer.Close()
}
