package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKafkaWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeKafkaWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeKafkaWriter) Close() error {
	f.closed = true
	return nil
}

func TestKafkaNotifier_SendBatchAlert(t *testing.T) {
	t.Parallel()

	w := &fakeKafkaWriter{}
	k := &KafkaNotifier{writer: w}

	second := testPayload("medium")
	second.ASIN = "B000OTHER1"
	alerts := []AlertPayload{testPayload("critical"), second}

	require.NoError(t, k.SendBatchAlert(context.Background(), alerts, "run"))
	require.Len(t, w.msgs, 2)
	assert.Equal(t, "B07XJ8C8F5", string(w.msgs[0].Key))
	assert.Equal(t, "B000OTHER1", string(w.msgs[1].Key))

	var decoded AlertPayload
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &decoded))
	assert.Equal(t, "critical", decoded.Priority)
	assert.Equal(t, "competitor_undercut", decoded.AlertType)
}

func TestKafkaNotifier_SendAlert(t *testing.T) {
	t.Parallel()

	w := &fakeKafkaWriter{}
	k := &KafkaNotifier{writer: w}

	alert := testPayload("high")
	require.NoError(t, k.SendAlert(context.Background(), &alert))
	assert.Len(t, w.msgs, 1)
	assert.Equal(t, "kafka", k.Name())

	require.NoError(t, k.Close())
	assert.True(t, w.closed)
}

func TestKafkaNotifier_Empty(t *testing.T) {
	t.Parallel()

	w := &fakeKafkaWriter{err: errors.New("should not be called")}
	k := &KafkaNotifier{writer: w}
	assert.NoError(t, k.SendBatchAlert(context.Background(), nil, "run"))
}

func TestKafkaNotifier_WriteError(t *testing.T) {
	t.Parallel()

	k := &KafkaNotifier{writer: &fakeKafkaWriter{err: errors.New("leader not available")}}
	alert := testPayload("high")
	err := k.SendAlert(context.Background(), &alert)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing kafka messages")
}

func TestNewKafkaNotifier(t *testing.T) {
	t.Parallel()

	k := NewKafkaNotifier([]string{"localhost:9092"}, "competitive-alerts")
	w, ok := k.writer.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, "competitive-alerts", w.Topic)
}

var _ Notifier = (*KafkaNotifier)(nil)
