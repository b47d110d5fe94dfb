package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/rascal-ingest-service/internal/config"
	"github.com/couchcryptid/rascal-ingest-service/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer publishes assessed zone records to the sink topic.
// It implements pipeline.BatchLoader.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// LoadBatch serializes and publishes the assessed zones in a single
// WriteMessages call for efficiency.
func (w *Writer) LoadBatch(ctx context.Context, zones []domain.ZoneReport) error {
	if len(zones) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(zones))
	for i := range zones {
		msg, err := serializeToMessage(zones[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	return w.writer.WriteMessages(ctx, msgs...)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals an assessed zone into a Kafka message. The key
// is incident|zone so replays of the same report land on the same partition
// and downstream upserts stay idempotent.
func serializeToMessage(zone domain.ZoneReport) (kafkago.Message, error) {
	data, err := json.Marshal(zone)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize zone record: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(zone.Incident + "|" + zone.Zone),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "action", Value: []byte(zone.Action)},
			{Key: "color", Value: []byte(zone.Color)},
			{Key: "assessed_at", Value: []byte(zone.AssessedAt.Format(time.RFC3339))},
		},
	}, nil
}
