// Package kafka republishes dataset documents to a Kafka topic for
// downstream consumers that mirror the dashboard files.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/freightdash/dashboard-etl/internal/config"
	"github.com/freightdash/dashboard-etl/internal/domain"
)

// Writer produces one message per dataset to the configured topic.
// It implements pipeline.DatasetPublisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the dataset topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishDataset serializes one dataset document and publishes it keyed by
// dataset name, so compacted topics retain the latest document per dataset.
func (w *Writer) PublishDataset(ctx context.Context, ds domain.Dataset) error {
	msg, err := serializeToMessage(ds)
	if err != nil {
		return err
	}
	return w.writer.WriteMessages(ctx, msg)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a dataset into a Kafka message.
func serializeToMessage(ds domain.Dataset) (kafkago.Message, error) {
	data, err := json.Marshal(ds.Payload)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize dataset %s: %w", ds.Name, err)
	}
	return kafkago.Message{
		Key:   []byte(ds.Name),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "dataset", Value: []byte(ds.Name)},
			{Key: "generated_at", Value: []byte(ds.GeneratedAt.Format(time.RFC3339))},
		},
	}, nil
}
