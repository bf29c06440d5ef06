package repository

import (
	"context"
	"time"

	"github.com/spencertipping/garmin-influxdb2/internal/domain/models"
	"github.com/spencertipping/garmin-influxdb2/internal/domain/repository"
	pkgkafka "github.com/spencertipping/garmin-influxdb2/pkg/kafka"
)

type batchPublisher interface {
	PublishBatch(ctx context.Context, topic string, messages []pkgkafka.Message) error
	Close() error
}

// KafkaSink publishes each point as a JSON message keyed by measurement.
type KafkaSink struct {
	producer batchPublisher
	topic    string
}

// NewKafkaSink creates a Kafka sink.
func NewKafkaSink(producer batchPublisher, topic string) repository.PointSink {
	return &KafkaSink{producer: producer, topic: topic}
}

type pointMessage struct {
	Measurement string            `json:"measurement"`
	Time        string            `json:"time"`
	Precision   string            `json:"precision"`
	Tags        map[string]string `json:"tags,omitempty"`
	Fields      map[string]any    `json:"fields"`
}

func (s *KafkaSink) Write(ctx context.Context, points ...*models.Point) error {
	msgs := make([]pkgkafka.Message, 0, len(points))
	for _, p := range points {
		fields := p.NonNilFields()
		if len(fields) == 0 {
			continue
		}
		m := pointMessage{
			Measurement: p.Measurement,
			Time:        p.Time.Format(time.RFC3339Nano),
			Precision:   string(p.Precision),
			Fields:      make(map[string]any, len(fields)),
		}
		for _, f := range fields {
			m.Fields[f.Key] = f.Value
		}
		if len(p.Tags) > 0 {
			m.Tags = make(map[string]string, len(p.Tags))
			for _, t := range p.Tags {
				m.Tags[t.Key] = t.Value
			}
		}
		msgs = append(msgs, pkgkafka.Message{Key: []byte(p.Measurement), Value: m})
	}
	return s.producer.PublishBatch(ctx, s.topic, msgs)
}

func (s *KafkaSink) Close() error {
	if s.producer != nil {
		return s.producer.Close()
	}
	return nil
}
