// Package sink fans timeline events out to the durable table, the Kafka
// event stream and the search index.
package sink

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/fekuna/omnipos-shift-service/internal/timeline"
)

type Multi struct {
	sinks []timeline.Sink
}

// NewMulti skips nil sinks so optional infrastructure can be passed as is.
func NewMulti(sinks ...timeline.Sink) *Multi {
	m := &Multi{}
	for _, s := range sinks {
		if s != nil {
			m.sinks = append(m.sinks, s)
		}
	}
	return m
}

// Record delivers to every sink even when an earlier one fails.
func (m *Multi) Record(ctx context.Context, e *model.TimelineEvent) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Record(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type Publisher interface {
	Publish(ctx context.Context, key, value []byte) error
}

// Kafka publishes events keyed by shift id so a shift's events stay ordered
// within a partition.
type Kafka struct {
	producer Publisher
}

func NewKafka(p Publisher) *Kafka {
	return &Kafka{producer: p}
}

func (k *Kafka) Record(ctx context.Context, e *model.TimelineEvent) error {
	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal timeline event: %w", err)
	}
	key := []byte(e.Action)
	if e.ShiftID != nil {
		key = []byte(*e.ShiftID)
	}
	return k.producer.Publish(ctx, key, value)
}
