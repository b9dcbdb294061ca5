package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-shift-service/internal/apperror"
	"github.com/fekuna/omnipos-shift-service/internal/movement"
	"github.com/fekuna/omnipos-shift-service/internal/movement/dto"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/logger"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const EventInventoryRestocked = "InventoryRestocked"

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// RestockListener sets entry_qty from the inventory restock feed. It is the
// only writer of that field.
type RestockListener struct {
	consumer MessageReader
	uc       movement.UseCase
	logger   logger.ZapLogger
	backoff  time.Duration
}

func NewRestockListener(consumer MessageReader, uc movement.UseCase, logger logger.ZapLogger) *RestockListener {
	return &RestockListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
		backoff:  time.Second,
	}
}

func (l *RestockListener) Start(ctx context.Context) {
	l.logger.Info("Starting restock Kafka listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping restock Kafka listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				time.Sleep(l.backoff)
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type RestockEvent struct {
	EventID   string         `json:"event_id"`
	EventType string         `json:"event_type"`
	Payload   RestockPayload `json:"payload"`
	Timestamp time.Time      `json:"timestamp"`
}

type RestockPayload struct {
	// ShiftID is optional; the open shift is used when empty.
	ShiftID string             `json:"shift_id"`
	Items   []RestockItemEntry `json:"items"`
}

type RestockItemEntry struct {
	ProductID string `json:"product_id"`
	// EntryQuantity is the absolute quantity placed on the shelf for the
	// shift.
	EntryQuantity int64 `json:"entry_quantity"`
}

func (l *RestockListener) processMessage(ctx context.Context, value []byte) {
	var event RestockEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal restock event", zap.Error(err))
		return
	}
	if event.EventType != EventInventoryRestocked {
		return
	}

	l.logger.Info("Processing restock event", zap.String("event_id", event.EventID), zap.Int("items", len(event.Payload.Items)))

	for _, item := range event.Payload.Items {
		_, err := l.uc.SetEntry(ctx, &dto.SetEntryInput{
			ShiftID:   event.Payload.ShiftID,
			ProductID: item.ProductID,
			Quantity:  item.EntryQuantity,
		})
		if err == nil {
			continue
		}
		fields := []zap.Field{
			zap.String("event_id", event.EventID),
			zap.String("product_id", item.ProductID),
			zap.Error(err),
		}
		if apperror.KindOf(err) == apperror.KindInternal {
			l.logger.Error("Failed to set entry quantity", fields...)
		} else {
			l.logger.Warn("Restock item rejected", fields...)
		}
	}
}
