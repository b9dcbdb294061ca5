package listener

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/fekuna/omnipos-shift-service/internal/movement"
	"github.com/fekuna/omnipos-shift-service/internal/movement/dto"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/logger"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap/zaptest"
)

type fakeReader struct {
	msgs   []kafka.Message
	cancel context.CancelFunc
}

func (r *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	if msg.Value == nil {
		return kafka.Message{}, errors.New("broker hiccup")
	}
	return msg, nil
}

type fakeMovements struct {
	movement.UseCase
	mu      sync.Mutex
	entries []dto.SetEntryInput
}

func (f *fakeMovements) SetEntry(_ context.Context, input *dto.SetEntryInput) (*model.MovementRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, *input)
	return &model.MovementRecord{ShiftID: input.ShiftID, ProductID: input.ProductID, EntryQty: input.Quantity, PriceSnapshot: decimal.Zero}, nil
}

func message(t *testing.T, e RestockEvent) kafka.Message {
	t.Helper()
	b, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return kafka.Message{Value: b}
}

func TestListenerSetsEntryQuantities(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{cancel: cancel, msgs: []kafka.Message{
		message(t, RestockEvent{EventID: "e-1", EventType: EventInventoryRestocked, Payload: RestockPayload{
			Items: []RestockItemEntry{{ProductID: "coxinha", EntryQuantity: 10}, {ProductID: "suco", EntryQuantity: 4}},
		}}),
		{Value: nil},
		message(t, RestockEvent{EventID: "e-2", EventType: "OrderCreated"}),
		{Value: []byte("not json")},
		message(t, RestockEvent{EventID: "e-3", EventType: EventInventoryRestocked, Payload: RestockPayload{
			ShiftID: "s-9", Items: []RestockItemEntry{{ProductID: "pastel", EntryQuantity: 6}},
		}}),
	}}
	uc := &fakeMovements{}
	l := NewRestockListener(reader, uc, logger.Wrap(zaptest.NewLogger(t)))
	l.backoff = 0

	l.Start(ctx)

	if len(uc.entries) != 3 {
		t.Fatalf("expected three entries, got %+v", uc.entries)
	}
	if uc.entries[0].ProductID != "coxinha" || uc.entries[0].Quantity != 10 || uc.entries[0].ShiftID != "" {
		t.Fatalf("unexpected first entry %+v", uc.entries[0])
	}
	if uc.entries[2].ShiftID != "s-9" || uc.entries[2].Quantity != 6 {
		t.Fatalf("unexpected targeted entry %+v", uc.entries[2])
	}
}
