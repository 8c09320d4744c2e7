package feed

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/restocinta/orderdesk/internal/adapter/storage"
	"github.com/restocinta/orderdesk/internal/core/port"
	"go.uber.org/zap"
)

const ordersChannel = "orders_changed"
const reconnectWait = time.Second

// Feed turns postgres NOTIFY events from the orders table into a change
// stream. Delivery is best effort: notifications raised while the listener
// is reconnecting are lost, which is why consumers pair the stream with a
// periodic resync.
type Feed struct {
	db     *storage.DB
	logger *zap.Logger
}

func NewFeed(db *storage.DB, logger *zap.Logger) (*Feed, error) {
	return &Feed{db: db, logger: logger}, nil
}

type changePayload struct {
	ID string `json:"id"`
	Op string `json:"op"`
}

func (f *Feed) Subscribe(ctx context.Context) (<-chan port.OrderChange, error) {
	changes := make(chan port.OrderChange, 64)
	go f.listen(ctx, changes)
	return changes, nil
}

func (f *Feed) listen(ctx context.Context, changes chan<- port.OrderChange) {
	defer close(changes)

	for ctx.Err() == nil {
		if err := f.listenOnce(ctx, changes); err != nil && ctx.Err() == nil {
			f.logger.Error("change feed connection lost", zap.Error(err))

			select {
			case <-ctx.Done():
			case <-time.After(reconnectWait):
			}
		}
	}
}

func (f *Feed) listenOnce(ctx context.Context, changes chan<- port.OrderChange) error {
	conn, err := f.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+ordersChannel); err != nil {
		return err
	}
	f.logger.Debug("listening for order changes")

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}

		var payload changePayload
		if err := json.Unmarshal([]byte(notification.Payload), &payload); err != nil {
			f.logger.Warn("malformed change notification",
				zap.String("payload", notification.Payload), zap.Error(err))
			continue
		}

		id, err := uuid.Parse(payload.ID)
		if err != nil {
			f.logger.Warn("change notification without order id",
				zap.String("payload", notification.Payload))
			continue
		}

		change := port.OrderChange{OrderID: id, Op: port.ChangeOp(payload.Op)}

		select {
		case changes <- change:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
