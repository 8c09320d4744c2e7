package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/restocinta/orderdesk/internal/core/domain"
)

type ChangeOp string

const (
	ChangeOpInsert ChangeOp = "insert"
	ChangeOpUpdate ChangeOp = "update"
)

// OrderChange is one row-level notification from the store. Delivery is
// at-least-once; consumers must tolerate duplicates and replay.
type OrderChange struct {
	OrderID uuid.UUID
	Op      ChangeOp
}

//go:generate mockgen -source=feed.go -destination=mock/feed.go -package=mock
type ChangeFeed interface {
	Subscribe(ctx context.Context) (<-chan OrderChange, error)
}

// DashboardNotifier pushes observed order state to connected dashboards.
type DashboardNotifier interface {
	NotifyOrderChanged(order *domain.Order)
}
