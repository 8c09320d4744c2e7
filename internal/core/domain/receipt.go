package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

// Receipt is the authoritative order snapshot handed to the rendering
// service at the moment printing is triggered.
type Receipt struct {
	OrderID     uuid.UUID       `json:"order_id"`
	Items       []LineItem      `json:"items"`
	Total       decimal.Decimal `json:"total"`
	TableNumber *int32          `json:"table_number,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
