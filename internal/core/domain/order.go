package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusPaid       OrderStatus = "Paid"
	OrderStatusDone       OrderStatus = "Done"
)

// statusTransitions is the full transition table. Pending -> Paid is
// reserved for payment reconciliation; every other edge is a staff action.
// Nothing leaves Done and nothing returns to Pending.
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusPaid, OrderStatusProcessing},
	OrderStatusPaid:       {OrderStatusProcessing, OrderStatusDone},
	OrderStatusProcessing: {OrderStatusDone},
	OrderStatusDone:       {},
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := statusTransitions[status]; !ok {
		return "", ErrBadOrderStatus
	}
	return status, nil
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type LineItem struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int32           `json:"quantity"`
}

type Order struct {
	ID          uuid.UUID
	ExternalID  *uuid.UUID
	Items       []LineItem
	Total       decimal.Decimal
	Status      OrderStatus
	InvoiceURL  *string
	TableNumber *int32
	CreatedAt   time.Time
}

// CartTotal derives the order total from its line items. The total is never
// accepted from a client, only computed here.
func CartTotal(items []LineItem) (decimal.Decimal, error) {
	if len(items) == 0 {
		return decimal.Decimal{}, ErrEmptyCart
	}

	total := decimal.Zero
	for _, item := range items {
		if item.Quantity < 1 {
			return decimal.Decimal{}, ErrCartBadQuantity
		}

		qty, err := decimal.New(int64(item.Quantity), 0)
		if err != nil {
			return decimal.Decimal{}, err
		}
		line, err := item.UnitPrice.Mul(qty)
		if err != nil {
			return decimal.Decimal{}, err
		}
		total, err = total.Add(line)
		if err != nil {
			return decimal.Decimal{}, err
		}
	}

	return total, nil
}

type ReconcileResult string

const (
	ReconcileReconciled ReconcileResult = "reconciled"
	ReconcileIgnored    ReconcileResult = "ignored"
)
