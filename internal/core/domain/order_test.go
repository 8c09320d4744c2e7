package domain_test

import (
	"testing"

	"github.com/govalues/decimal"
	"github.com/restocinta/orderdesk/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCartTotal(t *testing.T) {
	tests := []struct {
		name     string
		items    []domain.LineItem
		expTotal string
		expError error
	}{
		{
			name: "single item",
			items: []domain.LineItem{
				{Name: "Nasi Goreng", UnitPrice: decimal.MustParse("25000"), Quantity: 1},
			},
			expTotal: "25000",
		},
		{
			name: "quantity multiplies",
			items: []domain.LineItem{
				{Name: "Nasi Goreng", UnitPrice: decimal.MustParse("25000"), Quantity: 2},
				{Name: "Es Teh Manis", UnitPrice: decimal.MustParse("8000"), Quantity: 3},
			},
			expTotal: "74000",
		},
		{
			name:     "empty cart",
			items:    []domain.LineItem{},
			expError: domain.ErrEmptyCart,
		},
		{
			name: "zero quantity",
			items: []domain.LineItem{
				{Name: "Sate Ayam", UnitPrice: decimal.MustParse("30000"), Quantity: 0},
			},
			expError: domain.ErrCartBadQuantity,
		},
		{
			name: "negative quantity",
			items: []domain.LineItem{
				{Name: "Sate Ayam", UnitPrice: decimal.MustParse("30000"), Quantity: -1},
			},
			expError: domain.ErrCartBadQuantity,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			total, err := domain.CartTotal(test.items)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, decimal.MustParse(test.expTotal), total)
		})
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from    domain.OrderStatus
		to      domain.OrderStatus
		allowed bool
	}{
		{domain.OrderStatusPending, domain.OrderStatusPaid, true},
		{domain.OrderStatusPending, domain.OrderStatusProcessing, true},
		{domain.OrderStatusPending, domain.OrderStatusDone, false},
		{domain.OrderStatusPaid, domain.OrderStatusProcessing, true},
		{domain.OrderStatusPaid, domain.OrderStatusDone, true},
		{domain.OrderStatusPaid, domain.OrderStatusPending, false},
		{domain.OrderStatusProcessing, domain.OrderStatusDone, true},
		{domain.OrderStatusProcessing, domain.OrderStatusPending, false},
		{domain.OrderStatusProcessing, domain.OrderStatusPaid, false},
		{domain.OrderStatusDone, domain.OrderStatusPending, false},
		{domain.OrderStatusDone, domain.OrderStatusProcessing, false},
		{domain.OrderStatusDone, domain.OrderStatusPaid, false},
	}

	for _, test := range tests {
		t.Run(string(test.from)+"->"+string(test.to), func(t *testing.T) {
			assert.Equal(t, test.allowed, test.from.CanTransitionTo(test.to))
		})
	}
}

func TestParseOrderStatus(t *testing.T) {
	status, err := domain.ParseOrderStatus("Paid")
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, status)

	_, err = domain.ParseOrderStatus("Shipped")
	assert.ErrorIs(t, err, domain.ErrBadOrderStatus)
}
