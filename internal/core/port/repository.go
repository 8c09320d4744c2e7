package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/restocinta/orderdesk/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// Order
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	// LinkOrder sets external_id = id. Idempotent: relinking an already
	// linked order is a no-op.
	LinkOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	// AttachInvoice stores the payment URL once; an existing URL is never
	// overwritten.
	AttachInvoice(ctx context.Context, id uuid.UUID, invoiceURL string) (*domain.Order, error)
	// SettleOrderPayment atomically moves the order matching externalID
	// from Pending to Paid. Returns false when no Pending row matched.
	SettleOrderPayment(ctx context.Context, externalID uuid.UUID) (bool, error)
	// UpdateOrderStatus applies next only if the row still carries current.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, current, next domain.OrderStatus) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)

	// Receipt printing
	// ClaimReceiptPrint durably marks the order as printed. Returns true
	// for the single caller that won the claim.
	ClaimReceiptPrint(ctx context.Context, orderID uuid.UUID) (bool, error)
	ListUnprintedPaid(ctx context.Context) ([]uuid.UUID, error)

	// Menu
	ListMenu(ctx context.Context) ([]*domain.MenuItem, error)

	// Staff
	CreateStaff(ctx context.Context, staff *domain.Staff) (*domain.Staff, error)
	GetStaffByLogin(ctx context.Context, login string) (*domain.Staff, error)
}
