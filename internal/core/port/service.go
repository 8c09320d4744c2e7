package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/restocinta/orderdesk/internal/core/domain"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type Service interface {
	Checkout(ctx context.Context, items []domain.LineItem, tableNumber *int32) (*domain.Order, error)
	RetryInvoice(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	OrderQR(ctx context.Context, orderID uuid.UUID) (*QRCode, error)

	ReconcilePayment(ctx context.Context, externalID string, reportedStatus string) (domain.ReconcileResult, error)

	GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	SetOrderStatus(ctx context.Context, id uuid.UUID, next domain.OrderStatus) (*domain.Order, error)

	Menu(ctx context.Context) ([]*domain.MenuItem, error)

	RegisterStaff(ctx context.Context, staff *domain.Staff) (*domain.Staff, error)
	LoginStaff(ctx context.Context, login string, password string) (string, error)
}
