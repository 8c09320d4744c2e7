package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

type InvoiceRequest struct {
	ExternalID uuid.UUID
	Amount     decimal.Decimal
}

type Invoice struct {
	URL        string
	ProviderID string
}

type QRCode struct {
	Payload    string
	ProviderID string
}

// PaymentGateway is the consumed contract of the external payment provider.
// Calls are at-most-once per attempt; retries belong to the caller.
//
//go:generate mockgen -source=payment.go -destination=mock/payment.go -package=mock
type PaymentGateway interface {
	CreateInvoice(ctx context.Context, req InvoiceRequest) (*Invoice, error)
	CreateQR(ctx context.Context, req InvoiceRequest) (*QRCode, error)
}
