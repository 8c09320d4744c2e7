package port

import (
	"context"

	"github.com/restocinta/orderdesk/internal/core/domain"
)

type PrintMode string

const (
	PrintModePDF     PrintMode = "pdf"
	PrintModeThermal PrintMode = "thermal"
)

//go:generate mockgen -source=printer.go -destination=mock/printer.go -package=mock
type ReceiptPrinter interface {
	Print(ctx context.Context, receipt *domain.Receipt, mode PrintMode) error
}
