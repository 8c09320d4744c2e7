package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/restocinta/orderdesk/internal/core/domain"
	"github.com/restocinta/orderdesk/internal/core/port"
	"go.uber.org/zap"
)

// AutoPrinter keeps the staff dashboard in sync with the order store and
// fires exactly one receipt print per paid order. Events arrive
// at-least-once and replay after reconnects, so the print decision is a
// durable per-order claim at the store, not in-process memory. The claim is
// taken before printing: a claimed-but-failed print surfaces in logs and
// metrics instead of risking a duplicate receipt.
type AutoPrinter struct {
	repo     port.Repository
	printer  port.ReceiptPrinter
	notifier port.DashboardNotifier
	metrics  port.Metrics
	mode     port.PrintMode
	logger   *zap.Logger
}

func NewAutoPrinter(repo port.Repository, printer port.ReceiptPrinter,
	notifier port.DashboardNotifier, metrics port.Metrics,
	mode port.PrintMode, logger *zap.Logger) (*AutoPrinter, error) {
	return &AutoPrinter{
		repo:     repo,
		printer:  printer,
		notifier: notifier,
		metrics:  metrics,
		mode:     mode,
		logger:   logger,
	}, nil
}

// Run consumes the change feed until ctx is done. A periodic sweep picks up
// paid orders whose notifications were lost while the feed was down.
func (ap *AutoPrinter) Run(ctx context.Context, feed port.ChangeFeed, resyncEvery time.Duration) error {
	events, err := feed.Subscribe(ctx)
	if err != nil {
		return err
	}

	if err := ap.resync(ctx); err != nil {
		ap.logger.Error("Initial resync", zap.Error(err))
	}

	ticker := time.NewTicker(resyncEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if err := ap.HandleOrderChange(ctx, event.OrderID); err != nil {
				ap.logger.Error("Apply order change",
					zap.String("order", event.OrderID.String()), zap.Error(err))
			}
		case <-ticker.C:
			if err := ap.resync(ctx); err != nil {
				ap.logger.Error("Resync", zap.Error(err))
			}
		}
	}
}

// HandleOrderChange is an idempotent fold over change events: refetch the
// row, push it to dashboards, and print when this call wins the claim.
func (ap *AutoPrinter) HandleOrderChange(ctx context.Context, orderID uuid.UUID) error {
	order, err := ap.repo.ReadOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			// Row vanished between notification and refetch; nothing to do.
			return nil
		}
		return err
	}

	if ap.notifier != nil {
		ap.notifier.NotifyOrderChanged(order)
	}

	if order.Status != domain.OrderStatusPaid {
		return nil
	}

	claimed, err := ap.repo.ClaimReceiptPrint(ctx, order.ID)
	if err != nil {
		return err
	}
	if !claimed {
		ap.logger.Debug("Receipt already printed", zap.String("order", order.ID.String()))
		return nil
	}

	receipt := &domain.Receipt{
		OrderID:     order.ID,
		Items:       order.Items,
		Total:       order.Total,
		TableNumber: order.TableNumber,
		CreatedAt:   order.CreatedAt,
	}

	if err := ap.printer.Print(ctx, receipt, ap.mode); err != nil {
		// The claim stays: one lost print beats any chance of duplicates.
		ap.metrics.PrintFailed(string(ap.mode))
		ap.logger.Error("Receipt print failed after claim",
			zap.String("order", order.ID.String()), zap.Error(err))
		return err
	}

	ap.metrics.ReceiptPrinted(string(ap.mode))
	ap.logger.Info("Receipt printed", zap.String("order", order.ID.String()))
	return nil
}

func (ap *AutoPrinter) resync(ctx context.Context) error {
	ids, err := ap.repo.ListUnprintedPaid(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := ap.HandleOrderChange(ctx, id); err != nil {
			ap.logger.Error("Resync order",
				zap.String("order", id.String()), zap.Error(err))
		}
	}
	return nil
}
