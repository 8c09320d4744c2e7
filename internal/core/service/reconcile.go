package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/restocinta/orderdesk/internal/core/domain"
	"go.uber.org/zap"
)

// reportedStatusPaid is the only gateway status that triggers a write.
const reportedStatusPaid = "PAID"

// ReconcilePayment applies a payment notification to an order exactly once.
// Webhook delivery is at-least-once and may be duplicated or re-ordered, so
// the whole decision rides on a single conditional update at the store:
// Pending -> Paid where external_id matches. A zero-row outcome is the
// expected shape of a duplicate delivery and is reported as Ignored, never
// as an error; the gateway retries on anything non-2xx.
func (s *Service) ReconcilePayment(ctx context.Context, externalID string, reportedStatus string) (domain.ReconcileResult, error) {
	if reportedStatus != reportedStatusPaid {
		s.logger.Debug("Reconcile skipped, status not PAID",
			zap.String("external_id", externalID),
			zap.String("status", reportedStatus))
		s.metrics.ReconcileProcessed("skipped")
		return domain.ReconcileIgnored, nil
	}

	id, err := uuid.Parse(externalID)
	if err != nil {
		// A malformed id never matches an order. Answering with an error
		// would only make the gateway retry a permanently bad payload.
		s.logger.Warn("Reconcile with malformed external id",
			zap.String("external_id", externalID))
		s.metrics.ReconcileProcessed("unknown")
		return domain.ReconcileIgnored, nil
	}

	settled, err := s.repo.SettleOrderPayment(ctx, id)
	if err != nil {
		s.logger.Error("Settle order payment",
			zap.String("external_id", externalID), zap.Error(err))
		s.metrics.ReconcileProcessed("error")
		return "", domain.ErrInternal
	}

	if settled {
		s.logger.Info("Order reconciled as paid", zap.String("order", externalID))
		s.metrics.ReconcileProcessed("reconciled")
		return domain.ReconcileReconciled, nil
	}

	// No Pending row matched: either a duplicate/late delivery or an order
	// this store has never seen. Same outward result, different log level.
	if _, err := s.repo.ReadOrder(ctx, id); err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			s.logger.Warn("Reconcile for unknown order", zap.String("external_id", externalID))
			s.metrics.ReconcileProcessed("unknown")
			return domain.ReconcileIgnored, nil
		}
		s.logger.Error("Read order after settle no-op",
			zap.String("external_id", externalID), zap.Error(err))
		return "", domain.ErrInternal
	}

	s.logger.Debug("Reconcile duplicate, order already left Pending",
		zap.String("order", externalID))
	s.metrics.ReconcileProcessed("duplicate")
	return domain.ReconcileIgnored, nil
}
