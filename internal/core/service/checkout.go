package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/restocinta/orderdesk/internal/core/domain"
	"github.com/restocinta/orderdesk/internal/core/port"
	"go.uber.org/zap"
)

// Checkout turns a cart into a persisted Pending order and attaches a
// payment link. Every step only fills fields that are still null, so a
// failure at any point leaves a valid, resumable order. When an order was
// already created it is returned alongside the error so the caller can
// retry the failed step by id.
func (s *Service) Checkout(ctx context.Context, items []domain.LineItem, tableNumber *int32) (*domain.Order, error) {
	total, err := domain.CartTotal(items)
	if err != nil {
		s.metrics.CheckoutProcessed("rejected")
		return nil, err
	}

	order := &domain.Order{
		Items:       items,
		Total:       total,
		Status:      domain.OrderStatusPending,
		TableNumber: tableNumber,
	}

	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Create order", zap.Error(err))
		s.metrics.CheckoutProcessed("error")
		return nil, domain.ErrInternal
	}

	linked, err := s.repo.LinkOrder(ctx, created.ID)
	if err != nil {
		s.logger.Error("Link order to payment transaction",
			zap.String("order", created.ID.String()), zap.Error(err))
		s.metrics.CheckoutProcessed("unlinked")
		return created, domain.ErrOrderUnlinked
	}

	enriched, err := s.issueInvoice(ctx, linked)
	if err != nil {
		s.metrics.CheckoutProcessed("no_invoice")
		return linked, err
	}

	s.metrics.CheckoutProcessed("ok")
	return enriched, nil
}

// RetryInvoice resumes an interrupted checkout for an existing order:
// relinks when needed and requests a payment link. Safe to call any number
// of times; it never creates a second order and never replaces an existing
// invoice URL.
func (s *Service) RetryInvoice(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.InvoiceURL != nil {
		return order, nil
	}

	if order.ExternalID == nil {
		order, err = s.repo.LinkOrder(ctx, order.ID)
		if err != nil {
			s.logger.Error("Link order to payment transaction",
				zap.String("order", orderID.String()), zap.Error(err))
			return nil, domain.ErrOrderUnlinked
		}
	}

	return s.issueInvoice(ctx, order)
}

// OrderQR requests a dynamic QR payment code for an existing order. The
// order record is not touched; the code is payment-gateway state.
func (s *Service) OrderQR(ctx context.Context, orderID uuid.UUID) (*port.QRCode, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.ExternalID == nil {
		return nil, domain.ErrOrderUnlinked
	}

	qr, err := s.gateway.CreateQR(ctx, port.InvoiceRequest{
		ExternalID: *order.ExternalID,
		Amount:     order.Total,
	})
	if err != nil {
		s.logger.Error("Create QR code",
			zap.String("order", orderID.String()), zap.Error(err))
		return nil, domain.ErrInvoiceRequest
	}

	return qr, nil
}

func (s *Service) issueInvoice(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	invoice, err := s.gateway.CreateInvoice(ctx, port.InvoiceRequest{
		ExternalID: *order.ExternalID,
		Amount:     order.Total,
	})
	if err != nil {
		s.logger.Error("Create invoice",
			zap.String("order", order.ID.String()), zap.Error(err))
		return nil, domain.ErrInvoiceRequest
	}

	withInvoice, err := s.repo.AttachInvoice(ctx, order.ID, invoice.URL)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrDataNotFound
		}
		s.logger.Error("Attach invoice url",
			zap.String("order", order.ID.String()), zap.Error(err))
		return nil, domain.ErrInternal
	}

	return withInvoice, nil
}
