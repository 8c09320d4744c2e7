package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/restocinta/orderdesk/internal/adapter/metrics"
	"github.com/restocinta/orderdesk/internal/core/domain"
	"github.com/restocinta/orderdesk/internal/core/port"
	"github.com/restocinta/orderdesk/internal/core/port/mock"
	"github.com/restocinta/orderdesk/internal/core/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type prepareAutoPrintMocks func(repo *mock.MockRepository,
	printer *mock.MockReceiptPrinter, notifier *mock.MockDashboardNotifier)

func newTestAutoPrinter(t *testing.T, mockCtrl *gomock.Controller,
	prepare prepareAutoPrintMocks) *service.AutoPrinter {
	t.Helper()

	repo := mock.NewMockRepository(mockCtrl)
	printer := mock.NewMockReceiptPrinter(mockCtrl)
	notifier := mock.NewMockDashboardNotifier(mockCtrl)
	if prepare != nil {
		prepare(repo, printer, notifier)
	}

	ap, err := service.NewAutoPrinter(repo, printer, notifier,
		metrics.NewOrderMetrics(prometheus.NewRegistry()),
		port.PrintModeThermal, zap.NewNop())
	assert.NoError(t, err)
	return ap
}

func TestAutoPrinter_HandleOrderChange(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	orderID := uuid.New()
	paid := &domain.Order{
		ID:     orderID,
		Items:  []domain.LineItem{{Name: "Nasi Goreng", UnitPrice: decimal.MustParse("25000"), Quantity: 1}},
		Total:  decimal.MustParse("25000"),
		Status: domain.OrderStatusPaid,
	}
	pending := &domain.Order{ID: orderID, Total: decimal.MustParse("25000"), Status: domain.OrderStatusPending}

	tests := []struct {
		name     string
		mock     prepareAutoPrintMocks
		expError error
	}{
		{
			name: "paid order wins claim and prints",
			mock: func(repo *mock.MockRepository, printer *mock.MockReceiptPrinter, notifier *mock.MockDashboardNotifier) {
				repo.EXPECT().ReadOrder(gomock.Any(), orderID).Return(paid, nil)
				notifier.EXPECT().NotifyOrderChanged(paid)
				repo.EXPECT().ClaimReceiptPrint(gomock.Any(), orderID).Return(true, nil)
				printer.EXPECT().Print(gomock.Any(), gomock.Any(), port.PrintModeThermal).
					DoAndReturn(func(_ context.Context, receipt *domain.Receipt, _ port.PrintMode) error {
						assert.Equal(t, orderID, receipt.OrderID)
						assert.Equal(t, paid.Total, receipt.Total)
						return nil
					})
			},
		},
		{
			name: "lost claim skips printing",
			mock: func(repo *mock.MockRepository, printer *mock.MockReceiptPrinter, notifier *mock.MockDashboardNotifier) {
				repo.EXPECT().ReadOrder(gomock.Any(), orderID).Return(paid, nil)
				notifier.EXPECT().NotifyOrderChanged(paid)
				repo.EXPECT().ClaimReceiptPrint(gomock.Any(), orderID).Return(false, nil)
			},
		},
		{
			name: "non-paid order only notifies",
			mock: func(repo *mock.MockRepository, printer *mock.MockReceiptPrinter, notifier *mock.MockDashboardNotifier) {
				repo.EXPECT().ReadOrder(gomock.Any(), orderID).Return(pending, nil)
				notifier.EXPECT().NotifyOrderChanged(pending)
			},
		},
		{
			name: "vanished row is a no-op",
			mock: func(repo *mock.MockRepository, printer *mock.MockReceiptPrinter, notifier *mock.MockDashboardNotifier) {
				repo.EXPECT().ReadOrder(gomock.Any(), orderID).Return(nil, domain.ErrDataNotFound)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ap := newTestAutoPrinter(t, mockCtrl, test.mock)

			err := ap.HandleOrderChange(context.Background(), orderID)
			assert.Equal(t, test.expError, err)
		})
	}
}

// Duplicate feed deliveries for the same paid order must produce a single
// print. The first call takes the durable claim; the replay loses it.
func TestAutoPrinter_DuplicateEventsPrintOnce(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	orderID := uuid.New()
	paid := &domain.Order{ID: orderID, Total: decimal.MustParse("25000"), Status: domain.OrderStatusPaid}

	ap := newTestAutoPrinter(t, mockCtrl, func(repo *mock.MockRepository,
		printer *mock.MockReceiptPrinter, notifier *mock.MockDashboardNotifier) {
		repo.EXPECT().ReadOrder(gomock.Any(), orderID).Return(paid, nil).Times(2)
		notifier.EXPECT().NotifyOrderChanged(paid).Times(2)
		first := repo.EXPECT().ClaimReceiptPrint(gomock.Any(), orderID).Return(true, nil)
		repo.EXPECT().ClaimReceiptPrint(gomock.Any(), orderID).Return(false, nil).After(first)
		printer.EXPECT().Print(gomock.Any(), gomock.Any(), port.PrintModeThermal).Return(nil).Times(1)
	})

	assert.NoError(t, ap.HandleOrderChange(context.Background(), orderID))
	assert.NoError(t, ap.HandleOrderChange(context.Background(), orderID))
}

// A failed render after the claim was taken must not release the claim:
// the order stays marked and no retry path risks a duplicate receipt.
func TestAutoPrinter_PrintFailureKeepsClaim(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	orderID := uuid.New()
	paid := &domain.Order{ID: orderID, Total: decimal.MustParse("25000"), Status: domain.OrderStatusPaid}
	printErr := errors.New("render service down")

	ap := newTestAutoPrinter(t, mockCtrl, func(repo *mock.MockRepository,
		printer *mock.MockReceiptPrinter, notifier *mock.MockDashboardNotifier) {
		repo.EXPECT().ReadOrder(gomock.Any(), orderID).Return(paid, nil)
		notifier.EXPECT().NotifyOrderChanged(paid)
		repo.EXPECT().ClaimReceiptPrint(gomock.Any(), orderID).Return(true, nil)
		printer.EXPECT().Print(gomock.Any(), gomock.Any(), port.PrintModeThermal).Return(printErr)
	})

	err := ap.HandleOrderChange(context.Background(), orderID)
	assert.ErrorIs(t, err, printErr)
}

func TestAutoPrinter_RunConsumesFeedUntilCancel(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	orderID := uuid.New()
	paid := &domain.Order{ID: orderID, Total: decimal.MustParse("25000"), Status: domain.OrderStatusPaid}

	events := make(chan port.OrderChange, 1)
	events <- port.OrderChange{OrderID: orderID, Op: port.ChangeOpUpdate}

	feed := mock.NewMockChangeFeed(mockCtrl)
	feed.EXPECT().Subscribe(gomock.Any()).Return((<-chan port.OrderChange)(events), nil)

	handled := make(chan struct{})
	ap := newTestAutoPrinter(t, mockCtrl, func(repo *mock.MockRepository,
		printer *mock.MockReceiptPrinter, notifier *mock.MockDashboardNotifier) {
		repo.EXPECT().ListUnprintedPaid(gomock.Any()).Return(nil, nil).AnyTimes()
		repo.EXPECT().ReadOrder(gomock.Any(), orderID).Return(paid, nil)
		notifier.EXPECT().NotifyOrderChanged(paid)
		repo.EXPECT().ClaimReceiptPrint(gomock.Any(), orderID).Return(true, nil)
		printer.EXPECT().Print(gomock.Any(), gomock.Any(), port.PrintModeThermal).
			DoAndReturn(func(context.Context, *domain.Receipt, port.PrintMode) error {
				close(handled)
				return nil
			})
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ap.Run(ctx, feed, time.Hour) }()

	<-handled
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
