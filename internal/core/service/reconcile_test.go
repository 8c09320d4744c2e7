package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/restocinta/orderdesk/internal/core/domain"
	"github.com/restocinta/orderdesk/internal/core/port/mock"
	"github.com/stretchr/testify/assert"
)

func TestService_ReconcilePayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	orderID := uuid.New()

	tests := []struct {
		name       string
		externalID string
		status     string
		mock       prepareMocks
		expResult  domain.ReconcileResult
		expError   error
	}{
		{
			name:       "paid notification settles pending order",
			externalID: orderID.String(),
			status:     "PAID",
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
				repo.EXPECT().SettleOrderPayment(gomock.Any(), orderID).Return(true, nil)
			},
			expResult: domain.ReconcileReconciled,
		},
		{
			name:       "duplicate delivery is a no-op",
			externalID: orderID.String(),
			status:     "PAID",
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
				repo.EXPECT().SettleOrderPayment(gomock.Any(), orderID).Return(false, nil)
				repo.EXPECT().ReadOrder(gomock.Any(), orderID).
					Return(&domain.Order{ID: orderID, Status: domain.OrderStatusPaid}, nil)
			},
			expResult: domain.ReconcileIgnored,
		},
		{
			name:       "unknown external id ignored",
			externalID: orderID.String(),
			status:     "PAID",
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
				repo.EXPECT().SettleOrderPayment(gomock.Any(), orderID).Return(false, nil)
				repo.EXPECT().ReadOrder(gomock.Any(), orderID).Return(nil, domain.ErrDataNotFound)
			},
			expResult: domain.ReconcileIgnored,
		},
		{
			name:       "non-PAID status never touches the store",
			externalID: orderID.String(),
			status:     "EXPIRED",
			expResult:  domain.ReconcileIgnored,
		},
		{
			name:       "malformed external id ignored",
			externalID: "not-a-uuid",
			status:     "PAID",
			expResult:  domain.ReconcileIgnored,
		},
		{
			name:       "store failure surfaces for gateway retry",
			externalID: orderID.String(),
			status:     "PAID",
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
				repo.EXPECT().SettleOrderPayment(gomock.Any(), orderID).
					Return(false, errors.New("pg down"))
			},
			expResult: "",
			expError:  domain.ErrInternal,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newTestService(t, mockCtrl, test.mock)

			result, err := s.ReconcilePayment(context.Background(), test.externalID, test.status)

			assert.Equal(t, test.expResult, result)
			assert.Equal(t, test.expError, err)
		})
	}
}

// Two deliveries of the same notification racing: the store lets exactly
// one conditional update through, so one call reconciles and the other is
// ignored without error.
func TestService_ReconcilePaymentExactlyOnce(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	orderID := uuid.New()

	s := newTestService(t, mockCtrl, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
		first := repo.EXPECT().SettleOrderPayment(gomock.Any(), orderID).Return(true, nil)
		repo.EXPECT().SettleOrderPayment(gomock.Any(), orderID).Return(false, nil).After(first)
		repo.EXPECT().ReadOrder(gomock.Any(), orderID).
			Return(&domain.Order{ID: orderID, Status: domain.OrderStatusPaid}, nil)
	})

	result, err := s.ReconcilePayment(context.Background(), orderID.String(), "PAID")
	assert.NoError(t, err)
	assert.Equal(t, domain.ReconcileReconciled, result)

	result, err = s.ReconcilePayment(context.Background(), orderID.String(), "PAID")
	assert.NoError(t, err)
	assert.Equal(t, domain.ReconcileIgnored, result)
}
