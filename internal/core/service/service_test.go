package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/restocinta/orderdesk/internal/adapter/metrics"
	"github.com/restocinta/orderdesk/internal/core/domain"
	"github.com/restocinta/orderdesk/internal/core/port/mock"
	"github.com/restocinta/orderdesk/internal/core/service"
	"github.com/restocinta/orderdesk/internal/core/utils"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestService_SetOrderStatus(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	orderID := uuid.New()
	paid := &domain.Order{ID: orderID, Status: domain.OrderStatusPaid}
	processing := &domain.Order{ID: orderID, Status: domain.OrderStatusProcessing}

	tests := []struct {
		name      string
		next      domain.OrderStatus
		mock      prepareMocks
		expResult *domain.Order
		expError  error
	}{
		{
			name: "paid to processing",
			next: domain.OrderStatusProcessing,
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
				repo.EXPECT().ReadOrder(gomock.Any(), orderID).Return(paid, nil)
				repo.EXPECT().UpdateOrderStatus(gomock.Any(), orderID,
					domain.OrderStatusPaid, domain.OrderStatusProcessing).Return(processing, nil)
			},
			expResult: processing,
		},
		{
			name:      "manual transition to paid rejected",
			next:      domain.OrderStatusPaid,
			expResult: nil,
			expError:  domain.ErrStatusTransition,
		},
		{
			name: "pending to done rejected",
			next: domain.OrderStatusDone,
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
				repo.EXPECT().ReadOrder(gomock.Any(), orderID).
					Return(&domain.Order{ID: orderID, Status: domain.OrderStatusPending}, nil)
			},
			expResult: nil,
			expError:  domain.ErrStatusTransition,
		},
		{
			name: "lost update race surfaces as conflict",
			next: domain.OrderStatusProcessing,
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
				repo.EXPECT().ReadOrder(gomock.Any(), orderID).Return(paid, nil)
				repo.EXPECT().UpdateOrderStatus(gomock.Any(), orderID,
					domain.OrderStatusPaid, domain.OrderStatusProcessing).
					Return(nil, domain.ErrNoUpdatedData)
			},
			expResult: nil,
			expError:  domain.ErrNoUpdatedData,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newTestService(t, mockCtrl, test.mock)

			result, err := s.SetOrderStatus(context.Background(), orderID, test.next)

			assert.Equal(t, test.expResult, result)
			assert.Equal(t, test.expError, err)
		})
	}
}

func TestService_Menu(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	menu := []*domain.MenuItem{
		{ID: 1, Name: "Nasi Goreng", Price: decimal.MustParse("25000")},
		{ID: 2, Name: "Es Teh Manis", Price: decimal.MustParse("8000")},
	}

	type prepareMenuMocks func(repo *mock.MockRepository, cache *mock.MockMenuCache)

	tests := []struct {
		name string
		mock prepareMenuMocks
	}{
		{
			name: "cache hit skips the store",
			mock: func(repo *mock.MockRepository, cache *mock.MockMenuCache) {
				cache.EXPECT().Get(gomock.Any()).Return(menu, nil)
			},
		},
		{
			name: "cache miss fills the cache",
			mock: func(repo *mock.MockRepository, cache *mock.MockMenuCache) {
				cache.EXPECT().Get(gomock.Any()).Return(nil, domain.ErrDataNotFound)
				repo.EXPECT().ListMenu(gomock.Any()).Return(menu, nil)
				cache.EXPECT().Set(gomock.Any(), menu).Return(nil)
			},
		},
		{
			name: "cache failure degrades to the store",
			mock: func(repo *mock.MockRepository, cache *mock.MockMenuCache) {
				cache.EXPECT().Get(gomock.Any()).Return(nil, errors.New("redis down"))
				repo.EXPECT().ListMenu(gomock.Any()).Return(menu, nil)
				cache.EXPECT().Set(gomock.Any(), menu).Return(errors.New("redis down"))
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			gateway := mock.NewMockPaymentGateway(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			cache := mock.NewMockMenuCache(mockCtrl)
			test.mock(repo, cache)

			s, err := service.NewService(repo, gateway, ts, cache,
				metrics.NewOrderMetrics(prometheus.NewRegistry()), zap.NewNop())
			assert.NoError(t, err)

			items, err := s.Menu(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, menu, items)
		})
	}
}

func TestService_RegisterStaff(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	staff := &domain.Staff{ID: 1, Login: "kasir"}

	tests := []struct {
		name      string
		mock      prepareMocks
		expResult *domain.Staff
		expError  error
	}{
		{
			name: "register good",
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
				repo.EXPECT().GetStaffByLogin(gomock.Any(), "kasir").Return(nil, domain.ErrDataNotFound)
				repo.EXPECT().CreateStaff(gomock.Any(), gomock.Any()).Return(staff, nil)
			},
			expResult: staff,
		},
		{
			name: "register already exists",
			mock: func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
				repo.EXPECT().GetStaffByLogin(gomock.Any(), "kasir").Return(staff, nil)
			},
			expResult: nil,
			expError:  domain.ErrConflictingData,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newTestService(t, mockCtrl, test.mock)

			result, err := s.RegisterStaff(context.Background(),
				&domain.Staff{Login: "kasir", Password: "rahasia"})

			assert.Equal(t, test.expResult, result)
			assert.Equal(t, test.expError, err)
		})
	}
}

func TestService_LoginStaff(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	hashed, err := utils.HashPassword("rahasia")
	assert.NoError(t, err)
	staff := &domain.Staff{ID: 1, Login: "kasir", Password: hashed}

	t.Run("login good", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		gateway := mock.NewMockPaymentGateway(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		repo.EXPECT().GetStaffByLogin(gomock.Any(), "kasir").Return(staff, nil)
		ts.EXPECT().CreateToken(staff).Return("token", nil)

		s, err := service.NewService(repo, gateway, ts, nil,
			metrics.NewOrderMetrics(prometheus.NewRegistry()), zap.NewNop())
		assert.NoError(t, err)

		token, err := s.LoginStaff(context.Background(), "kasir", "rahasia")
		assert.NoError(t, err)
		assert.Equal(t, "token", token)
	})

	t.Run("wrong password", func(t *testing.T) {
		s := newTestService(t, mockCtrl, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
			repo.EXPECT().GetStaffByLogin(gomock.Any(), "kasir").Return(staff, nil)
		})

		_, err := s.LoginStaff(context.Background(), "kasir", "salah")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown login", func(t *testing.T) {
		s := newTestService(t, mockCtrl, func(repo *mock.MockRepository, gateway *mock.MockPaymentGateway) {
			repo.EXPECT().GetStaffByLogin(gomock.Any(), "tamu").Return(nil, domain.ErrDataNotFound)
		})

		_, err := s.LoginStaff(context.Background(), "tamu", "rahasia")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
