package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/restocinta/orderdesk/internal/core/domain"
	"github.com/restocinta/orderdesk/internal/core/port"
	"github.com/restocinta/orderdesk/internal/core/utils"
	"go.uber.org/zap"
)

type Service struct {
	repo         port.Repository
	gateway      port.PaymentGateway
	tokenService port.TokenService
	menuCache    port.MenuCache
	metrics      port.Metrics
	logger       *zap.Logger
}

func NewService(repo port.Repository, gateway port.PaymentGateway,
	tokenService port.TokenService, menuCache port.MenuCache,
	metrics port.Metrics, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:         repo,
		gateway:      gateway,
		tokenService: tokenService,
		menuCache:    menuCache,
		metrics:      metrics,
		logger:       logger,
	}, nil
}

func (s *Service) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrDataNotFound
		}
		s.logger.Error("Read order", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	list, err := s.repo.ListOrders(ctx)
	if err != nil {
		s.logger.Error("List orders", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

// SetOrderStatus applies a manual staff transition. Pending -> Paid stays
// exclusive to payment reconciliation and is rejected here.
func (s *Service) SetOrderStatus(ctx context.Context, id uuid.UUID, next domain.OrderStatus) (*domain.Order, error) {
	if next == domain.OrderStatusPaid {
		return nil, domain.ErrStatusTransition
	}

	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, domain.ErrStatusTransition
	}

	updated, err := s.repo.UpdateOrderStatus(ctx, id, order.Status, next)
	if err != nil {
		if errors.Is(err, domain.ErrNoUpdatedData) || errors.Is(err, domain.ErrDataNotFound) {
			return nil, err
		}
		s.logger.Error("Update order status", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return updated, nil
}

func (s *Service) Menu(ctx context.Context) ([]*domain.MenuItem, error) {
	if s.menuCache != nil {
		items, err := s.menuCache.Get(ctx)
		if err == nil {
			return items, nil
		}
		if !errors.Is(err, domain.ErrDataNotFound) {
			s.logger.Warn("Menu cache read", zap.Error(err))
		}
	}

	items, err := s.repo.ListMenu(ctx)
	if err != nil {
		s.logger.Error("List menu", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if s.menuCache != nil {
		if err := s.menuCache.Set(ctx, items); err != nil {
			s.logger.Warn("Menu cache write", zap.Error(err))
		}
	}

	return items, nil
}

func (s *Service) RegisterStaff(ctx context.Context, staff *domain.Staff) (*domain.Staff, error) {
	exStaff, err := s.repo.GetStaffByLogin(ctx, staff.Login)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get staff", zap.Error(err))
		return nil, domain.ErrInternal
	}
	if exStaff != nil {
		return nil, domain.ErrConflictingData
	}

	hashed, err := utils.HashPassword(staff.Password)
	if err != nil {
		s.logger.Error("Hash password", zap.Error(err))
		return nil, domain.ErrInternal
	}
	staff.Password = hashed

	newStaff, err := s.repo.CreateStaff(ctx, staff)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, domain.ErrConflictingData
		}
		s.logger.Error("Create staff", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newStaff, nil
}

func (s *Service) LoginStaff(ctx context.Context, login string, password string) (string, error) {
	staff, err := s.repo.GetStaffByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", domain.ErrInternal
	}

	err = utils.ComparePassword(password, staff.Password)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(staff)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return "", domain.ErrTokenCreation
	}

	return token, nil
}
