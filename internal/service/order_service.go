package service

import (
	"context"

	"github.com/google/uuid"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

// OrderService coordinates order operations. It does not verify that the
// referenced user exists; the store's foreign key is the only guard.
type OrderService interface {
	Create(ctx context.Context, input repository.NewOrder) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	Update(ctx context.Context, id uuid.UUID, input repository.UpdateOrder) (*domain.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type orderService struct {
	orders repository.OrderRepository
}

func NewOrderService(orders repository.OrderRepository) OrderService {
	return &orderService{orders: orders}
}

func (s *orderService) Create(ctx context.Context, input repository.NewOrder) (*domain.Order, error) {
	return s.orders.Create(ctx, input)
}

func (s *orderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

func (s *orderService) Get(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return s.orders.Get(ctx, id)
}

func (s *orderService) Update(ctx context.Context, id uuid.UUID, input repository.UpdateOrder) (*domain.Order, error) {
	return s.orders.Update(ctx, id, input)
}

func (s *orderService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.orders.Delete(ctx, id)
}
