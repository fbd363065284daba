package repository

import (
	"context"

	"github.com/google/uuid"

	"storefront/internal/domain"
)

// NewOrder carries the fields required to create an order.
type NewOrder struct {
	UserID     uuid.UUID
	Status     string
	TotalCents int64
}

// UpdateOrder is a partial update; nil fields are left unchanged.
type UpdateOrder struct {
	Status     *string
	TotalCents *int64
}

// OrderRepository defines persistence operations for Order entities.
type OrderRepository interface {
	Create(ctx context.Context, input NewOrder) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateOrder) (*domain.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
