package repository

import (
	"context"

	"github.com/google/uuid"

	"storefront/internal/domain"
)

// NewProduct carries the fields required to create a product.
type NewProduct struct {
	SKU        string
	Name       string
	PriceCents int64
}

// UpdateProduct is a partial update; nil fields are left unchanged.
type UpdateProduct struct {
	SKU        *string
	Name       *string
	PriceCents *int64
}

// ProductRepository defines persistence operations for Product entities.
type ProductRepository interface {
	Create(ctx context.Context, input NewProduct) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProduct) (*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
