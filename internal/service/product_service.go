package service

import (
	"context"

	"github.com/google/uuid"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

// ProductService exposes catalogue operations to transport adapters.
type ProductService interface {
	Create(ctx context.Context, input repository.NewProduct) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	Update(ctx context.Context, id uuid.UUID, input repository.UpdateProduct) (*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	products repository.ProductRepository
}

func NewProductService(products repository.ProductRepository) ProductService {
	return &productService{products: products}
}

func (s *productService) Create(ctx context.Context, input repository.NewProduct) (*domain.Product, error) {
	return s.products.Create(ctx, input)
}

func (s *productService) List(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.products.Get(ctx, id)
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, input repository.UpdateProduct) (*domain.Product, error) {
	return s.products.Update(ctx, id, input)
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.products.Delete(ctx, id)
}
