package memory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

var errNegativePrice = errors.New("CHECK constraint failed: price_cents >= 0")

type ProductRepository struct {
	products *collection[domain.Product]
}

func NewProductRepository() *ProductRepository {
	products := newCollection(
		func(p domain.Product) uuid.UUID { return p.ID },
		func(p domain.Product) time.Time { return p.CreatedAt },
		func(p domain.Product) string { return p.SKU },
	)
	products.check = func(p domain.Product) error {
		if p.PriceCents < 0 {
			return errNegativePrice
		}
		return nil
	}
	return &ProductRepository{products: products}
}

func (r *ProductRepository) Create(_ context.Context, input repository.NewProduct) (*domain.Product, error) {
	ts := now()
	product := domain.Product{
		ID:         uuid.New(),
		SKU:        input.SKU,
		Name:       input.Name,
		PriceCents: input.PriceCents,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}
	if err := r.products.insert(product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) List(_ context.Context) ([]domain.Product, error) {
	return r.products.list(), nil
}

func (r *ProductRepository) Get(_ context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := r.products.get(id)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) Update(_ context.Context, id uuid.UUID, input repository.UpdateProduct) (*domain.Product, error) {
	product, err := r.products.update(id, func(p *domain.Product) {
		if input.SKU != nil {
			p.SKU = *input.SKU
		}
		if input.Name != nil {
			p.Name = *input.Name
		}
		if input.PriceCents != nil {
			p.PriceCents = *input.PriceCents
		}
		p.UpdatedAt = now()
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.products.delete(id)
}
