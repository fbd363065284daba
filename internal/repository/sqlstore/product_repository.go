package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

const createProductsTable = `
CREATE TABLE IF NOT EXISTS products (
	id %[1]s PRIMARY KEY,
	sku TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	price_cents BIGINT NOT NULL CHECK (price_cents >= 0),
	created_at %[2]s NOT NULL,
	updated_at %[2]s NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at);
`

type ProductRepository struct {
	table table[domain.Product]
}

func NewProductRepository(db *sql.DB, dialect Dialect) *ProductRepository {
	return &ProductRepository{table: table[domain.Product]{
		db:      db,
		dialect: dialect,
		name:    "products",
		columns: []string{"id", "sku", "name", "price_cents", "created_at", "updated_at"},
		scan:    scanProduct,
	}}
}

func (r *ProductRepository) Init(ctx context.Context) error {
	ddl := fmt.Sprintf(createProductsTable, r.table.dialect.IDType, r.table.dialect.TimestampType)
	if _, err := r.table.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create products table: %w", err)
	}
	return nil
}

func (r *ProductRepository) Create(ctx context.Context, input repository.NewProduct) (*domain.Product, error) {
	now := timestamp()
	product := &domain.Product{
		ID:         uuid.New(),
		SKU:        input.SKU,
		Name:       input.Name,
		PriceCents: input.PriceCents,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := r.table.insert(ctx,
		product.ID.String(),
		product.SKU,
		product.Name,
		product.PriceCents,
		product.CreatedAt,
		product.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return product, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	return r.table.list(ctx)
}

func (r *ProductRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := r.table.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) Update(ctx context.Context, id uuid.UUID, input repository.UpdateProduct) (*domain.Product, error) {
	var fields []assignment
	fields = patchField(fields, "sku", input.SKU)
	fields = patchField(fields, "name", input.Name)
	fields = patchField(fields, "price_cents", input.PriceCents)

	product, err := r.table.update(ctx, id, fields...)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.table.delete(ctx, id)
}

func scanProduct(row scanner) (domain.Product, error) {
	var product domain.Product
	if err := row.Scan(
		&product.ID,
		&product.SKU,
		&product.Name,
		&product.PriceCents,
		&product.CreatedAt,
		&product.UpdatedAt,
	); err != nil {
		return domain.Product{}, err
	}
	product.CreatedAt = product.CreatedAt.UTC()
	product.UpdatedAt = product.UpdatedAt.UTC()
	return product, nil
}
