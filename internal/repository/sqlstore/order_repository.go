package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

// Orders reference users without cascading; removing a user that still has
// orders fails in the store and surfaces as an unexpected error.
const createOrdersTable = `
CREATE TABLE IF NOT EXISTS orders (
	id %[1]s PRIMARY KEY,
	user_id %[1]s NOT NULL REFERENCES users(id),
	status TEXT NOT NULL,
	total_cents BIGINT NOT NULL,
	created_at %[2]s NOT NULL,
	updated_at %[2]s NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);
CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders(user_id);
`

type OrderRepository struct {
	table table[domain.Order]
}

func NewOrderRepository(db *sql.DB, dialect Dialect) *OrderRepository {
	return &OrderRepository{table: table[domain.Order]{
		db:      db,
		dialect: dialect,
		name:    "orders",
		columns: []string{"id", "user_id", "status", "total_cents", "created_at", "updated_at"},
		scan:    scanOrder,
	}}
}

func (r *OrderRepository) Init(ctx context.Context) error {
	ddl := fmt.Sprintf(createOrdersTable, r.table.dialect.IDType, r.table.dialect.TimestampType)
	if _, err := r.table.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create orders table: %w", err)
	}
	return nil
}

func (r *OrderRepository) Create(ctx context.Context, input repository.NewOrder) (*domain.Order, error) {
	now := timestamp()
	order := &domain.Order{
		ID:         uuid.New(),
		UserID:     input.UserID,
		Status:     input.Status,
		TotalCents: input.TotalCents,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := r.table.insert(ctx,
		order.ID.String(),
		order.UserID.String(),
		order.Status,
		order.TotalCents,
		order.CreatedAt,
		order.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	return r.table.list(ctx)
}

func (r *OrderRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := r.table.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) Update(ctx context.Context, id uuid.UUID, input repository.UpdateOrder) (*domain.Order, error) {
	var fields []assignment
	fields = patchField(fields, "status", input.Status)
	fields = patchField(fields, "total_cents", input.TotalCents)

	order, err := r.table.update(ctx, id, fields...)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.table.delete(ctx, id)
}

func scanOrder(row scanner) (domain.Order, error) {
	var order domain.Order
	if err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.Status,
		&order.TotalCents,
		&order.CreatedAt,
		&order.UpdatedAt,
	); err != nil {
		return domain.Order{}, err
	}
	order.CreatedAt = order.CreatedAt.UTC()
	order.UpdatedAt = order.UpdatedAt.UTC()
	return order, nil
}
