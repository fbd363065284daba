package memory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

var errUnknownUser = errors.New("FOREIGN KEY constraint failed: orders.user_id")

// OrderRepository only accepts orders whose UserID exists in users.
// Deleting a user does not look at its orders.
type OrderRepository struct {
	users  *UserRepository
	orders *collection[domain.Order]
}

func NewOrderRepository(users *UserRepository) *OrderRepository {
	return &OrderRepository{
		users: users,
		orders: newCollection(
			func(o domain.Order) uuid.UUID { return o.ID },
			func(o domain.Order) time.Time { return o.CreatedAt },
			nil,
		),
	}
}

func (r *OrderRepository) Create(_ context.Context, input repository.NewOrder) (*domain.Order, error) {
	if _, err := r.users.users.get(input.UserID); err != nil {
		return nil, repository.Unexpected(errUnknownUser)
	}

	ts := now()
	order := domain.Order{
		ID:         uuid.New(),
		UserID:     input.UserID,
		Status:     input.Status,
		TotalCents: input.TotalCents,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}
	if err := r.orders.insert(order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) List(_ context.Context) ([]domain.Order, error) {
	return r.orders.list(), nil
}

func (r *OrderRepository) Get(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := r.orders.get(id)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) Update(_ context.Context, id uuid.UUID, input repository.UpdateOrder) (*domain.Order, error) {
	order, err := r.orders.update(id, func(o *domain.Order) {
		if input.Status != nil {
			o.Status = *input.Status
		}
		if input.TotalCents != nil {
			o.TotalCents = *input.TotalCents
		}
		o.UpdatedAt = now()
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.orders.delete(id)
}
