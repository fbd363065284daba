package repository

import (
	"context"

	"github.com/google/uuid"

	"storefront/internal/domain"
)

// NewUser carries the fields required to create a user.
type NewUser struct {
	Email string
	Name  string
}

// UpdateUser is a partial update; nil fields are left unchanged.
type UpdateUser struct {
	Email *string
	Name  *string
}

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Create(ctx context.Context, input NewUser) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateUser) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
