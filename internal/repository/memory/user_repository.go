package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

type UserRepository struct {
	users *collection[domain.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: newCollection(
		func(u domain.User) uuid.UUID { return u.ID },
		func(u domain.User) time.Time { return u.CreatedAt },
		func(u domain.User) string { return u.Email },
	)}
}

func (r *UserRepository) Create(_ context.Context, input repository.NewUser) (*domain.User, error) {
	ts := now()
	user := domain.User{
		ID:        uuid.New(),
		Email:     input.Email,
		Name:      input.Name,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if err := r.users.insert(user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) List(_ context.Context) ([]domain.User, error) {
	return r.users.list(), nil
}

func (r *UserRepository) Get(_ context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := r.users.get(id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(_ context.Context, id uuid.UUID, input repository.UpdateUser) (*domain.User, error) {
	user, err := r.users.update(id, func(u *domain.User) {
		if input.Email != nil {
			u.Email = *input.Email
		}
		if input.Name != nil {
			u.Name = *input.Name
		}
		u.UpdatedAt = now()
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.users.delete(id)
}
