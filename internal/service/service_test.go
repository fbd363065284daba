package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
	"storefront/internal/repository"
	"storefront/internal/repository/memory"
	"storefront/internal/service"
)

func ptr[V any](v V) *V {
	return &v
}

func TestUserServiceCRUDWithMemoryRepository(t *testing.T) {
	ctx := context.Background()
	svc := service.NewUserService(memory.NewUserRepository())

	created, err := svc.Create(ctx, repository.NewUser{Email: "a@b.com", Name: "Alice"})
	require.NoError(t, err)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", fetched.Email)

	updated, err := svc.Update(ctx, created.ID, repository.UpdateUser{Name: ptr("Alicia")})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)
	assert.Equal(t, "a@b.com", updated.Email)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProductServiceCRUDWithMemoryRepository(t *testing.T) {
	ctx := context.Background()
	svc := service.NewProductService(memory.NewProductRepository())

	created, err := svc.Create(ctx, repository.NewProduct{SKU: "sku-1", Name: "Widget", PriceCents: 1234})
	require.NoError(t, err)

	_, err = svc.Create(ctx, repository.NewProduct{SKU: "sku-1", Name: "Copy", PriceCents: 1})
	assert.ErrorIs(t, err, repository.ErrConflict)

	updated, err := svc.Update(ctx, created.ID, repository.UpdateProduct{PriceCents: ptr(int64(999))})
	require.NoError(t, err)
	assert.Equal(t, int64(999), updated.PriceCents)
	assert.Equal(t, "Widget", updated.Name)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), repository.ErrNotFound)
}

func TestOrderLifecycle(t *testing.T) {
	ctx := context.Background()
	userRepo := memory.NewUserRepository()
	users := service.NewUserService(userRepo)
	orders := service.NewOrderService(memory.NewOrderRepository(userRepo))

	user, err := users.Create(ctx, repository.NewUser{Email: "a@b.com", Name: "Alice"})
	require.NoError(t, err)
	order, err := orders.Create(ctx, repository.NewOrder{UserID: user.ID, Status: "created", TotalCents: 1000})
	require.NoError(t, err)

	_, err = orders.Update(ctx, order.ID, repository.UpdateOrder{Status: ptr("paid")})
	require.NoError(t, err)

	got, err := orders.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "paid", got.Status)
	assert.Equal(t, int64(1000), got.TotalCents)

	require.NoError(t, orders.Delete(ctx, order.ID))
	_, err = orders.Get(ctx, order.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// failingUsers returns the same error from every call.
type failingUsers struct {
	err error
}

func (f failingUsers) Create(context.Context, repository.NewUser) (*domain.User, error) {
	return nil, f.err
}

func (f failingUsers) List(context.Context) ([]domain.User, error) {
	return nil, f.err
}

func (f failingUsers) Get(context.Context, uuid.UUID) (*domain.User, error) {
	return nil, f.err
}

func (f failingUsers) Update(context.Context, uuid.UUID, repository.UpdateUser) (*domain.User, error) {
	return nil, f.err
}

func (f failingUsers) Delete(context.Context, uuid.UUID) error {
	return f.err
}

func TestUserServicePassesRepositoryErrorsThrough(t *testing.T) {
	ctx := context.Background()
	unexpected := repository.Unexpected(errors.New("connection reset by peer"))
	svc := service.NewUserService(failingUsers{err: unexpected})

	_, err := svc.Create(ctx, repository.NewUser{Email: "a@b.com", Name: "Alice"})
	assert.Same(t, unexpected, err)
	_, err = svc.List(ctx)
	assert.Same(t, unexpected, err)
	_, err = svc.Get(ctx, uuid.New())
	assert.Same(t, unexpected, err)
	_, err = svc.Update(ctx, uuid.New(), repository.UpdateUser{})
	assert.Same(t, unexpected, err)
	assert.Same(t, unexpected, svc.Delete(ctx, uuid.New()))
}
