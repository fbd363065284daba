package repotest

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

// Orders exercises a repository.OrderRepository. Orders reference users, so
// newRepos returns both repositories backed by the same empty store.
func Orders(t *testing.T, newRepos func(t *testing.T) (repository.UserRepository, repository.OrderRepository)) {
	setup := func(t *testing.T) (repository.OrderRepository, *domain.User) {
		users, orders := newRepos(t)
		user, err := users.Create(ctx(), repository.NewUser{Email: "a@b.com", Name: "Alice"})
		require.NoError(t, err)
		return orders, user
	}

	t.Run("create then get returns the same order", func(t *testing.T) {
		orders, user := setup(t)

		created, err := orders.Create(ctx(), repository.NewOrder{UserID: user.ID, Status: "created", TotalCents: 1000})
		require.NoError(t, err)
		assertTimestamps(t, created.CreatedAt, created.UpdatedAt)

		got, err := orders.Get(ctx(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.UserID)
		assert.Equal(t, "created", got.Status)
		assert.Equal(t, int64(1000), got.TotalCents)
		assertTimestamps(t, got.CreatedAt, got.UpdatedAt)
	})

	t.Run("status patch keeps total and delete makes it disappear", func(t *testing.T) {
		orders, user := setup(t)
		order, err := orders.Create(ctx(), repository.NewOrder{UserID: user.ID, Status: "created", TotalCents: 1000})
		require.NoError(t, err)
		time.Sleep(tick)

		updated, err := orders.Update(ctx(), order.ID, repository.UpdateOrder{Status: ptr("paid")})
		require.NoError(t, err)
		assertBumped(t, order.UpdatedAt, updated.UpdatedAt)

		got, err := orders.Get(ctx(), order.ID)
		require.NoError(t, err)
		assert.Equal(t, "paid", got.Status)
		assert.Equal(t, int64(1000), got.TotalCents)
		assert.Equal(t, user.ID, got.UserID)

		require.NoError(t, orders.Delete(ctx(), order.ID))
		_, err = orders.Get(ctx(), order.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("empty patch only bumps updated_at", func(t *testing.T) {
		orders, user := setup(t)
		order, err := orders.Create(ctx(), repository.NewOrder{UserID: user.ID, Status: "created", TotalCents: 1000})
		require.NoError(t, err)
		time.Sleep(tick)

		updated, err := orders.Update(ctx(), order.ID, repository.UpdateOrder{})
		require.NoError(t, err)
		assert.Equal(t, "created", updated.Status)
		assert.Equal(t, int64(1000), updated.TotalCents)
		assertBumped(t, order.UpdatedAt, updated.UpdatedAt)
	})

	t.Run("order for unknown user fails", func(t *testing.T) {
		orders, _ := setup(t)

		_, err := orders.Create(ctx(), repository.NewOrder{UserID: uuid.New(), Status: "created", TotalCents: 1})
		var unexpected *repository.UnexpectedError
		assert.ErrorAs(t, err, &unexpected)

		list, err := orders.List(ctx())
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("missing ids are not found", func(t *testing.T) {
		orders, _ := setup(t)
		id := uuid.New()

		_, err := orders.Get(ctx(), id)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		_, err = orders.Update(ctx(), id, repository.UpdateOrder{Status: ptr("paid")})
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.ErrorIs(t, orders.Delete(ctx(), id), repository.ErrNotFound)
	})

	t.Run("list returns newest first", func(t *testing.T) {
		orders, user := setup(t)

		var want []uuid.UUID
		for i := range 3 {
			o, err := orders.Create(ctx(), repository.NewOrder{UserID: user.ID, Status: "created", TotalCents: int64(i)})
			require.NoError(t, err)
			want = append([]uuid.UUID{o.ID}, want...)
			time.Sleep(tick)
		}

		list, err := orders.List(ctx())
		require.NoError(t, err)
		requireIDs(t, want, list, func(o domain.Order) uuid.UUID { return o.ID })
	})
}
