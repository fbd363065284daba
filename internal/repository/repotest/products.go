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

// Products exercises a repository.ProductRepository. newRepo must return an empty repository.
func Products(t *testing.T, newRepo func(t *testing.T) repository.ProductRepository) {
	widget := repository.NewProduct{SKU: "sku-1", Name: "Widget", PriceCents: 1234}

	t.Run("create then get returns the same product", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.Create(ctx(), widget)
		require.NoError(t, err)
		assertTimestamps(t, created.CreatedAt, created.UpdatedAt)

		got, err := repo.Get(ctx(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, "sku-1", got.SKU)
		assert.Equal(t, "Widget", got.Name)
		assert.Equal(t, int64(1234), got.PriceCents)
		assertTimestamps(t, got.CreatedAt, got.UpdatedAt)
	})

	t.Run("duplicate sku conflicts without a second record", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Create(ctx(), widget)
		require.NoError(t, err)
		_, err = repo.Create(ctx(), repository.NewProduct{SKU: "sku-1", Name: "Other", PriceCents: 1})
		assert.ErrorIs(t, err, repository.ErrConflict)

		products, err := repo.List(ctx())
		require.NoError(t, err)
		assert.Len(t, products, 1)
	})

	t.Run("empty patch only bumps updated_at", func(t *testing.T) {
		repo := newRepo(t)
		created, err := repo.Create(ctx(), widget)
		require.NoError(t, err)
		time.Sleep(tick)

		updated, err := repo.Update(ctx(), created.ID, repository.UpdateProduct{})
		require.NoError(t, err)
		assert.Equal(t, created.SKU, updated.SKU)
		assert.Equal(t, created.Name, updated.Name)
		assert.Equal(t, created.PriceCents, updated.PriceCents)
		assertBumped(t, created.UpdatedAt, updated.UpdatedAt)
	})

	t.Run("name patch leaves sku and price alone", func(t *testing.T) {
		repo := newRepo(t)
		created, err := repo.Create(ctx(), widget)
		require.NoError(t, err)
		time.Sleep(tick)

		updated, err := repo.Update(ctx(), created.ID, repository.UpdateProduct{Name: ptr("Gadget")})
		require.NoError(t, err)
		assert.Equal(t, "Gadget", updated.Name)
		assert.Equal(t, "sku-1", updated.SKU)
		assert.Equal(t, int64(1234), updated.PriceCents)
		assertBumped(t, created.UpdatedAt, updated.UpdatedAt)
	})

	t.Run("price patch leaves sku and name alone", func(t *testing.T) {
		repo := newRepo(t)
		created, err := repo.Create(ctx(), widget)
		require.NoError(t, err)

		updated, err := repo.Update(ctx(), created.ID, repository.UpdateProduct{PriceCents: ptr(int64(0))})
		require.NoError(t, err)
		assert.Equal(t, int64(0), updated.PriceCents)
		assert.Equal(t, "Widget", updated.Name)
		assert.Equal(t, "sku-1", updated.SKU)
	})

	t.Run("patch to a taken sku conflicts", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.Create(ctx(), widget)
		require.NoError(t, err)
		other, err := repo.Create(ctx(), repository.NewProduct{SKU: "sku-2", Name: "Other", PriceCents: 5})
		require.NoError(t, err)

		_, err = repo.Update(ctx(), other.ID, repository.UpdateProduct{SKU: ptr("sku-1")})
		assert.ErrorIs(t, err, repository.ErrConflict)
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Create(ctx(), repository.NewProduct{SKU: "sku-neg", Name: "Broken", PriceCents: -5})
		var unexpected *repository.UnexpectedError
		assert.ErrorAs(t, err, &unexpected)

		created, err := repo.Create(ctx(), widget)
		require.NoError(t, err)
		_, err = repo.Update(ctx(), created.ID, repository.UpdateProduct{PriceCents: ptr(int64(-1))})
		assert.ErrorAs(t, err, &unexpected)

		got, err := repo.Get(ctx(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1234), got.PriceCents)
		products, err := repo.List(ctx())
		require.NoError(t, err)
		assert.Len(t, products, 1)
	})

	t.Run("missing ids are not found", func(t *testing.T) {
		repo := newRepo(t)
		id := uuid.New()

		_, err := repo.Get(ctx(), id)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		_, err = repo.Update(ctx(), id, repository.UpdateProduct{Name: ptr("x")})
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx(), id), repository.ErrNotFound)
	})

	t.Run("delete removes the product", func(t *testing.T) {
		repo := newRepo(t)
		created, err := repo.Create(ctx(), widget)
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx(), created.ID))
		_, err = repo.Get(ctx(), created.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("list returns newest first", func(t *testing.T) {
		repo := newRepo(t)

		var want []uuid.UUID
		for _, sku := range []string{"sku-a", "sku-b", "sku-c", "sku-d"} {
			p, err := repo.Create(ctx(), repository.NewProduct{SKU: sku, Name: sku, PriceCents: 1})
			require.NoError(t, err)
			want = append([]uuid.UUID{p.ID}, want...)
			time.Sleep(tick)
		}

		products, err := repo.List(ctx())
		require.NoError(t, err)
		requireIDs(t, want, products, func(p domain.Product) uuid.UUID { return p.ID })
	})
}
