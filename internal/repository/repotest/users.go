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

// Users exercises a repository.UserRepository. newRepo must return an empty repository.
func Users(t *testing.T, newRepo func(t *testing.T) repository.UserRepository) {
	t.Run("create then get returns the same user", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.Create(ctx(), repository.NewUser{Email: "a@b.com", Name: "Alice"})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assertTimestamps(t, created.CreatedAt, created.UpdatedAt)

		got, err := repo.Get(ctx(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "a@b.com", got.Email)
		assert.Equal(t, "Alice", got.Name)
		assert.True(t, got.CreatedAt.Equal(created.CreatedAt))
		assertTimestamps(t, got.CreatedAt, got.UpdatedAt)
	})

	t.Run("get unknown id is not found", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Get(ctx(), uuid.New())
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("duplicate email conflicts without a second record", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Create(ctx(), repository.NewUser{Email: "a@b.com", Name: "Alice"})
		require.NoError(t, err)
		_, err = repo.Create(ctx(), repository.NewUser{Email: "a@b.com", Name: "Impostor"})
		assert.ErrorIs(t, err, repository.ErrConflict)

		users, err := repo.List(ctx())
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "Alice", users[0].Name)
	})

	t.Run("empty patch only bumps updated_at", func(t *testing.T) {
		repo := newRepo(t)
		created, err := repo.Create(ctx(), repository.NewUser{Email: "a@b.com", Name: "Alice"})
		require.NoError(t, err)
		time.Sleep(tick)

		updated, err := repo.Update(ctx(), created.ID, repository.UpdateUser{})
		require.NoError(t, err)
		assert.Equal(t, created.Email, updated.Email)
		assert.Equal(t, created.Name, updated.Name)
		assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
		assertBumped(t, created.UpdatedAt, updated.UpdatedAt)
	})

	t.Run("patch changes only the given field", func(t *testing.T) {
		repo := newRepo(t)
		created, err := repo.Create(ctx(), repository.NewUser{Email: "a@b.com", Name: "Alice"})
		require.NoError(t, err)
		time.Sleep(tick)

		updated, err := repo.Update(ctx(), created.ID, repository.UpdateUser{Name: ptr("Alicia")})
		require.NoError(t, err)
		assert.Equal(t, "Alicia", updated.Name)
		assert.Equal(t, "a@b.com", updated.Email)
		assertBumped(t, created.UpdatedAt, updated.UpdatedAt)

		got, err := repo.Get(ctx(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alicia", got.Name)
		assert.Equal(t, "a@b.com", got.Email)
		assert.True(t, got.UpdatedAt.Equal(updated.UpdatedAt))
	})

	t.Run("patch to a taken email conflicts", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.Create(ctx(), repository.NewUser{Email: "a@b.com", Name: "Alice"})
		require.NoError(t, err)
		bob, err := repo.Create(ctx(), repository.NewUser{Email: "bob@b.com", Name: "Bob"})
		require.NoError(t, err)

		_, err = repo.Update(ctx(), bob.ID, repository.UpdateUser{Email: ptr("a@b.com")})
		assert.ErrorIs(t, err, repository.ErrConflict)

		got, err := repo.Get(ctx(), bob.ID)
		require.NoError(t, err)
		assert.Equal(t, "bob@b.com", got.Email)
	})

	t.Run("update unknown id is not found", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Update(ctx(), uuid.New(), repository.UpdateUser{Name: ptr("Ghost")})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("delete removes the user", func(t *testing.T) {
		repo := newRepo(t)
		created, err := repo.Create(ctx(), repository.NewUser{Email: "a@b.com", Name: "Alice"})
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx(), created.ID))

		_, err = repo.Get(ctx(), created.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx(), created.ID), repository.ErrNotFound)
	})

	t.Run("delete unknown id is not found", func(t *testing.T) {
		repo := newRepo(t)

		assert.ErrorIs(t, repo.Delete(ctx(), uuid.New()), repository.ErrNotFound)
	})

	t.Run("list is empty on a fresh store", func(t *testing.T) {
		repo := newRepo(t)

		users, err := repo.List(ctx())
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("list returns newest first", func(t *testing.T) {
		repo := newRepo(t)

		var want []uuid.UUID
		for _, email := range []string{"a@b.com", "b@b.com", "c@b.com"} {
			u, err := repo.Create(ctx(), repository.NewUser{Email: email, Name: email})
			require.NoError(t, err)
			want = append([]uuid.UUID{u.ID}, want...)
			time.Sleep(tick)
		}

		userID := func(u domain.User) uuid.UUID { return u.ID }
		for range 2 {
			users, err := repo.List(ctx())
			require.NoError(t, err)
			requireIDs(t, want, users, userID)
		}
	})
}
