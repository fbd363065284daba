package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/repository"
	"storefront/internal/repository/postgres"
	"storefront/internal/repository/repotest"
	"storefront/internal/repository/sqlstore"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, postgres.IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, postgres.IsUniqueViolation(fmt.Errorf("insert user: %w", &pq.Error{Code: "23505"})))
	assert.False(t, postgres.IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, postgres.IsUniqueViolation(errors.New("duplicate key value violates unique constraint")))
	assert.False(t, postgres.IsUniqueViolation(nil))
}

func TestMapErrorWithPostgresSignal(t *testing.T) {
	d := postgres.Dialect()

	assert.ErrorIs(t, repository.MapError(&pq.Error{Code: "23505"}, d.IsUniqueViolation), repository.ErrConflict)

	var unexpected *repository.UnexpectedError
	fk := &pq.Error{Code: "23503", Message: "insert or update on table \"orders\" violates foreign key constraint"}
	require.ErrorAs(t, repository.MapError(fk, d.IsUniqueViolation), &unexpected)
	assert.Contains(t, unexpected.Detail, "foreign key")
}

func TestDialectRebind(t *testing.T) {
	d := postgres.Dialect()

	assert.Equal(t, `DELETE FROM orders WHERE id = $1`, d.Rebind(`DELETE FROM orders WHERE id = ?`))
}

func TestOpenRequiresDSN(t *testing.T) {
	_, err := postgres.Open(context.Background(), "", postgres.PoolConfig{})

	assert.Error(t, err)
}

// newStore connects to STOREFRONT_TEST_DATABASE_URL and empties the tables.
func newStore(t *testing.T) *sqlstore.Store {
	t.Helper()
	dsn := os.Getenv("STOREFRONT_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("STOREFRONT_TEST_DATABASE_URL is not set")
	}

	ctx := context.Background()
	db, err := postgres.Open(ctx, dsn, postgres.PoolConfig{MaxOpenConns: 4, ConnectTimeout: 5 * time.Second})
	require.NoError(t, err)
	store := sqlstore.New(db, postgres.Dialect())
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.Init(ctx))
	_, err = db.ExecContext(ctx, `TRUNCATE orders, products, users CASCADE`)
	require.NoError(t, err)
	return store
}

func TestUserRepository(t *testing.T) {
	repotest.Users(t, func(t *testing.T) repository.UserRepository {
		return newStore(t).Users
	})
}

func TestProductRepository(t *testing.T) {
	repotest.Products(t, func(t *testing.T) repository.ProductRepository {
		return newStore(t).Products
	})
}

func TestOrderRepository(t *testing.T) {
	repotest.Orders(t, func(t *testing.T) (repository.UserRepository, repository.OrderRepository) {
		store := newStore(t)
		return store.Users, store.Orders
	})
}
