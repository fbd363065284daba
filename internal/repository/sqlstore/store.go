// Package sqlstore implements the repository ports on top of database/sql.
// Backend specifics (placeholders, column types, unique-violation detection)
// come from a Dialect supplied by the sqlite or postgres packages.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
)

// Store bundles the repositories that share one database handle.
type Store struct {
	db      *sql.DB
	dialect Dialect

	Users    *UserRepository
	Products *ProductRepository
	Orders   *OrderRepository
}

func New(db *sql.DB, dialect Dialect) *Store {
	return &Store{
		db:       db,
		dialect:  dialect,
		Users:    NewUserRepository(db, dialect),
		Products: NewProductRepository(db, dialect),
		Orders:   NewOrderRepository(db, dialect),
	}
}

// Init creates missing tables. Users go first since orders reference them.
func (s *Store) Init(ctx context.Context) error {
	if err := s.Users.Init(ctx); err != nil {
		return fmt.Errorf("init %s users: %w", s.dialect.Name, err)
	}
	if err := s.Products.Init(ctx); err != nil {
		return fmt.Errorf("init %s products: %w", s.dialect.Name, err)
	}
	if err := s.Orders.Init(ctx); err != nil {
		return fmt.Errorf("init %s orders: %w", s.dialect.Name, err)
	}
	return nil
}

// Ping performs a trivial round-trip to the database.
func (s *Store) Ping(ctx context.Context) error {
	var one int
	if err := s.db.QueryRowContext(ctx, `SELECT 1`).Scan(&one); err != nil {
		return fmt.Errorf("ping %s: %w", s.dialect.Name, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
