package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id %[1]s PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	created_at %[2]s NOT NULL,
	updated_at %[2]s NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_users_created_at ON users(created_at);
`

type UserRepository struct {
	table table[domain.User]
}

func NewUserRepository(db *sql.DB, dialect Dialect) *UserRepository {
	return &UserRepository{table: table[domain.User]{
		db:      db,
		dialect: dialect,
		name:    "users",
		columns: []string{"id", "email", "name", "created_at", "updated_at"},
		scan:    scanUser,
	}}
}

func (r *UserRepository) Init(ctx context.Context) error {
	ddl := fmt.Sprintf(createUsersTable, r.table.dialect.IDType, r.table.dialect.TimestampType)
	if _, err := r.table.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, input repository.NewUser) (*domain.User, error) {
	now := timestamp()
	user := &domain.User{
		ID:        uuid.New(),
		Email:     input.Email,
		Name:      input.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := r.table.insert(ctx,
		user.ID.String(),
		user.Email,
		user.Name,
		user.CreatedAt,
		user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	return r.table.list(ctx)
}

func (r *UserRepository) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := r.table.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, input repository.UpdateUser) (*domain.User, error) {
	var fields []assignment
	fields = patchField(fields, "email", input.Email)
	fields = patchField(fields, "name", input.Name)

	user, err := r.table.update(ctx, id, fields...)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.table.delete(ctx, id)
}

func scanUser(row scanner) (domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return domain.User{}, err
	}
	user.CreatedAt = user.CreatedAt.UTC()
	user.UpdatedAt = user.UpdatedAt.UTC()
	return user, nil
}
