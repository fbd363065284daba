package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"storefront/internal/repository"
)

type scanner interface {
	Scan(dest ...any) error
}

// assignment is one column of a partial update.
type assignment struct {
	column string
	value  any
}

// table holds the SQL shared by every resource. columns must start with id and
// end with created_at, updated_at; scan reads them in that order.
type table[T any] struct {
	db      *sql.DB
	dialect Dialect
	name    string
	columns []string
	scan    func(scanner) (T, error)
}

func (t *table[T]) mapError(err error) error {
	return repository.MapError(err, t.dialect.IsUniqueViolation)
}

func (t *table[T]) insert(ctx context.Context, args ...any) error {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(t.columns)), ", ")
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`, t.name, strings.Join(t.columns, ", "), placeholders)

	if _, err := t.db.ExecContext(ctx, t.dialect.Rebind(query), args...); err != nil {
		return t.mapError(err)
	}
	return nil
}

func (t *table[T]) list(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM %s
ORDER BY created_at DESC, id DESC`, strings.Join(t.columns, ", "), t.name)

	rows, err := t.db.QueryContext(ctx, query)
	if err != nil {
		return nil, t.mapError(err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := t.scan(rows)
		if err != nil {
			return nil, t.mapError(err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, t.mapError(err)
	}
	return items, nil
}

func (t *table[T]) get(ctx context.Context, id uuid.UUID) (T, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM %s
WHERE id = ?`, strings.Join(t.columns, ", "), t.name)

	item, err := t.scan(t.db.QueryRowContext(ctx, t.dialect.Rebind(query), id.String()))
	if err != nil {
		var zero T
		return zero, t.mapError(err)
	}
	return item, nil
}

// update writes only the given assignments and always refreshes updated_at.
// Zero affected rows means the id does not exist.
func (t *table[T]) update(ctx context.Context, id uuid.UUID, fields ...assignment) (T, error) {
	var zero T

	sets := make([]string, 0, len(fields)+1)
	args := make([]any, 0, len(fields)+2)
	for _, f := range fields {
		sets = append(sets, f.column+" = ?")
		args = append(args, f.value)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, timestamp(), id.String())

	query := fmt.Sprintf(`
UPDATE %s
SET %s
WHERE id = ?`, t.name, strings.Join(sets, ", "))

	res, err := t.db.ExecContext(ctx, t.dialect.Rebind(query), args...)
	if err != nil {
		return zero, t.mapError(err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return zero, t.mapError(err)
	}
	if aff == 0 {
		return zero, repository.ErrNotFound
	}
	return t.get(ctx, id)
}

func (t *table[T]) delete(ctx context.Context, id uuid.UUID) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, t.name)

	res, err := t.db.ExecContext(ctx, t.dialect.Rebind(query), id.String())
	if err != nil {
		return t.mapError(err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return t.mapError(err)
	}
	if aff == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// patchField appends an assignment when the patch carries a value for column.
func patchField[V any](fields []assignment, column string, value *V) []assignment {
	if value == nil {
		return fields
	}
	return append(fields, assignment{column: column, value: *value})
}

// timestamp is truncated to microseconds, the finest precision every backend keeps.
func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
