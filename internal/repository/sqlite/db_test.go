package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/repository/sqlite"
)

func TestOpenCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	db, err := sqlite.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.PingContext(context.Background()))
	assert.FileExists(t, path)
}

func TestOpenEnablesForeignKeys(t *testing.T) {
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var enabled int
	require.NoError(t, db.QueryRowContext(context.Background(), `PRAGMA foreign_keys`).Scan(&enabled))
	assert.Equal(t, 1, enabled)
}

func TestOpenKeepsExistingQueryParameters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "test.db")

	db, err := sqlite.Open(path + "?_txlock=immediate")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var enabled int
	require.NoError(t, db.QueryRowContext(context.Background(), `PRAGMA foreign_keys`).Scan(&enabled))
	assert.Equal(t, 1, enabled)
	assert.FileExists(t, path)
}

func TestIsUniqueViolation(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.ExecContext(ctx, `CREATE TABLE things (id TEXT PRIMARY KEY, code TEXT NOT NULL UNIQUE, qty INTEGER CHECK (qty >= 0))`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO things (id, code, qty) VALUES ('1', 'a', 1)`)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `INSERT INTO things (id, code, qty) VALUES ('2', 'a', 1)`)
	assert.True(t, sqlite.IsUniqueViolation(err), "duplicate code: %v", err)

	_, err = db.ExecContext(ctx, `INSERT INTO things (id, code, qty) VALUES ('1', 'b', 1)`)
	assert.True(t, sqlite.IsUniqueViolation(err), "duplicate primary key: %v", err)

	_, err = db.ExecContext(ctx, `INSERT INTO things (id, code, qty) VALUES ('3', 'c', -1)`)
	require.Error(t, err)
	assert.False(t, sqlite.IsUniqueViolation(err), "check constraint: %v", err)

	assert.False(t, sqlite.IsUniqueViolation(errors.New("UNIQUE constraint failed")))
	assert.False(t, sqlite.IsUniqueViolation(nil))
}

func TestDialect(t *testing.T) {
	d := sqlite.Dialect()

	assert.Equal(t, "sqlite", d.Name)
	assert.Equal(t, `SELECT * FROM users WHERE id = ?`, d.Rebind(`SELECT * FROM users WHERE id = ?`))
}
