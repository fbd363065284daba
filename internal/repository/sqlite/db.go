package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	moderncsqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"storefront/internal/repository/sqlstore"
)

// Every pooled connection gets these pragmas, not just the first one.
const connPragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// Open opens (or creates) a sqlite database at the given path and ensures directories exist.
// The path may be a file: URI and may carry its own query parameters.
func Open(path string) (*sql.DB, error) {
	file, dsn := splitDSN(path)
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// sqlite has a single writer; one connection keeps writes serialized.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return db, nil
}

// splitDSN returns the file path behind path and the DSN with connPragmas appended.
func splitDSN(path string) (file, dsn string) {
	file = strings.TrimPrefix(path, "file:")
	sep := "?"
	if i := strings.IndexByte(file, '?'); i >= 0 {
		file = file[:i]
		sep = "&"
	}
	return file, path + sep + connPragmas
}

// Dialect describes sqlite to the shared SQL repositories.
func Dialect() sqlstore.Dialect {
	return sqlstore.Dialect{
		Name:              "sqlite",
		IDType:            "TEXT",
		TimestampType:     "DATETIME",
		IsUniqueViolation: IsUniqueViolation,
	}
}

// IsUniqueViolation reports whether err is a UNIQUE or PRIMARY KEY constraint failure.
func IsUniqueViolation(err error) bool {
	var sqliteErr *moderncsqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	switch sqliteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		// extended result codes disabled
		return strings.Contains(sqliteErr.Error(), "UNIQUE constraint failed")
	default:
		return false
	}
}
