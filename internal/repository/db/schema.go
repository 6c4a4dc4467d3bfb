package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const sqliteUsers = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT NOT NULL UNIQUE,
    hashed_password TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);
`

const sqliteProducts = `
CREATE TABLE IF NOT EXISTS products (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    type TEXT NOT NULL,
    sku TEXT NOT NULL UNIQUE,
    image_url TEXT,
    description TEXT,
    quantity INTEGER NOT NULL CHECK (quantity >= 0),
    price REAL NOT NULL CHECK (price > 0),
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP
);
`

const postgresUsers = `
CREATE TABLE IF NOT EXISTS users (
    id BIGSERIAL PRIMARY KEY,
    username VARCHAR(50) NOT NULL UNIQUE,
    hashed_password TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL
);
`

const postgresProducts = `
CREATE TABLE IF NOT EXISTS products (
    id BIGSERIAL PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    type VARCHAR(50) NOT NULL,
    sku VARCHAR(50) NOT NULL UNIQUE,
    image_url TEXT,
    description TEXT,
    quantity BIGINT NOT NULL CHECK (quantity >= 0),
    price DOUBLE PRECISION NOT NULL CHECK (price > 0),
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ
);
`

// schemaFor returns the DDL statements for the pool's driver, in apply order.
func schemaFor(driverName string) ([]string, error) {
	switch driverName {
	case sqliteDriverName:
		return []string{sqliteUsers, sqliteProducts}, nil
	case postgresDriverName:
		return []string{postgresUsers, postgresProducts}, nil
	default:
		return nil, fmt.Errorf("no schema for driver %q", driverName)
	}
}

// Migrate ensures all tables exist. It is idempotent.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	stmts, err := schemaFor(db.DriverName())
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		// no-op after a successful commit
		_ = tx.Rollback()
	}()

	for i, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
