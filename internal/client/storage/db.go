// Package storage bootstraps the client's local SQLite database, the
// terminal counterpart of the browser's localStorage.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/creditscore/internal/client/migrations"
	"github.com/dmitrijs2005/creditscore/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// RunMigrations applies the embedded goose migrations. Running it again on an
// up-to-date database is a no-op.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.Migrations)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// OpenDatabase opens (creating if needed) the SQLite file at path, along with
// any missing parent directories, and brings its schema up to date.
func OpenDatabase(ctx context.Context, path string) (*sql.DB, error) {
	abs, err := filex.EnsureParentDir(path)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", abs)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
