package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/tokenlocker/internal/client/migrations"
	"github.com/dmitrijs2005/tokenlocker/internal/client/repositories/journal"
	"github.com/dmitrijs2005/tokenlocker/internal/filex"

	_ "modernc.org/sqlite"
)

// RunMigrations applies the embedded client migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// OpenJournal opens (creating if needed) the local journal database at
// path and migrates it.
func OpenJournal(ctx context.Context, path string) (*sql.DB, journal.Repository, error) {
	if _, err := filex.EnsureParentDir(path); err != nil {
		return nil, nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, nil, err
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("journal migrations: %w", err)
	}
	return db, journal.NewSQLiteRepository(db), nil
}
