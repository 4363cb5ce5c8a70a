// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/tokenlocker/internal/dbx"
	"github.com/dmitrijs2005/tokenlocker/internal/server/migrations"
	"github.com/dmitrijs2005/tokenlocker/internal/server/repositories/holdings"
	"github.com/dmitrijs2005/tokenlocker/internal/server/repositories/positions"
	"github.com/dmitrijs2005/tokenlocker/internal/server/repositories/userstats"
	"github.com/dmitrijs2005/tokenlocker/internal/server/token"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// Positions returns a positions.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Positions(db dbx.DBTX) positions.Repository {
	return positions.NewPostgresRepository(db)
}

// UserStats returns a userstats.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) UserStats(db dbx.DBTX) userstats.Repository {
	return userstats.NewPostgresRepository(db)
}

// Holdings returns the token program's storage bound to the provided DBTX.
func (m *PostgresRepositoryManager) Holdings(db dbx.DBTX) token.Repository {
	return holdings.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}

// Open opens a pgx-backed connection pool and checks it is reachable.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return db, nil
}
