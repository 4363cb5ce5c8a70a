package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/tokenlocker/internal/server/migrations"
	"github.com/dmitrijs2005/tokenlocker/internal/server/repositories/holdings"
	"github.com/dmitrijs2005/tokenlocker/internal/server/repositories/positions"
	"github.com/dmitrijs2005/tokenlocker/internal/server/repositories/userstats"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestNewPostgresRepositoryManager_ReturnsInterface(t *testing.T) {
	var m RepositoryManager = NewPostgresRepositoryManager()
	assert.NotNil(t, m)
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	m := &PostgresRepositoryManager{}

	assert.IsType(t, &positions.PostgresRepository{}, m.Positions(db))
	assert.IsType(t, &userstats.PostgresRepository{}, m.UserStats(db))
	assert.IsType(t, &holdings.PostgresRepository{}, m.Holdings(db))
}

func TestFactories_BindToTransaction(t *testing.T) {
	db, mock := newDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	tx, err := db.Begin()
	require.NoError(t, err)

	m := &PostgresRepositoryManager{}
	assert.NotNil(t, m.Positions(tx))
	assert.NotNil(t, m.UserStats(tx))
	assert.NotNil(t, m.Holdings(tx))

	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_Success(t *testing.T) {
	db, _ := newDB(t)

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != "." {
			return errors.New("unexpected dir")
		}
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		return nil
	}
	defer func() { gooseUpContext = orig }()

	m := &PostgresRepositoryManager{}
	require.NoError(t, m.RunMigrations(context.Background(), db))
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	m := &PostgresRepositoryManager{}
	err := m.RunMigrations(context.Background(), db)
	require.EqualError(t, err, "boom")
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(migrations.Migrations, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	body, err := fs.ReadFile(migrations.Migrations, files[0])
	require.NoError(t, err)
	for _, table := range []string{"lock_positions", "user_stats", "token_holdings"} {
		assert.Contains(t, string(body), table)
	}
}
