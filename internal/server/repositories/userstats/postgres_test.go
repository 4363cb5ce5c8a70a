package userstats

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/tokenlocker/internal/common"
	"github.com/dmitrijs2005/tokenlocker/internal/pubkey"
	"github.com/dmitrijs2005/tokenlocker/internal/server/models"
)

var owner = pubkey.MustParse(strings.Repeat("44", pubkey.Size))

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

var columns = []string{"owner", "total_deposits_count", "total_locked_volume", "last_activity_time"}

func TestGet_Found(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	q := `(?s)^SELECT\s+owner,\s*total_deposits_count,\s*total_locked_volume,\s*last_activity_time\s+FROM\s+user_stats\s+WHERE\s+owner\s*=\s*\$1\s*$`
	mock.ExpectQuery(q).
		WithArgs(owner.String()).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(owner.String(), "3", "1500", int64(1_700_000_000)))

	got, err := repo.Get(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, &models.UserStats{
		Owner: owner, TotalDepositsCount: 3, TotalLockedVolume: 1500, LastActivityTime: 1_700_000_000,
	}, got)
}

func TestGet_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`SELECT`).WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), owner)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetForUpdate_ProvisionsThenLocks(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+user_stats\s*\(owner\)\s*VALUES\s*\(\$1\)\s*ON\s+CONFLICT\s*\(owner\)\s*DO\s+NOTHING\s*$`).
		WithArgs(owner.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`(?s)FROM\s+user_stats\s+WHERE\s+owner\s*=\s*\$1\s+FOR\s+UPDATE\s*$`).
		WithArgs(owner.String()).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(owner.String(), "0", "0", int64(0)))

	got, err := repo.GetForUpdate(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, owner, got.Owner)
	assert.Zero(t, got.TotalDepositsCount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetForUpdate_ProvisionError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(`INSERT INTO user_stats`).WillReturnError(errors.New("db down"))

	_, err := repo.GetForUpdate(context.Background(), owner)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}

func TestSave(t *testing.T) {
	q := `(?s)^UPDATE\s+user_stats\s+SET\s+total_deposits_count\s*=\s*\$2::numeric,\s*total_locked_volume\s*=\s*\$3::numeric,\s*last_activity_time\s*=\s*\$4\s+WHERE\s+owner\s*=\s*\$1\s*$`
	stats := &models.UserStats{Owner: owner, TotalDepositsCount: 2, TotalLockedVolume: 800, LastActivityTime: 42}

	t.Run("ok", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(q).
			WithArgs(owner.String(), "2", "800", int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, repo.Save(context.Background(), stats))
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(q).WillReturnResult(sqlmock.NewResult(0, 0))
		assert.ErrorIs(t, repo.Save(context.Background(), stats), common.ErrorNotFound)
	})
}
