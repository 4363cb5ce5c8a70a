package positions

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/tokenlocker/internal/common"
	"github.com/dmitrijs2005/tokenlocker/internal/pubkey"
	"github.com/dmitrijs2005/tokenlocker/internal/server/models"
)

var (
	owner = pubkey.MustParse(strings.Repeat("11", pubkey.Size))
	asset = pubkey.MustParse(strings.Repeat("22", pubkey.Size))
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

var columns = []string{"owner", "asset", "amount", "lock_start", "lock_end", "early_withdrawal_allowed", "custody_nonce"}

func TestProvision_InsertsOnConflictDoNothing(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	q := `(?s)^INSERT\s+INTO\s+lock_positions\s*\(owner,\s*asset,\s*amount,\s*lock_start,\s*lock_end,\s*early_withdrawal_allowed,\s*custody_nonce\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3::numeric,\s*\$4,\s*\$5,\s*\$6,\s*\$7\)\s*ON\s+CONFLICT\s*\(owner,\s*asset\)\s*DO\s+NOTHING\s*$`
	mock.ExpectExec(q).
		WithArgs(owner.String(), asset.String(), "0", int64(0), int64(0), true, int64(254)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Provision(context.Background(), &models.LockPosition{
		Owner: owner, Asset: asset, EarlyWithdrawalAllowed: true, CustodyNonce: 254,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProvision_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO lock_positions`).WillReturnError(errors.New("db down"))

	err := repo.Provision(context.Background(), &models.LockPosition{Owner: owner, Asset: asset})
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*db down`), err.Error())
}

func TestGet_Found(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	q := `(?s)^SELECT\s+owner,\s*asset,\s*amount,\s*lock_start,\s*lock_end,\s*early_withdrawal_allowed,\s*custody_nonce\s+FROM\s+lock_positions\s+WHERE\s+owner\s*=\s*\$1\s+AND\s+asset\s*=\s*\$2\s*$`
	mock.ExpectQuery(q).
		WithArgs(owner.String(), asset.String()).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(owner.String(), asset.String(), "18446744073709551615", int64(100), int64(1000), false, int64(253)))

	got, err := repo.Get(context.Background(), owner, asset)
	require.NoError(t, err)
	assert.Equal(t, &models.LockPosition{
		Owner: owner, Asset: asset, Amount: ^uint64(0), LockStart: 100, LockEnd: 1000, CustodyNonce: 253,
	}, got)
}

func TestGetForUpdate_LocksRow(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	q := `(?s)^SELECT\s+owner,.*FROM\s+lock_positions\s+WHERE\s+owner\s*=\s*\$1\s+AND\s+asset\s*=\s*\$2\s+FOR\s+UPDATE\s*$`
	mock.ExpectQuery(q).
		WithArgs(owner.String(), asset.String()).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(owner.String(), asset.String(), "500", int64(100), int64(1000), true, int64(255)))

	got, err := repo.GetForUpdate(context.Background(), owner, asset)
	require.NoError(t, err)
	assert.Equal(t, uint64(500), got.Amount)
	assert.True(t, got.EarlyWithdrawalAllowed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT`).WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), owner, asset)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGet_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("db err"))

	_, err := repo.GetForUpdate(context.Background(), owner, asset)
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*db err`), err.Error())
}

func TestUpdate(t *testing.T) {
	q := `(?s)^UPDATE\s+lock_positions\s+SET\s+amount\s*=\s*\$3::numeric,\s*lock_start\s*=\s*\$4,\s*lock_end\s*=\s*\$5,\s*updated_at\s*=\s*now\(\)\s+WHERE\s+owner\s*=\s*\$1\s+AND\s+asset\s*=\s*\$2\s*$`
	pos := &models.LockPosition{Owner: owner, Asset: asset, Amount: 800, LockStart: 10, LockEnd: 910}

	t.Run("ok", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(q).
			WithArgs(owner.String(), asset.String(), "800", int64(10), int64(910)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, repo.Update(context.Background(), pos))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(q).WillReturnResult(sqlmock.NewResult(0, 0))
		assert.ErrorIs(t, repo.Update(context.Background(), pos), common.ErrorNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(q).WillReturnError(errors.New("db down"))
		err := repo.Update(context.Background(), pos)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db error")
	})
}
