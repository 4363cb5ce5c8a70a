package holdings

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
	"github.com/dmitrijs2005/tokenlocker/internal/server/token"
)

var (
	addr      = pubkey.MustParse(strings.Repeat("55", pubkey.Size))
	asset     = pubkey.MustParse(strings.Repeat("66", pubkey.Size))
	authority = pubkey.MustParse(strings.Repeat("77", pubkey.Size))
)

var _ token.Repository = (*PostgresRepository)(nil)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestProvision(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	q := `(?s)^INSERT\s+INTO\s+token_holdings\s*\(address,\s*asset,\s*authority,\s*balance\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4::numeric\)\s*ON\s+CONFLICT\s*\(address\)\s*DO\s+NOTHING\s*$`
	mock.ExpectExec(q).
		WithArgs(addr.String(), asset.String(), authority.String(), "0").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Provision(context.Background(), &models.Holding{Address: addr, Asset: asset, Authority: authority})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetForUpdate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	q := `(?s)^SELECT\s+address,\s*asset,\s*authority,\s*balance\s+FROM\s+token_holdings\s+WHERE\s+address\s*=\s*\$1\s+FOR\s+UPDATE\s*$`
	mock.ExpectQuery(q).
		WithArgs(addr.String()).
		WillReturnRows(sqlmock.NewRows([]string{"address", "asset", "authority", "balance"}).
			AddRow(addr.String(), asset.String(), authority.String(), "1000"))

	got, err := repo.GetForUpdate(context.Background(), addr)
	require.NoError(t, err)
	assert.Equal(t, &models.Holding{Address: addr, Asset: asset, Authority: authority, Balance: 1000}, got)
}

func TestGet_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`SELECT`).WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), addr)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSetBalance(t *testing.T) {
	q := `(?s)^UPDATE\s+token_holdings\s+SET\s+balance\s*=\s*\$2::numeric,\s*updated_at\s*=\s*now\(\)\s+WHERE\s+address\s*=\s*\$1\s*$`

	t.Run("ok", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(q).WithArgs(addr.String(), "800").WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, repo.SetBalance(context.Background(), addr, 800))
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(q).WillReturnResult(sqlmock.NewResult(0, 0))
		assert.ErrorIs(t, repo.SetBalance(context.Background(), addr, 1), common.ErrorNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(q).WillReturnError(errors.New("db down"))
		err := repo.SetBalance(context.Background(), addr, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db error")
	})
}
