// Package positions provides PostgreSQL persistence for lock positions.
package positions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tokenlocker/internal/common"
	"github.com/dmitrijs2005/tokenlocker/internal/dbx"
	"github.com/dmitrijs2005/tokenlocker/internal/pubkey"
	"github.com/dmitrijs2005/tokenlocker/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectColumns = `SELECT owner, asset, amount, lock_start, lock_end, early_withdrawal_allowed, custody_nonce
		 FROM lock_positions
		 WHERE owner = $1 AND asset = $2`

func (r *PostgresRepository) Provision(ctx context.Context, pos *models.LockPosition) error {
	query :=
		`INSERT INTO lock_positions (owner, asset, amount, lock_start, lock_end, early_withdrawal_allowed, custody_nonce)
		 VALUES ($1, $2, $3::numeric, $4, $5, $6, $7)
		 ON CONFLICT (owner, asset) DO NOTHING
		 `

	_, err := r.db.ExecContext(ctx, query,
		pos.Owner, pos.Asset, dbx.Numeric(pos.Amount), pos.LockStart, pos.LockEnd, pos.EarlyWithdrawalAllowed, int16(pos.CustodyNonce))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, owner, asset pubkey.Address) (*models.LockPosition, error) {
	return r.get(ctx, selectColumns, owner, asset)
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, owner, asset pubkey.Address) (*models.LockPosition, error) {
	return r.get(ctx, selectColumns+"\n\t\t FOR UPDATE", owner, asset)
}

func (r *PostgresRepository) get(ctx context.Context, query string, owner, asset pubkey.Address) (*models.LockPosition, error) {
	pos := &models.LockPosition{}
	err := r.db.QueryRowContext(ctx, query, owner, asset).Scan(
		&pos.Owner, &pos.Asset, &pos.Amount, &pos.LockStart, &pos.LockEnd, &pos.EarlyWithdrawalAllowed, &pos.CustodyNonce)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return pos, nil
}

func (r *PostgresRepository) Update(ctx context.Context, pos *models.LockPosition) error {
	query :=
		`UPDATE lock_positions
		 SET amount = $3::numeric, lock_start = $4, lock_end = $5, updated_at = now()
		 WHERE owner = $1 AND asset = $2
		 `

	res, err := r.db.ExecContext(ctx, query, pos.Owner, pos.Asset, dbx.Numeric(pos.Amount), pos.LockStart, pos.LockEnd)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	ok, err := dbx.AffectedOne(res)
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if !ok {
		return common.ErrorNotFound
	}
	return nil
}
