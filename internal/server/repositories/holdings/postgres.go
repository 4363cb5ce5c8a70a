// Package holdings provides PostgreSQL persistence for token holdings.
package holdings

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

const selectHolding = `SELECT address, asset, authority, balance
		 FROM token_holdings
		 WHERE address = $1`

func (r *PostgresRepository) Provision(ctx context.Context, h *models.Holding) error {
	query :=
		`INSERT INTO token_holdings (address, asset, authority, balance)
		 VALUES ($1, $2, $3, $4::numeric)
		 ON CONFLICT (address) DO NOTHING
		 `

	if _, err := r.db.ExecContext(ctx, query, h.Address, h.Asset, h.Authority, dbx.Numeric(h.Balance)); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, address pubkey.Address) (*models.Holding, error) {
	return r.get(ctx, selectHolding, address)
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, address pubkey.Address) (*models.Holding, error) {
	return r.get(ctx, selectHolding+"\n\t\t FOR UPDATE", address)
}

func (r *PostgresRepository) get(ctx context.Context, query string, address pubkey.Address) (*models.Holding, error) {
	h := &models.Holding{}
	err := r.db.QueryRowContext(ctx, query, address).Scan(&h.Address, &h.Asset, &h.Authority, &h.Balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return h, nil
}

func (r *PostgresRepository) SetBalance(ctx context.Context, address pubkey.Address, balance uint64) error {
	query :=
		`UPDATE token_holdings SET balance = $2::numeric, updated_at = now()
		 WHERE address = $1
		 `

	res, err := r.db.ExecContext(ctx, query, address, dbx.Numeric(balance))
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
