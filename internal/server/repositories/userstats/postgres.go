// Package userstats provides PostgreSQL persistence for owner statistics.
package userstats

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

const selectStats = `SELECT owner, total_deposits_count, total_locked_volume, last_activity_time
		 FROM user_stats
		 WHERE owner = $1`

func (r *PostgresRepository) Get(ctx context.Context, owner pubkey.Address) (*models.UserStats, error) {
	return r.get(ctx, selectStats, owner)
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, owner pubkey.Address) (*models.UserStats, error) {
	query :=
		`INSERT INTO user_stats (owner) VALUES ($1)
		 ON CONFLICT (owner) DO NOTHING
		 `
	if _, err := r.db.ExecContext(ctx, query, owner); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return r.get(ctx, selectStats+"\n\t\t FOR UPDATE", owner)
}

func (r *PostgresRepository) get(ctx context.Context, query string, owner pubkey.Address) (*models.UserStats, error) {
	stats := &models.UserStats{}
	err := r.db.QueryRowContext(ctx, query, owner).Scan(
		&stats.Owner, &stats.TotalDepositsCount, &stats.TotalLockedVolume, &stats.LastActivityTime)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return stats, nil
}

func (r *PostgresRepository) Save(ctx context.Context, stats *models.UserStats) error {
	query :=
		`UPDATE user_stats
		 SET total_deposits_count = $2::numeric, total_locked_volume = $3::numeric, last_activity_time = $4
		 WHERE owner = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		stats.Owner, dbx.Numeric(stats.TotalDepositsCount), dbx.Numeric(stats.TotalLockedVolume), stats.LastActivityTime)
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
