package journal

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/tokenlocker/internal/dbx"
	"github.com/dmitrijs2005/tokenlocker/internal/pubkey"
)

// SQLiteRepository stores amounts as decimal text; SQLite integers are
// signed 64-bit.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Append(ctx context.Context, e *Entry) error {
	if e.RecordedAt.IsZero() {
		e.RecordedAt = time.Now()
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO journal (recorded_at, op, owner, asset, amount, payout, penalty, lock_end)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.RecordedAt.Unix(), e.Op, e.Owner, e.Asset,
		strconv.FormatUint(e.Amount, 10), strconv.FormatUint(e.Payout, 10), strconv.FormatUint(e.Penalty, 10),
		e.LockEnd,
	)
	if err != nil {
		return fmt.Errorf("failed to append journal entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read journal id: %w", err)
	}
	e.ID = id
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context, owner pubkey.Address, limit int) ([]*Entry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, recorded_at, op, owner, asset, amount, payout, penalty, lock_end
		FROM journal WHERE owner = ? ORDER BY id DESC LIMIT ?`, owner.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal: %w", err)
	}
	defer rows.Close()

	var result []*Entry
	for rows.Next() {
		var (
			e                       Entry
			recordedAt              int64
			amount, payout, penalty string
		)
		if err := rows.Scan(&e.ID, &recordedAt, &e.Op, &e.Owner, &e.Asset, &amount, &payout, &penalty, &e.LockEnd); err != nil {
			return nil, fmt.Errorf("failed to scan journal row: %w", err)
		}
		e.RecordedAt = time.Unix(recordedAt, 0)
		if e.Amount, err = strconv.ParseUint(amount, 10, 64); err != nil {
			return nil, err
		}
		if e.Payout, err = strconv.ParseUint(payout, 10, 64); err != nil {
			return nil, err
		}
		if e.Penalty, err = strconv.ParseUint(penalty, 10, 64); err != nil {
			return nil, err
		}
		result = append(result, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate journal rows: %w", err)
	}
	return result, nil
}
