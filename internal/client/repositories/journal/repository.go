// Package journal keeps a local record of the signed operations the CLI
// sent, so a wallet owner can review what they did without asking the
// server.
package journal

import (
	"context"
	"time"

	"github.com/dmitrijs2005/tokenlocker/internal/pubkey"
)

// Entry is one completed operation.
type Entry struct {
	ID         int64          `json:"id"`
	RecordedAt time.Time      `json:"recorded_at"`
	Op         string         `json:"op"`
	Owner      pubkey.Address `json:"owner"`
	Asset      pubkey.Address `json:"asset"`
	Amount     uint64         `json:"amount"`
	Payout     uint64         `json:"payout"`
	Penalty    uint64         `json:"penalty"`
	LockEnd    int64          `json:"lock_end"`
}

type Repository interface {
	Append(ctx context.Context, e *Entry) error
	// List returns owner's newest entries first, at most limit of them.
	List(ctx context.Context, owner pubkey.Address, limit int) ([]*Entry, error)
}
