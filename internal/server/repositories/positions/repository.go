package positions

import (
	"context"

	"github.com/dmitrijs2005/tokenlocker/internal/pubkey"
	"github.com/dmitrijs2005/tokenlocker/internal/server/models"
)

// Repository stores lock positions keyed by (owner, asset).
type Repository interface {
	// Provision inserts pos unless a record for the pair exists. The first
	// write fixes the immutable fields.
	Provision(ctx context.Context, pos *models.LockPosition) error
	Get(ctx context.Context, owner, asset pubkey.Address) (*models.LockPosition, error)
	// GetForUpdate also row-locks the record for the current transaction.
	GetForUpdate(ctx context.Context, owner, asset pubkey.Address) (*models.LockPosition, error)
	// Update writes the mutable fields: amount and the lock window.
	Update(ctx context.Context, pos *models.LockPosition) error
}
