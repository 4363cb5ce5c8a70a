package userstats

import (
	"context"

	"github.com/dmitrijs2005/tokenlocker/internal/pubkey"
	"github.com/dmitrijs2005/tokenlocker/internal/server/models"
)

// Repository stores per-owner deposit statistics.
type Repository interface {
	Get(ctx context.Context, owner pubkey.Address) (*models.UserStats, error)
	// GetForUpdate provisions an empty row if needed and row-locks it.
	GetForUpdate(ctx context.Context, owner pubkey.Address) (*models.UserStats, error)
	Save(ctx context.Context, stats *models.UserStats) error
}
