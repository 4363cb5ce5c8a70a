// Package userledger maintains the per-owner lifetime deposit statistics.
package userledger

import (
	"math/bits"
	"time"

	"github.com/dmitrijs2005/tokenlocker/internal/common"
	"github.com/dmitrijs2005/tokenlocker/internal/pubkey"
	"github.com/dmitrijs2005/tokenlocker/internal/server/models"
)

// RecordDeposit returns stats with one more deposit of amount counted.
// A nil stats starts a fresh aggregate for owner. Called once per accepted
// Deposit/Extend, after the lock position was updated.
func RecordDeposit(stats *models.UserStats, owner pubkey.Address, amount uint64, now time.Time) (*models.UserStats, error) {
	next := models.UserStats{Owner: owner}
	if stats != nil {
		next = *stats
	}
	if next.Owner != owner {
		return nil, common.ErrUnauthorizedAccess
	}

	volume, carry := bits.Add64(next.TotalLockedVolume, amount, 0)
	if carry != 0 {
		return nil, common.ErrInvalidAmount
	}
	count, carry := bits.Add64(next.TotalDepositsCount, 1, 0)
	if carry != 0 {
		return nil, common.ErrInvalidAmount
	}

	next.TotalLockedVolume = volume
	next.TotalDepositsCount = count
	next.LastActivityTime = now.Unix()
	return &next, nil
}
