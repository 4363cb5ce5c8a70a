package models

import "github.com/dmitrijs2005/tokenlocker/internal/pubkey"

// UserStats is the lifetime deposit aggregate for one owner. Withdrawals
// never touch it.
type UserStats struct {
	Owner              pubkey.Address
	TotalDepositsCount uint64
	TotalLockedVolume  uint64
	// LastActivityTime is unix seconds of the latest deposit.
	LastActivityTime int64
}
