// Package models defines server-side records persisted in the database.
package models

import "github.com/dmitrijs2005/tokenlocker/internal/pubkey"

// LockPosition is the escrow record for one (owner, asset) pair.
// Amount 0 means closed; a later deposit re-opens the same record.
type LockPosition struct {
	Owner  pubkey.Address
	Asset  pubkey.Address
	Amount uint64
	// LockStart and LockEnd are unix seconds.
	LockStart              int64
	LockEnd                int64
	EarlyWithdrawalAllowed bool
	// CustodyNonce is the bump the custody authority was derived with.
	CustodyNonce uint8
}

// Closed reports whether nothing is escrowed.
func (p *LockPosition) Closed() bool { return p.Amount == 0 }
