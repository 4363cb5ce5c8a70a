// Package models holds the client-side views of locker state as the CLI
// prints them.
package models

import "github.com/dmitrijs2005/tokenlocker/internal/pubkey"

// Position is a lock position as reported by the server.
type Position struct {
	Owner                  pubkey.Address `json:"owner"`
	Asset                  pubkey.Address `json:"asset"`
	Amount                 uint64         `json:"amount"`
	LockStart              int64          `json:"lock_start"`
	LockEnd                int64          `json:"lock_end"`
	EarlyWithdrawalAllowed bool           `json:"early_withdrawal_allowed"`
	CustodyNonce           uint8          `json:"custody_nonce"`
}

type UserStats struct {
	Owner              pubkey.Address `json:"owner"`
	TotalDepositsCount uint64         `json:"total_deposits_count"`
	TotalLockedVolume  uint64         `json:"total_locked_volume"`
	LastActivityTime   int64          `json:"last_activity_time"`
}

// Custody describes the program-derived authority and escrow holding for
// one (owner, asset) pair.
type Custody struct {
	Program       pubkey.Address `json:"program"`
	Authority     pubkey.Address `json:"authority"`
	Nonce         uint8          `json:"nonce"`
	Escrow        pubkey.Address `json:"escrow"`
	EscrowBalance uint64         `json:"escrow_balance"`
}

type DepositResult struct {
	Position *Position     `json:"position"`
	Stats    *UserStats     `json:"stats"`
	Escrow   pubkey.Address `json:"escrow"`
}

type WithdrawResult struct {
	Position *Position `json:"position"`
	Payout   uint64    `json:"payout"`
	Penalty  uint64    `json:"penalty"`
}

type FaucetResult struct {
	Holding pubkey.Address `json:"holding"`
	Balance uint64         `json:"balance"`
}
