// Package registry is the lock-position state machine. Every function is
// pure: it takes the current record and returns the next one, leaving the
// input untouched, so a caller can drop the result if a later step fails.
//
// States: uninitialized → locked ⇄ locked (extended) → closed → locked.
package registry

import (
	"math/bits"
	"time"

	"github.com/dmitrijs2005/tokenlocker/internal/common"
	"github.com/dmitrijs2005/tokenlocker/internal/pubkey"
	"github.com/dmitrijs2005/tokenlocker/internal/server/models"
)

// Deposit describes one Deposit/Extend call.
type Deposit struct {
	Caller                 pubkey.Address
	Owner                  pubkey.Address
	Asset                  pubkey.Address
	Amount                 uint64
	Duration               int64
	EarlyWithdrawalAllowed bool
}

// ValidateDeposit checks the inputs that do not depend on stored state.
func ValidateDeposit(amount uint64, duration int64) error {
	if amount == 0 {
		return common.ErrInvalidAmount
	}
	if duration < common.MinLockDuration {
		return common.ErrLockDurationTooShort
	}
	if duration > common.MaxLockDuration {
		return common.ErrLockDurationTooLong
	}
	return nil
}

// NewPosition is the first-write record for (owner, asset). Owner, asset,
// the early-withdrawal policy and the custody nonce never change after this.
func NewPosition(owner, asset pubkey.Address, earlyWithdrawalAllowed bool, custodyNonce uint8) *models.LockPosition {
	return &models.LockPosition{
		Owner:                  owner,
		Asset:                  asset,
		EarlyWithdrawalAllowed: earlyWithdrawalAllowed,
		CustodyNonce:           custodyNonce,
	}
}

// OpenOrExtend adds d.Amount to the position and restarts the lock window at
// now for the whole balance. A nil pos creates the record with the policy
// flag from d; for an existing record the flag in d is ignored.
func OpenOrExtend(pos *models.LockPosition, d Deposit, custodyNonce uint8, now time.Time) (*models.LockPosition, error) {
	if err := ValidateDeposit(d.Amount, d.Duration); err != nil {
		return nil, err
	}
	if d.Caller != d.Owner {
		return nil, common.ErrUnauthorizedAccess
	}

	var next models.LockPosition
	if pos == nil {
		next = *NewPosition(d.Owner, d.Asset, d.EarlyWithdrawalAllowed, custodyNonce)
	} else {
		next = *pos
	}
	if next.Owner != d.Caller || next.Asset != d.Asset {
		return nil, common.ErrUnauthorizedAccess
	}

	sum, carry := bits.Add64(next.Amount, d.Amount, 0)
	if carry != 0 {
		return nil, common.ErrInvalidAmount
	}

	ts := now.Unix()
	next.Amount = sum
	next.LockStart = ts
	next.LockEnd = ts + d.Duration
	return &next, nil
}

// CloseForFullWithdrawal releases the whole balance once the lock matured.
// It returns the closed record and the amount to pay out.
func CloseForFullWithdrawal(pos *models.LockPosition, caller pubkey.Address, now time.Time) (*models.LockPosition, uint64, error) {
	if pos == nil {
		return nil, 0, common.ErrPositionNotFound
	}
	if pos.Owner != caller {
		return nil, 0, common.ErrUnauthorizedAccess
	}
	if now.Unix() < pos.LockEnd {
		return nil, 0, common.ErrLockNotExpired
	}
	if pos.Amount == 0 {
		return nil, 0, common.ErrAlreadyWithdrawn
	}

	next := *pos
	amount := next.Amount
	next.Amount = 0
	return &next, amount, nil
}

// CloseForEarlyWithdrawal closes the position before maturity. The penalty
// share is for burning, the rest is paid out. There is no maturity check.
func CloseForEarlyWithdrawal(pos *models.LockPosition, caller pubkey.Address) (next *models.LockPosition, payout, penalty uint64, err error) {
	if pos == nil {
		return nil, 0, 0, common.ErrPositionNotFound
	}
	if pos.Owner != caller || !pos.EarlyWithdrawalAllowed {
		return nil, 0, 0, common.ErrUnauthorizedAccess
	}
	if pos.Amount == 0 {
		return nil, 0, 0, common.ErrAlreadyWithdrawn
	}

	penalty = Penalty(pos.Amount)
	payout = pos.Amount - penalty

	closed := *pos
	closed.Amount = 0
	return &closed, payout, penalty, nil
}

// Penalty is floor(amount * EarlyWithdrawalPenaltyPercent / 100) evaluated
// in 128 bits, so it cannot overflow and never exceeds amount.
func Penalty(amount uint64) uint64 {
	hi, lo := bits.Mul64(amount, common.EarlyWithdrawalPenaltyPercent)
	q, _ := bits.Div64(hi, lo, 100)
	return q
}
