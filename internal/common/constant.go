// Package common contains shared constants and sentinel errors used across
// tokenlocker components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// Lock policy constants. Durations are in seconds.
const (
	// MinLockDuration is the shortest accepted lock (15 minutes).
	MinLockDuration int64 = 900
	// MaxLockDuration is the longest accepted lock (2 years).
	MaxLockDuration int64 = 63072000
	// EarlyWithdrawalPenaltyPercent is the share of the principal burned on
	// early withdrawal.
	EarlyWithdrawalPenaltyPercent uint64 = 20
)

// LockerSeed prefixes the derivation seeds of every custody authority.
var LockerSeed = []byte("token_locker")
