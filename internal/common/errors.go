package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Lock lifecycle errors. The messages are part of the public contract:
	// clients match on the gRPC error reason, not on the text.
	ErrInvalidAmount        = errors.New("token amount must be greater than zero")
	ErrLockDurationTooShort = errors.New("lock duration must be at least the minimum lock period (15 minutes)")
	ErrLockDurationTooLong  = errors.New("lock duration exceeds maximum allowed period")
	ErrLockNotExpired       = errors.New("lock period has not expired yet")
	ErrAlreadyWithdrawn     = errors.New("tokens already withdrawn")
	ErrUnauthorizedAccess   = errors.New("only the token owner can perform this action")
	ErrPositionNotFound     = errors.New("lock position not found")
)

var ErrFaucetDisabled = errors.New("faucet is disabled")

// Token program rejections.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrOwnerMismatch     = errors.New("signer does not control holding")
	ErrInvalidSigner     = errors.New("invalid signer")
	ErrAssetMismatch     = errors.New("holding asset mismatch")
	ErrHoldingNotFound   = errors.New("holding not found")
	ErrOverflow          = errors.New("balance overflow")
)
