// Package api is the error contract of the tokenlocker.v1.LockerService
// gRPC service: sentinel errors travel as google.rpc.ErrorInfo reasons so
// the client can restore them. Messages and stubs live in internal/proto.
package api

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/tokenlocker/internal/common"
)

// ErrorDomain is the google.rpc.ErrorInfo domain of every mapped error.
const ErrorDomain = "tokenlocker"

type reason struct {
	name string
	code codes.Code
	err  error
}

var reasons = []reason{
	{"INVALID_AMOUNT", codes.InvalidArgument, common.ErrInvalidAmount},
	{"LOCK_DURATION_TOO_SHORT", codes.InvalidArgument, common.ErrLockDurationTooShort},
	{"LOCK_DURATION_TOO_LONG", codes.InvalidArgument, common.ErrLockDurationTooLong},
	{"LOCK_NOT_EXPIRED", codes.FailedPrecondition, common.ErrLockNotExpired},
	{"ALREADY_WITHDRAWN", codes.FailedPrecondition, common.ErrAlreadyWithdrawn},
	{"UNAUTHORIZED_ACCESS", codes.PermissionDenied, common.ErrUnauthorizedAccess},
	{"POSITION_NOT_FOUND", codes.NotFound, common.ErrPositionNotFound},
	{"FAUCET_DISABLED", codes.PermissionDenied, common.ErrFaucetDisabled},
	{"UNAUTHENTICATED", codes.Unauthenticated, common.ErrorUnauthorized},
	{"TOKEN_EXPIRED", codes.Unauthenticated, common.ErrTokenExpired},
	{"INVALID_TOKEN", codes.Unauthenticated, common.ErrInvalidToken},
	{"INSUFFICIENT_FUNDS", codes.FailedPrecondition, common.ErrInsufficientFunds},
	{"HOLDING_NOT_FOUND", codes.FailedPrecondition, common.ErrHoldingNotFound},
	{"OWNER_MISMATCH", codes.PermissionDenied, common.ErrOwnerMismatch},
	{"INVALID_SIGNER", codes.PermissionDenied, common.ErrInvalidSigner},
	{"ASSET_MISMATCH", codes.InvalidArgument, common.ErrAssetMismatch},
	{"BALANCE_OVERFLOW", codes.FailedPrecondition, common.ErrOverflow},
}

// ToStatus converts a service error into a gRPC status error carrying an
// ErrorInfo detail. Unknown errors become Internal without leaking text.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			st := status.New(r.code, r.err.Error())
			if withInfo, derr := st.WithDetails(&errdetails.ErrorInfo{Reason: r.name, Domain: ErrorDomain}); derr == nil {
				st = withInfo
			}
			return st.Err()
		}
	}
	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}

// FromStatus maps a status error produced by ToStatus back to its sentinel,
// so callers can use errors.Is on the client side. Other errors are
// returned unchanged.
func FromStatus(err error) error {
	st, ok := status.FromError(err)
	if !ok || st == nil {
		return err
	}
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != ErrorDomain {
			continue
		}
		for _, r := range reasons {
			if r.name == info.GetReason() {
				return r.err
			}
		}
	}
	return err
}

// Reason returns the ErrorInfo reason of err, or "" when it has none.
func Reason(err error) string {
	st, ok := status.FromError(err)
	if !ok || st == nil {
		return ""
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == ErrorDomain {
			return info.GetReason()
		}
	}
	return ""
}
