package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/tokenlocker/internal/api"
	"github.com/dmitrijs2005/tokenlocker/internal/common"
	pb "github.com/dmitrijs2005/tokenlocker/internal/proto"
	"github.com/dmitrijs2005/tokenlocker/internal/pubkey"
)

type ctxKey string

const ownerKey ctxKey = "owner"

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "x-request-id"

// protectedMethods need a valid access token; the rest are public reads.
var protectedMethods = map[string]struct{}{
	pb.LockerService_Deposit_FullMethodName:        {},
	pb.LockerService_WithdrawMature_FullMethodName: {},
	pb.LockerService_WithdrawEarly_FullMethodName:  {},
	pb.LockerService_Faucet_FullMethodName:         {},
}

// OwnerFromContext returns the authenticated wallet stored by the
// access token interceptor.
func OwnerFromContext(ctx context.Context) (pubkey.Address, bool) {
	owner, ok := ctx.Value(ownerKey).(pubkey.Address)
	return owner, ok
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if _, ok := protectedMethods[info.FullMethod]; ok {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		owner, err := s.auth.Owner(accessToken)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				return nil, api.ToStatus(err)
			}
			return nil, api.ToStatus(common.ErrInvalidToken)
		}

		ctx = context.WithValue(ctx, ownerKey, owner)

	}

	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	requestID := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(RequestIDHeader); len(values) > 0 {
			requestID = values[0]
		}
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}
	_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID))

	start := time.Now()
	resp, err := handler(ctx, req)

	args := []any{
		"method", info.FullMethod,
		"request_id", requestID,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	}
	switch status.Code(err) {
	case codes.OK:
		s.logger.Info(ctx, "request", args...)
	case codes.Internal, codes.Unknown:
		s.logger.Error(ctx, "request", args...)
	default:
		s.logger.Warn(ctx, "request", args...)
	}
	return resp, err
}
