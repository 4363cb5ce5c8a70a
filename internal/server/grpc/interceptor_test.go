package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/tokenlocker/internal/api"
	"github.com/dmitrijs2005/tokenlocker/internal/common"
	pb "github.com/dmitrijs2005/tokenlocker/internal/proto"
)

// helper to build server
func newTestServer(auth *fakeAuth) *GRPCServer {
	return NewGRPCServer("", nopLogger{}, &fakeLocks{}, auth)
}

func incoming(token string) context.Context {
	md := metadata.New(map[string]string{common.AccessTokenHeaderName: token})
	return metadata.NewIncomingContext(context.Background(), md)
}

func TestInterceptor_PublicMethod_AllowsWithoutToken(t *testing.T) {
	s := newTestServer(&fakeAuth{})

	for _, m := range []string{pb.LockerService_Ping_FullMethodName, pb.LockerService_Authenticate_FullMethodName, pb.LockerService_GetPosition_FullMethodName, pb.LockerService_GetCustody_FullMethodName} {
		handlerCalled := false
		h := func(ctx context.Context, req interface{}) (interface{}, error) {
			handlerCalled = true
			_, ok := OwnerFromContext(ctx)
			assert.False(t, ok)
			return "ok", nil
		}

		resp, err := s.accessTokenInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: m}, h)
		require.NoError(t, err, m)
		assert.True(t, handlerCalled, m)
		assert.Equal(t, "ok", resp)
	}
}

func TestInterceptor_Protected_MissingToken(t *testing.T) {
	s := newTestServer(&fakeAuth{})
	info := &grpc.UnaryServerInfo{FullMethod: pb.LockerService_Deposit_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "missing token", status.Convert(err).Message())
}

func TestInterceptor_Protected_InvalidToken(t *testing.T) {
	s := newTestServer(&fakeAuth{ownerErr: common.ErrInvalidToken})
	info := &grpc.UnaryServerInfo{FullMethod: pb.LockerService_WithdrawMature_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called for invalid token")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(incoming("not-a-valid-jwt"), nil, info, h)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "INVALID_TOKEN", api.Reason(err))
}

func TestInterceptor_Protected_ExpiredToken(t *testing.T) {
	s := newTestServer(&fakeAuth{ownerErr: common.ErrTokenExpired})
	info := &grpc.UnaryServerInfo{FullMethod: pb.LockerService_WithdrawEarly_FullMethodName}

	_, err := s.accessTokenInterceptor(incoming("old"), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, nil
	})
	assert.ErrorIs(t, api.FromStatus(err), common.ErrTokenExpired)
}

func TestInterceptor_Protected_ValidToken_SetsOwner(t *testing.T) {
	s := newTestServer(&fakeAuth{owner: owner})
	info := &grpc.UnaryServerInfo{FullMethod: pb.LockerService_Deposit_FullMethodName}

	var got any
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		got, _ = OwnerFromContext(ctx)
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(incoming("good"), nil, info, h)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.Equal(t, owner, got)
}

func TestLoggingInterceptor_PassesThrough(t *testing.T) {
	s := newTestServer(&fakeAuth{})
	info := &grpc.UnaryServerInfo{FullMethod: pb.LockerService_Ping_FullMethodName}

	wantErr := status.Error(codes.Internal, "boom")
	_, err := s.loggingInterceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, wantErr
	})
	assert.Equal(t, wantErr, err)

	resp, err := s.loggingInterceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}
