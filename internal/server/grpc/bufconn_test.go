package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"

	"github.com/dmitrijs2005/tokenlocker/internal/api"
	"github.com/dmitrijs2005/tokenlocker/internal/common"
	pb "github.com/dmitrijs2005/tokenlocker/internal/proto"
	"github.com/dmitrijs2005/tokenlocker/internal/server/models"
	"github.com/dmitrijs2005/tokenlocker/internal/server/services"
)

func startBufconn(t *testing.T, s *GRPCServer) pb.LockerServiceClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		<-done
	})
	return pb.NewLockerServiceClient(conn)
}

func TestBufconn_EndToEnd(t *testing.T) {
	locks := &fakeLocks{
		depositResp: &services.DepositResult{
			Position: &models.LockPosition{Owner: owner, Asset: asset, Amount: 500, LockEnd: 900},
			Stats:    &models.UserStats{Owner: owner, TotalDepositsCount: 1},
		},
	}
	s := NewGRPCServer("", nopLogger{}, locks, &fakeAuth{token: "jwt", owner: owner})
	client := startBufconn(t, s)

	ping, err := client.Ping(context.Background(), &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", ping.Status)

	_, err = client.Deposit(context.Background(), &pb.DepositRequest{Owner: owner.Bytes(), Asset: asset.Bytes(), Amount: 500, Duration: 900})
	require.Error(t, err)

	auth, err := client.Authenticate(context.Background(), &pb.AuthenticateRequest{Owner: owner.Bytes(), Timestamp: 1, Signature: []byte{1}})
	require.NoError(t, err)

	ctx := metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, auth.AccessToken)
	var header metadata.MD
	resp, err := client.Deposit(ctx, &pb.DepositRequest{Owner: owner.Bytes(), Asset: asset.Bytes(), Amount: 500, Duration: 900}, grpc.Header(&header))
	require.NoError(t, err)
	assert.Equal(t, uint64(500), resp.GetPosition().GetAmount())
	assert.Equal(t, owner, locks.lastCaller)
	assert.NotEmpty(t, header.Get(RequestIDHeader))

	locks.withdrawErr = common.ErrLockNotExpired
	_, err = client.WithdrawMature(ctx, &pb.WithdrawRequest{Owner: owner.Bytes(), Asset: asset.Bytes()})
	assert.ErrorIs(t, api.FromStatus(err), common.ErrLockNotExpired)
}
