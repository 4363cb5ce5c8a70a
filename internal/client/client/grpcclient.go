package client

import (
	"context"
	"crypto/ed25519"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/tokenlocker/internal/api"
	"github.com/dmitrijs2005/tokenlocker/internal/client/models"
	"github.com/dmitrijs2005/tokenlocker/internal/common"
	pb "github.com/dmitrijs2005/tokenlocker/internal/proto"
	"github.com/dmitrijs2005/tokenlocker/internal/pubkey"
)

// GRPCClient talks to a LockerService endpoint on behalf of one wallet.
type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.LockerServiceClient

	key   ed25519.PrivateKey
	owner pubkey.Address
	now   func() time.Time

	mu            sync.Mutex
	accessToken   string
	lastChallenge int64
}

// NewGRPCClient dials endpointURL. key may be nil, in which case only the
// public read calls are usable.
func NewGRPCClient(endpointURL string, key ed25519.PrivateKey, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, key: key, now: time.Now}
	if key != nil {
		owner, err := pubkey.FromPublicKey(key.Public().(ed25519.PublicKey))
		if err != nil {
			return nil, err
		}
		c.owner = owner
	}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewLockerServiceClient(conn)
	return c, nil
}

// Owner is the wallet address the client acts for.
func (c *GRPCClient) Owner() pubkey.Address { return c.owner }

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

func (c *GRPCClient) token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken
}

func (c *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if method == pb.LockerService_Authenticate_FullMethodName || c.key == nil {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	if c.token() != "" {
		err := invoker(withAccessToken(ctx, c.token()), method, req, reply, cc, opts...)
		if !needsLogin(err) {
			return err
		}
	} else if !isProtected(method) {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	if err := c.Login(ctx); err != nil {
		return err
	}
	return invoker(withAccessToken(ctx, c.token()), method, req, reply, cc, opts...)
}

func isProtected(method string) bool {
	switch method {
	case pb.LockerService_Deposit_FullMethodName,
		pb.LockerService_WithdrawMature_FullMethodName,
		pb.LockerService_WithdrawEarly_FullMethodName,
		pb.LockerService_Faucet_FullMethodName:
		return true
	}
	return false
}

func needsLogin(err error) bool {
	if status.Code(err) != codes.Unauthenticated {
		return false
	}
	switch api.FromStatus(err) {
	case common.ErrTokenExpired, common.ErrInvalidToken:
		return true
	}
	return false
}

// Login signs a fresh challenge and stores the access token it buys.
func (c *GRPCClient) Login(ctx context.Context) error {
	if c.key == nil {
		return ErrNoKey
	}
	ts := c.nextChallenge()
	sig := ed25519.Sign(c.key, common.AuthChallenge(c.owner.String(), ts))

	resp, err := c.client.Authenticate(ctx, &pb.AuthenticateRequest{Owner: c.owner.Bytes(), Timestamp: ts, Signature: sig})
	if err != nil {
		return c.mapError(err)
	}

	c.mu.Lock()
	c.accessToken = resp.GetAccessToken()
	c.mu.Unlock()
	return nil
}

// nextChallenge returns the current time in unix milliseconds, bumped past
// the previous challenge since the server accepts each timestamp once.
func (c *GRPCClient) nextChallenge() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	ts := c.now().UnixMilli()
	if ts <= c.lastChallenge {
		ts = c.lastChallenge + 1
	}
	c.lastChallenge = ts
	return ts
}

func (c *GRPCClient) Deposit(ctx context.Context, asset pubkey.Address, amount uint64, duration time.Duration, earlyWithdrawal bool) (*models.DepositResult, error) {
	if c.key == nil {
		return nil, ErrNoKey
	}
	req := &pb.DepositRequest{
		Owner:                  c.owner.Bytes(),
		Asset:                  asset.Bytes(),
		Amount:                 amount,
		Duration:               int64(duration / time.Second),
		EarlyWithdrawalAllowed: earlyWithdrawal,
	}
	resp, err := c.client.Deposit(ctx, req)
	if err != nil {
		return nil, c.mapError(err)
	}
	return depositFromProto(resp)
}

func (c *GRPCClient) WithdrawMature(ctx context.Context, asset pubkey.Address) (*models.WithdrawResult, error) {
	if c.key == nil {
		return nil, ErrNoKey
	}
	resp, err := c.client.WithdrawMature(ctx, &pb.WithdrawRequest{Owner: c.owner.Bytes(), Asset: asset.Bytes()})
	if err != nil {
		return nil, c.mapError(err)
	}
	return withdrawFromProto(resp)
}

func (c *GRPCClient) WithdrawEarly(ctx context.Context, asset pubkey.Address) (*models.WithdrawResult, error) {
	if c.key == nil {
		return nil, ErrNoKey
	}
	resp, err := c.client.WithdrawEarly(ctx, &pb.WithdrawRequest{Owner: c.owner.Bytes(), Asset: asset.Bytes()})
	if err != nil {
		return nil, c.mapError(err)
	}
	return withdrawFromProto(resp)
}

func (c *GRPCClient) Position(ctx context.Context, owner, asset pubkey.Address) (*models.Position, error) {
	resp, err := c.client.GetPosition(ctx, &pb.GetPositionRequest{Owner: owner.Bytes(), Asset: asset.Bytes()})
	if err != nil {
		return nil, c.mapError(err)
	}
	return positionFromProto(resp)
}

func (c *GRPCClient) Stats(ctx context.Context, owner pubkey.Address) (*models.UserStats, error) {
	resp, err := c.client.GetUserStats(ctx, &pb.GetUserStatsRequest{Owner: owner.Bytes()})
	if err != nil {
		return nil, c.mapError(err)
	}
	return statsFromProto(resp)
}

func (c *GRPCClient) Custody(ctx context.Context, owner, asset pubkey.Address) (*models.Custody, error) {
	resp, err := c.client.GetCustody(ctx, &pb.GetCustodyRequest{Owner: owner.Bytes(), Asset: asset.Bytes()})
	if err != nil {
		return nil, c.mapError(err)
	}
	return custodyFromProto(resp)
}

func (c *GRPCClient) Faucet(ctx context.Context, asset pubkey.Address, amount uint64) (*models.FaucetResult, error) {
	if c.key == nil {
		return nil, ErrNoKey
	}
	resp, err := c.client.Faucet(ctx, &pb.FaucetRequest{Asset: asset.Bytes(), Amount: amount})
	if err != nil {
		return nil, c.mapError(err)
	}
	return faucetFromProto(resp)
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	resp, err := c.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return c.mapError(err)
	}
	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (c *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if mapped := api.FromStatus(err); mapped != err {
		return mapped
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
