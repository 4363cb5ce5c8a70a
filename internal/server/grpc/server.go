// Package grpc exposes the lock service over gRPC (tokenlocker.v1.LockerService).
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/tokenlocker/internal/logging"
	pb "github.com/dmitrijs2005/tokenlocker/internal/proto"
	"github.com/dmitrijs2005/tokenlocker/internal/pubkey"
	"github.com/dmitrijs2005/tokenlocker/internal/server/models"
	"github.com/dmitrijs2005/tokenlocker/internal/server/services"
)

// LockService is the business API the handlers call.
type LockService interface {
	Deposit(ctx context.Context, caller pubkey.Address, req services.DepositRequest) (*services.DepositResult, error)
	WithdrawMature(ctx context.Context, caller, owner, asset pubkey.Address) (*services.WithdrawResult, error)
	WithdrawEarly(ctx context.Context, caller, owner, asset pubkey.Address) (*services.WithdrawResult, error)
	GetPosition(ctx context.Context, owner, asset pubkey.Address) (*models.LockPosition, error)
	GetUserStats(ctx context.Context, owner pubkey.Address) (*models.UserStats, error)
	Custody(ctx context.Context, owner, asset pubkey.Address) (*services.CustodyInfo, error)
	Faucet(ctx context.Context, caller, asset pubkey.Address, amount uint64) (pubkey.Address, uint64, error)
}

// Authenticator issues and resolves access tokens.
type Authenticator interface {
	Authenticate(ctx context.Context, owner pubkey.Address, timestamp int64, signature []byte) (string, error)
	Owner(accessToken string) (pubkey.Address, error)
}

type GRPCServer struct {
	pb.UnimplementedLockerServiceServer
	address string
	locks   LockService
	auth    Authenticator
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, locks LockService, auth Authenticator) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		locks:   locks,
		auth:    auth,
	}
}

// NewServer builds the grpc.Server with interceptors and the service registered.
func (s *GRPCServer) NewServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterLockerServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
