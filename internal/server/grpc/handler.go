package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/tokenlocker/internal/api"
	pb "github.com/dmitrijs2005/tokenlocker/internal/proto"
	"github.com/dmitrijs2005/tokenlocker/internal/pubkey"
	"github.com/dmitrijs2005/tokenlocker/internal/server/models"
	"github.com/dmitrijs2005/tokenlocker/internal/server/services"
)

func (s *GRPCServer) Authenticate(ctx context.Context, req *pb.AuthenticateRequest) (*pb.AuthenticateResponse, error) {
	owner, err := address(req.GetOwner())
	if err != nil {
		return nil, err
	}

	token, err := s.auth.Authenticate(ctx, owner, req.GetTimestamp(), req.GetSignature())
	if err != nil {
		return nil, api.ToStatus(err)
	}

	s.logger.Info(ctx, "Authenticated", "owner", owner.String())
	return &pb.AuthenticateResponse{AccessToken: token}, nil
}

func (s *GRPCServer) Deposit(ctx context.Context, req *pb.DepositRequest) (*pb.DepositResponse, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	owner, asset, err := ownerAsset(req.GetOwner(), req.GetAsset())
	if err != nil {
		return nil, err
	}

	res, err := s.locks.Deposit(ctx, caller, services.DepositRequest{
		Owner:                  owner,
		Asset:                  asset,
		Amount:                 req.GetAmount(),
		Duration:               req.GetDuration(),
		EarlyWithdrawalAllowed: req.GetEarlyWithdrawalAllowed(),
	})
	if err != nil {
		return nil, api.ToStatus(err)
	}

	return &pb.DepositResponse{
		Position: toPosition(res.Position),
		Stats:    toUserStats(res.Stats),
		Escrow:   res.Escrow.Bytes(),
	}, nil
}

func (s *GRPCServer) WithdrawMature(ctx context.Context, req *pb.WithdrawRequest) (*pb.WithdrawResponse, error) {
	return s.withdraw(ctx, req, s.locks.WithdrawMature)
}

func (s *GRPCServer) WithdrawEarly(ctx context.Context, req *pb.WithdrawRequest) (*pb.WithdrawResponse, error) {
	return s.withdraw(ctx, req, s.locks.WithdrawEarly)
}

type withdrawFunc func(ctx context.Context, caller, owner, asset pubkey.Address) (*services.WithdrawResult, error)

func (s *GRPCServer) withdraw(ctx context.Context, req *pb.WithdrawRequest, fn withdrawFunc) (*pb.WithdrawResponse, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	owner, asset, err := ownerAsset(req.GetOwner(), req.GetAsset())
	if err != nil {
		return nil, err
	}

	res, err := fn(ctx, caller, owner, asset)
	if err != nil {
		return nil, api.ToStatus(err)
	}

	return &pb.WithdrawResponse{
		Position: toPosition(res.Position),
		Payout:   res.Payout,
		Penalty:  res.Penalty,
	}, nil
}

func (s *GRPCServer) GetPosition(ctx context.Context, req *pb.GetPositionRequest) (*pb.Position, error) {
	owner, asset, err := ownerAsset(req.GetOwner(), req.GetAsset())
	if err != nil {
		return nil, err
	}
	pos, err := s.locks.GetPosition(ctx, owner, asset)
	if err != nil {
		return nil, api.ToStatus(err)
	}
	return toPosition(pos), nil
}

func (s *GRPCServer) GetUserStats(ctx context.Context, req *pb.GetUserStatsRequest) (*pb.UserStats, error) {
	owner, err := address(req.GetOwner())
	if err != nil {
		return nil, err
	}
	stats, err := s.locks.GetUserStats(ctx, owner)
	if err != nil {
		return nil, api.ToStatus(err)
	}
	return toUserStats(stats), nil
}

func (s *GRPCServer) GetCustody(ctx context.Context, req *pb.GetCustodyRequest) (*pb.Custody, error) {
	owner, asset, err := ownerAsset(req.GetOwner(), req.GetAsset())
	if err != nil {
		return nil, err
	}
	info, err := s.locks.Custody(ctx, owner, asset)
	if err != nil {
		return nil, api.ToStatus(err)
	}
	return &pb.Custody{
		Program:       info.Authority.Program.Bytes(),
		Authority:     info.Authority.Address.Bytes(),
		Nonce:         uint32(info.Authority.Nonce),
		Escrow:        info.Escrow.Bytes(),
		EscrowBalance: info.EscrowBalance,
	}, nil
}

func (s *GRPCServer) Faucet(ctx context.Context, req *pb.FaucetRequest) (*pb.FaucetResponse, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	asset, err := address(req.GetAsset())
	if err != nil {
		return nil, err
	}

	holding, balance, err := s.locks.Faucet(ctx, caller, asset, req.GetAmount())
	if err != nil {
		return nil, api.ToStatus(err)
	}
	return &pb.FaucetResponse{Holding: holding.Bytes(), Balance: balance}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func callerFromContext(ctx context.Context) (pubkey.Address, error) {
	caller, ok := OwnerFromContext(ctx)
	if !ok || caller.IsZero() {
		return pubkey.Address{}, status.Error(codes.Unauthenticated, "unauthenticated")
	}
	return caller, nil
}

// address decodes a raw address field. Missing, zero and malformed
// addresses are InvalidArgument.
func address(raw []byte) (pubkey.Address, error) {
	if len(raw) == 0 {
		return pubkey.Address{}, status.Error(codes.InvalidArgument, "address is required")
	}
	a, err := pubkey.FromBytes(raw)
	if err != nil {
		return pubkey.Address{}, status.Error(codes.InvalidArgument, err.Error())
	}
	if a.IsZero() {
		return pubkey.Address{}, status.Error(codes.InvalidArgument, "address is required")
	}
	return a, nil
}

func ownerAsset(rawOwner, rawAsset []byte) (owner, asset pubkey.Address, err error) {
	if owner, err = address(rawOwner); err != nil {
		return
	}
	asset, err = address(rawAsset)
	return
}

func toPosition(p *models.LockPosition) *pb.Position {
	if p == nil {
		return nil
	}
	return &pb.Position{
		Owner:                  p.Owner.Bytes(),
		Asset:                  p.Asset.Bytes(),
		Amount:                 p.Amount,
		LockStart:              p.LockStart,
		LockEnd:                p.LockEnd,
		EarlyWithdrawalAllowed: p.EarlyWithdrawalAllowed,
		CustodyNonce:           uint32(p.CustodyNonce),
	}
}

func toUserStats(u *models.UserStats) *pb.UserStats {
	if u == nil {
		return nil
	}
	return &pb.UserStats{
		Owner:              u.Owner.Bytes(),
		TotalDepositsCount: u.TotalDepositsCount,
		TotalLockedVolume:  u.TotalLockedVolume,
		LastActivityTime:   u.LastActivityTime,
	}
}
