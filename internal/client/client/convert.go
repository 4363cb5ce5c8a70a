package client

import (
	"errors"
	"fmt"
	"math"

	"github.com/dmitrijs2005/tokenlocker/internal/client/models"
	pb "github.com/dmitrijs2005/tokenlocker/internal/proto"
	"github.com/dmitrijs2005/tokenlocker/internal/pubkey"
)

// ErrMalformedResponse is returned when the server replies with a message
// that does not decode into valid locker state.
var ErrMalformedResponse = errors.New("malformed response")

func malformed(field string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrMalformedResponse, field, err)
}

func addressField(field string, raw []byte) (pubkey.Address, error) {
	a, err := pubkey.FromBytes(raw)
	if err != nil {
		return pubkey.Zero, malformed(field, err)
	}
	return a, nil
}

func nonceField(field string, n uint32) (uint8, error) {
	if n > math.MaxUint8 {
		return 0, malformed(field, fmt.Errorf("nonce %d out of range", n))
	}
	return uint8(n), nil
}

func positionFromProto(p *pb.Position) (*models.Position, error) {
	if p == nil {
		return nil, nil
	}
	owner, err := addressField("position.owner", p.GetOwner())
	if err != nil {
		return nil, err
	}
	asset, err := addressField("position.asset", p.GetAsset())
	if err != nil {
		return nil, err
	}
	nonce, err := nonceField("position.custody_nonce", p.GetCustodyNonce())
	if err != nil {
		return nil, err
	}
	return &models.Position{
		Owner:                  owner,
		Asset:                  asset,
		Amount:                 p.GetAmount(),
		LockStart:              p.GetLockStart(),
		LockEnd:                p.GetLockEnd(),
		EarlyWithdrawalAllowed: p.GetEarlyWithdrawalAllowed(),
		CustodyNonce:           nonce,
	}, nil
}

func statsFromProto(s *pb.UserStats) (*models.UserStats, error) {
	if s == nil {
		return nil, nil
	}
	owner, err := addressField("stats.owner", s.GetOwner())
	if err != nil {
		return nil, err
	}
	return &models.UserStats{
		Owner:              owner,
		TotalDepositsCount: s.GetTotalDepositsCount(),
		TotalLockedVolume:  s.GetTotalLockedVolume(),
		LastActivityTime:   s.GetLastActivityTime(),
	}, nil
}

func custodyFromProto(c *pb.Custody) (*models.Custody, error) {
	program, err := addressField("custody.program", c.GetProgram())
	if err != nil {
		return nil, err
	}
	authority, err := addressField("custody.authority", c.GetAuthority())
	if err != nil {
		return nil, err
	}
	escrow, err := addressField("custody.escrow", c.GetEscrow())
	if err != nil {
		return nil, err
	}
	nonce, err := nonceField("custody.nonce", c.GetNonce())
	if err != nil {
		return nil, err
	}
	return &models.Custody{
		Program:       program,
		Authority:     authority,
		Nonce:         nonce,
		Escrow:        escrow,
		EscrowBalance: c.GetEscrowBalance(),
	}, nil
}

func depositFromProto(r *pb.DepositResponse) (*models.DepositResult, error) {
	pos, err := positionFromProto(r.GetPosition())
	if err != nil {
		return nil, err
	}
	stats, err := statsFromProto(r.GetStats())
	if err != nil {
		return nil, err
	}
	escrow, err := addressField("escrow", r.GetEscrow())
	if err != nil {
		return nil, err
	}
	return &models.DepositResult{Position: pos, Stats: stats, Escrow: escrow}, nil
}

func withdrawFromProto(r *pb.WithdrawResponse) (*models.WithdrawResult, error) {
	pos, err := positionFromProto(r.GetPosition())
	if err != nil {
		return nil, err
	}
	return &models.WithdrawResult{Position: pos, Payout: r.GetPayout(), Penalty: r.GetPenalty()}, nil
}

func faucetFromProto(r *pb.FaucetResponse) (*models.FaucetResult, error) {
	holding, err := addressField("holding", r.GetHolding())
	if err != nil {
		return nil, err
	}
	return &models.FaucetResult{Holding: holding, Balance: r.GetBalance()}, nil
}
