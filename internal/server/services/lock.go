// Package services contains server-side business logic. This file implements
// LockService, which runs the lock transitions (deposit, mature withdrawal,
// early withdrawal) plus the read APIs and the development faucet.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tokenlocker/internal/common"
	"github.com/dmitrijs2005/tokenlocker/internal/dbx"
	"github.com/dmitrijs2005/tokenlocker/internal/logging"
	"github.com/dmitrijs2005/tokenlocker/internal/pubkey"
	"github.com/dmitrijs2005/tokenlocker/internal/server/config"
	"github.com/dmitrijs2005/tokenlocker/internal/server/custody"
	"github.com/dmitrijs2005/tokenlocker/internal/server/metrics"
	"github.com/dmitrijs2005/tokenlocker/internal/server/models"
	"github.com/dmitrijs2005/tokenlocker/internal/server/registry"
	"github.com/dmitrijs2005/tokenlocker/internal/server/repositories/positions"
	"github.com/dmitrijs2005/tokenlocker/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tokenlocker/internal/server/token"
	"github.com/dmitrijs2005/tokenlocker/internal/server/userledger"
	"github.com/dmitrijs2005/tokenlocker/internal/timex"
)

// Operation labels used for metrics and logs.
const (
	OpDeposit        = "deposit"
	OpWithdrawMature = "withdraw_mature"
	OpWithdrawEarly  = "withdraw_early"
	OpFaucet         = "faucet"
)

// DepositRequest is one Deposit/Extend call.
type DepositRequest struct {
	Owner                  pubkey.Address
	Asset                  pubkey.Address
	Amount                 uint64
	Duration               int64
	EarlyWithdrawalAllowed bool
}

// DepositResult is the state after a committed deposit.
type DepositResult struct {
	Position *models.LockPosition
	Stats    *models.UserStats
	Escrow   pubkey.Address
}

// WithdrawResult is the state after a committed withdrawal. Penalty is
// always zero for mature withdrawals.
type WithdrawResult struct {
	Position *models.LockPosition
	Payout   uint64
	Penalty  uint64
}

// CustodyInfo lets anyone check where a position's funds are escrowed.
type CustodyInfo struct {
	Authority     custody.Authority
	Escrow        pubkey.Address
	EscrowBalance uint64
}

// LockService runs every lock transition inside one database transaction
// spanning the position, the owner statistics and the token holdings.
type LockService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	clock         timex.Clock
	programID     pubkey.Address
	faucetEnabled bool
	logger        logging.Logger
	metrics       *metrics.Metrics
}

// NewLockService constructs a LockService using repositories and server config.
func NewLockService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, clock timex.Clock,
	logger logging.Logger, mx *metrics.Metrics) *LockService {
	return &LockService{
		db:            db,
		repomanager:   m,
		clock:         clock,
		programID:     cfg.ProgramID,
		faucetEnabled: cfg.FaucetEnabled,
		logger:        logger.With("module", "lock"),
		metrics:       mx,
	}
}

// Deposit opens or extends the caller's lock position, records the deposit
// in the owner statistics and moves the tokens into escrow.
func (s *LockService) Deposit(ctx context.Context, caller pubkey.Address, req DepositRequest) (res *DepositResult, err error) {
	defer func() { s.observe(ctx, OpDeposit, err) }()

	if err := registry.ValidateDeposit(req.Amount, req.Duration); err != nil {
		return nil, err
	}
	if caller != req.Owner {
		return nil, common.ErrUnauthorizedAccess
	}
	authority, err := custody.Derive(s.programID, req.Owner, req.Asset)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()

	err = dbx.WithTx(ctx, s.db, dbx.ReadCommitted, func(ctx context.Context, tx dbx.DBTX) error {
		positionsRepo := s.repomanager.Positions(tx)
		initial := registry.NewPosition(req.Owner, req.Asset, req.EarlyWithdrawalAllowed, authority.Nonce)
		if err := positionsRepo.Provision(ctx, initial); err != nil {
			return fmt.Errorf("provision position: %w", err)
		}
		pos, err := positionsRepo.GetForUpdate(ctx, req.Owner, req.Asset)
		if err != nil {
			return fmt.Errorf("load position: %w", err)
		}

		next, err := registry.OpenOrExtend(pos, registry.Deposit{
			Caller:                 caller,
			Owner:                  req.Owner,
			Asset:                  req.Asset,
			Amount:                 req.Amount,
			Duration:               req.Duration,
			EarlyWithdrawalAllowed: req.EarlyWithdrawalAllowed,
		}, pos.CustodyNonce, now)
		if err != nil {
			return err
		}

		statsRepo := s.repomanager.UserStats(tx)
		stats, err := statsRepo.GetForUpdate(ctx, req.Owner)
		if err != nil {
			return fmt.Errorf("load user stats: %w", err)
		}
		nextStats, err := userledger.RecordDeposit(stats, req.Owner, req.Amount, now)
		if err != nil {
			return err
		}

		if err := positionsRepo.Update(ctx, next); err != nil {
			return fmt.Errorf("update position: %w", err)
		}
		if err := statsRepo.Save(ctx, nextStats); err != nil {
			return fmt.Errorf("save user stats: %w", err)
		}

		program := token.New(s.repomanager.Holdings(tx))
		escrow, err := program.Provision(ctx, authority.Address, req.Asset)
		if err != nil {
			return err
		}
		source, err := token.AssociatedHolding(req.Owner, req.Asset)
		if err != nil {
			return err
		}
		if err := program.Transfer(ctx, source, escrow, req.Asset, req.Amount, token.Wallet(caller)); err != nil {
			return fmt.Errorf("transfer to escrow: %w", err)
		}

		res = &DepositResult{Position: next, Stats: nextStats, Escrow: escrow}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.LockedTokens.Add(float64(req.Amount))
	s.logger.Info(ctx, "deposit accepted",
		"owner", req.Owner.String(), "asset", req.Asset.String(),
		"amount", req.Amount, "lock_end", res.Position.LockEnd)
	return res, nil
}

// WithdrawMature pays the whole escrowed amount back to the owner once the
// lock window has passed.
func (s *LockService) WithdrawMature(ctx context.Context, caller, owner, asset pubkey.Address) (res *WithdrawResult, err error) {
	defer func() { s.observe(ctx, OpWithdrawMature, err) }()

	if caller != owner {
		return nil, common.ErrUnauthorizedAccess
	}
	now := s.clock.Now()

	err = dbx.WithTx(ctx, s.db, dbx.ReadCommitted, func(ctx context.Context, tx dbx.DBTX) error {
		positionsRepo := s.repomanager.Positions(tx)
		pos, err := lockPosition(ctx, positionsRepo, owner, asset)
		if err != nil {
			return err
		}
		next, payout, err := registry.CloseForFullWithdrawal(pos, caller, now)
		if err != nil {
			return err
		}

		authority, err := custody.Rebuild(s.programID, pos.Owner, pos.Asset, pos.CustodyNonce)
		if err != nil {
			return err
		}
		program := token.New(s.repomanager.Holdings(tx))
		escrow, err := token.AssociatedHolding(authority.Address, asset)
		if err != nil {
			return err
		}
		destination, err := program.Provision(ctx, pos.Owner, asset)
		if err != nil {
			return err
		}
		if err := program.Transfer(ctx, escrow, destination, asset, payout, authority); err != nil {
			return fmt.Errorf("transfer from escrow: %w", err)
		}

		if err := positionsRepo.Update(ctx, next); err != nil {
			return fmt.Errorf("update position: %w", err)
		}
		res = &WithdrawResult{Position: next, Payout: payout}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.ReleasedTokens.Add(float64(res.Payout))
	s.logger.Info(ctx, "mature withdrawal",
		"owner", owner.String(), "asset", asset.String(), "payout", res.Payout)
	return res, nil
}

// WithdrawEarly closes the position before maturity: the penalty share is
// burned from escrow and the rest is paid to the owner. Only positions
// opened with early withdrawal allowed qualify.
func (s *LockService) WithdrawEarly(ctx context.Context, caller, owner, asset pubkey.Address) (res *WithdrawResult, err error) {
	defer func() { s.observe(ctx, OpWithdrawEarly, err) }()

	if caller != owner {
		return nil, common.ErrUnauthorizedAccess
	}

	err = dbx.WithTx(ctx, s.db, dbx.ReadCommitted, func(ctx context.Context, tx dbx.DBTX) error {
		positionsRepo := s.repomanager.Positions(tx)
		pos, err := lockPosition(ctx, positionsRepo, owner, asset)
		if err != nil {
			return err
		}
		next, payout, penalty, err := registry.CloseForEarlyWithdrawal(pos, caller)
		if err != nil {
			return err
		}

		authority, err := custody.Rebuild(s.programID, pos.Owner, pos.Asset, pos.CustodyNonce)
		if err != nil {
			return err
		}
		program := token.New(s.repomanager.Holdings(tx))
		escrow, err := token.AssociatedHolding(authority.Address, asset)
		if err != nil {
			return err
		}
		if err := program.Burn(ctx, escrow, asset, penalty, authority); err != nil {
			return fmt.Errorf("burn penalty: %w", err)
		}
		destination, err := program.Provision(ctx, pos.Owner, asset)
		if err != nil {
			return err
		}
		if err := program.Transfer(ctx, escrow, destination, asset, payout, authority); err != nil {
			return fmt.Errorf("transfer from escrow: %w", err)
		}

		if err := positionsRepo.Update(ctx, next); err != nil {
			return fmt.Errorf("update position: %w", err)
		}
		res = &WithdrawResult{Position: next, Payout: payout, Penalty: penalty}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.ReleasedTokens.Add(float64(res.Payout))
	s.metrics.BurnedTokens.Add(float64(res.Penalty))
	s.logger.Info(ctx, "early withdrawal",
		"owner", owner.String(), "asset", asset.String(), "payout", res.Payout, "penalty", res.Penalty)
	return res, nil
}

// GetPosition returns the stored lock position of (owner, asset).
func (s *LockService) GetPosition(ctx context.Context, owner, asset pubkey.Address) (*models.LockPosition, error) {
	pos, err := s.repomanager.Positions(s.db).Get(ctx, owner, asset)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrPositionNotFound
	}
	if err != nil {
		return nil, err
	}
	return pos, nil
}

// GetUserStats returns the owner's deposit statistics. An owner that never
// deposited gets zeroed statistics.
func (s *LockService) GetUserStats(ctx context.Context, owner pubkey.Address) (*models.UserStats, error) {
	stats, err := s.repomanager.UserStats(s.db).Get(ctx, owner)
	if errors.Is(err, common.ErrorNotFound) {
		return &models.UserStats{Owner: owner}, nil
	}
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// Custody derives the custody authority and escrow holding of
// (owner, asset). EscrowBalance is zero while the escrow was never funded.
func (s *LockService) Custody(ctx context.Context, owner, asset pubkey.Address) (*CustodyInfo, error) {
	authority, err := custody.Derive(s.programID, owner, asset)
	if err != nil {
		return nil, err
	}
	escrow, err := token.AssociatedHolding(authority.Address, asset)
	if err != nil {
		return nil, err
	}
	balance, err := token.New(s.repomanager.Holdings(s.db)).Balance(ctx, escrow)
	if err != nil && !errors.Is(err, common.ErrHoldingNotFound) {
		return nil, err
	}
	return &CustodyInfo{Authority: authority, Escrow: escrow, EscrowBalance: balance}, nil
}

// Faucet mints amount of asset into the caller's associated holding and
// returns the holding address with its new balance. Development only.
func (s *LockService) Faucet(ctx context.Context, caller, asset pubkey.Address, amount uint64) (holding pubkey.Address, balance uint64, err error) {
	defer func() { s.observe(ctx, OpFaucet, err) }()

	if !s.faucetEnabled {
		return pubkey.Address{}, 0, common.ErrFaucetDisabled
	}
	if amount == 0 {
		return pubkey.Address{}, 0, common.ErrInvalidAmount
	}

	err = dbx.WithTx(ctx, s.db, dbx.ReadCommitted, func(ctx context.Context, tx dbx.DBTX) error {
		program := token.New(s.repomanager.Holdings(tx))
		addr, err := program.Provision(ctx, caller, asset)
		if err != nil {
			return err
		}
		if err := program.Mint(ctx, addr, asset, amount); err != nil {
			return fmt.Errorf("mint: %w", err)
		}
		holding = addr
		balance, err = program.Balance(ctx, addr)
		return err
	})
	if err != nil {
		return pubkey.Address{}, 0, err
	}
	return holding, balance, nil
}

func lockPosition(ctx context.Context, repo positions.Repository, owner, asset pubkey.Address) (*models.LockPosition, error) {
	pos, err := repo.GetForUpdate(ctx, owner, asset)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load position: %w", err)
	}
	return pos, nil
}

// rejections are caller mistakes rather than failures of the service.
var rejections = []error{
	common.ErrInvalidAmount,
	common.ErrLockDurationTooShort,
	common.ErrLockDurationTooLong,
	common.ErrLockNotExpired,
	common.ErrAlreadyWithdrawn,
	common.ErrUnauthorizedAccess,
	common.ErrPositionNotFound,
	common.ErrFaucetDisabled,
	common.ErrInsufficientFunds,
	common.ErrHoldingNotFound,
	common.ErrOwnerMismatch,
	common.ErrInvalidSigner,
	common.ErrAssetMismatch,
	common.ErrOverflow,
}

// IsRejection reports whether err is a domain rejection.
func IsRejection(err error) bool {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}

func (s *LockService) observe(ctx context.Context, op string, err error) {
	switch {
	case err == nil:
		s.metrics.Observe(op, metrics.OutcomeOK)
	case IsRejection(err):
		s.metrics.Observe(op, metrics.OutcomeRejected)
		s.logger.Debug(ctx, "transition rejected", "op", op, "error", err)
	default:
		s.metrics.Observe(op, metrics.OutcomeError)
		s.logger.Error(ctx, "transition failed", "op", op, "error", err)
	}
}
