// Package token is the fungible-token program the vault calls into: holding
// provisioning, authorized transfers and burns over a holdings repository.
// Running it on the caller's transaction handle makes every transfer part
// of the enclosing lock transition.
package token

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/bits"

	"github.com/dmitrijs2005/tokenlocker/internal/common"
	"github.com/dmitrijs2005/tokenlocker/internal/pubkey"
	"github.com/dmitrijs2005/tokenlocker/internal/server/models"
)

// AssociatedProgramID namespaces associated holding addresses.
var AssociatedProgramID = pubkey.MustParse("8c97258f4e2489f1bb3d1029148e0d830b5a1399daff1084048e7bd8dbe9f859")

// Signer authorizes moving funds out of holdings whose authority is Key.
type Signer interface {
	Key() pubkey.Address
	Verify() error
}

// Wallet is a signer whose identity was already authenticated by the
// transport (the access token subject).
type Wallet pubkey.Address

func (w Wallet) Key() pubkey.Address { return pubkey.Address(w) }

func (w Wallet) Verify() error {
	if pubkey.Address(w).IsZero() {
		return common.ErrInvalidSigner
	}
	return nil
}

// Repository persists holdings. GetForUpdate must lock the row until the
// surrounding transaction ends.
type Repository interface {
	Provision(ctx context.Context, h *models.Holding) error
	Get(ctx context.Context, address pubkey.Address) (*models.Holding, error)
	GetForUpdate(ctx context.Context, address pubkey.Address) (*models.Holding, error)
	SetBalance(ctx context.Context, address pubkey.Address, balance uint64) error
}

// Program executes token instructions against a Repository.
type Program struct {
	repo Repository
}

func New(repo Repository) *Program {
	return &Program{repo: repo}
}

// AssociatedHolding is the canonical holding address of authority for asset.
func AssociatedHolding(authority, asset pubkey.Address) (pubkey.Address, error) {
	addr, _, err := pubkey.FindProgramAddress([][]byte{authority.Bytes(), asset.Bytes()}, AssociatedProgramID)
	return addr, err
}

// Provision creates the associated holding of authority for asset if it is
// missing and returns its address. Existing holdings are left untouched.
func (p *Program) Provision(ctx context.Context, authority, asset pubkey.Address) (pubkey.Address, error) {
	addr, err := AssociatedHolding(authority, asset)
	if err != nil {
		return pubkey.Address{}, fmt.Errorf("derive holding: %w", err)
	}
	if err := p.repo.Provision(ctx, &models.Holding{Address: addr, Asset: asset, Authority: authority}); err != nil {
		return pubkey.Address{}, fmt.Errorf("provision holding: %w", err)
	}
	return addr, nil
}

// Balance returns the holding balance.
func (p *Program) Balance(ctx context.Context, holding pubkey.Address) (uint64, error) {
	h, err := p.get(ctx, holding, false)
	if err != nil {
		return 0, err
	}
	return h.Balance, nil
}

// Transfer moves amount of asset from one holding to another. signer must
// verify and be the authority of from.
func (p *Program) Transfer(ctx context.Context, from, to, asset pubkey.Address, amount uint64, signer Signer) error {
	if err := verify(signer); err != nil {
		return err
	}

	// Lock in address order so concurrent transfers cannot deadlock.
	first, second := from, to
	if bytes.Compare(to[:], from[:]) < 0 {
		first, second = to, from
	}
	a, err := p.get(ctx, first, true)
	if err != nil {
		return err
	}
	b := a
	if second != first {
		if b, err = p.get(ctx, second, true); err != nil {
			return err
		}
	}
	src, dst := a, b
	if src.Address != from {
		src, dst = b, a
	}

	if src.Authority != signer.Key() {
		return common.ErrOwnerMismatch
	}
	if src.Asset != asset || dst.Asset != asset {
		return common.ErrAssetMismatch
	}
	if src.Balance < amount {
		return fmt.Errorf("%w: have %d, need %d", common.ErrInsufficientFunds, src.Balance, amount)
	}
	if from == to || amount == 0 {
		return nil
	}
	sum, carry := bits.Add64(dst.Balance, amount, 0)
	if carry != 0 {
		return common.ErrOverflow
	}

	if err := p.repo.SetBalance(ctx, from, src.Balance-amount); err != nil {
		return fmt.Errorf("debit %s: %w", from, err)
	}
	if err := p.repo.SetBalance(ctx, to, sum); err != nil {
		return fmt.Errorf("credit %s: %w", to, err)
	}
	return nil
}

// Burn destroys amount of asset held in holding. Burning zero is a no-op
// that still checks authorization.
func (p *Program) Burn(ctx context.Context, holding, asset pubkey.Address, amount uint64, signer Signer) error {
	if err := verify(signer); err != nil {
		return err
	}
	h, err := p.get(ctx, holding, true)
	if err != nil {
		return err
	}
	if h.Authority != signer.Key() {
		return common.ErrOwnerMismatch
	}
	if h.Asset != asset {
		return common.ErrAssetMismatch
	}
	if h.Balance < amount {
		return fmt.Errorf("%w: have %d, need %d", common.ErrInsufficientFunds, h.Balance, amount)
	}
	if amount == 0 {
		return nil
	}
	if err := p.repo.SetBalance(ctx, holding, h.Balance-amount); err != nil {
		return fmt.Errorf("burn from %s: %w", holding, err)
	}
	return nil
}

// Mint credits amount to holding. Only the development faucet mints.
func (p *Program) Mint(ctx context.Context, holding, asset pubkey.Address, amount uint64) error {
	h, err := p.get(ctx, holding, true)
	if err != nil {
		return err
	}
	if h.Asset != asset {
		return common.ErrAssetMismatch
	}
	sum, carry := bits.Add64(h.Balance, amount, 0)
	if carry != 0 {
		return common.ErrOverflow
	}
	return p.repo.SetBalance(ctx, holding, sum)
}

func (p *Program) get(ctx context.Context, addr pubkey.Address, forUpdate bool) (*models.Holding, error) {
	var (
		h   *models.Holding
		err error
	)
	if forUpdate {
		h, err = p.repo.GetForUpdate(ctx, addr)
	} else {
		h, err = p.repo.Get(ctx, addr)
	}
	if errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("%w: %s", common.ErrHoldingNotFound, addr)
	}
	if err != nil {
		return nil, err
	}
	return h, nil
}

func verify(s Signer) error {
	if s == nil {
		return common.ErrInvalidSigner
	}
	if err := s.Verify(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidSigner, err)
	}
	return nil
}
