// Package custody derives the keyless signing authority that owns each
// escrow holding. The authority is a program address derived from
// (owner, asset); anybody who knows the inputs can recompute it, and nobody
// holds a private key for it. The derivation inputs double as the proof the
// token program checks instead of a signature.
package custody

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tokenlocker/internal/common"
	"github.com/dmitrijs2005/tokenlocker/internal/pubkey"
)

var ErrInvalidProof = errors.New("custody proof does not match authority")

// Authority is a derived custody identity plus its proof material.
type Authority struct {
	Program pubkey.Address
	Owner   pubkey.Address
	Asset   pubkey.Address
	Address pubkey.Address
	Nonce   uint8
}

func seeds(owner, asset pubkey.Address) [][]byte {
	return [][]byte{common.LockerSeed, owner.Bytes(), asset.Bytes()}
}

// Derive finds the canonical custody authority for (owner, asset) under
// program. The returned Nonce is stored on the lock position.
func Derive(program, owner, asset pubkey.Address) (Authority, error) {
	addr, nonce, err := pubkey.FindProgramAddress(seeds(owner, asset), program)
	if err != nil {
		return Authority{}, fmt.Errorf("derive custody authority: %w", err)
	}
	return Authority{Program: program, Owner: owner, Asset: asset, Address: addr, Nonce: nonce}, nil
}

// Rebuild recreates the authority from a stored nonce without searching.
func Rebuild(program, owner, asset pubkey.Address, nonce uint8) (Authority, error) {
	addr, err := pubkey.CreateProgramAddress(seeds(owner, asset), nonce, program)
	if err != nil {
		return Authority{}, fmt.Errorf("rebuild custody authority: %w", err)
	}
	return Authority{Program: program, Owner: owner, Asset: asset, Address: addr, Nonce: nonce}, nil
}

// Key is the address the authority signs as.
func (a Authority) Key() pubkey.Address { return a.Address }

// Verify re-derives the address from the proof material. A forged
// Authority with a swapped Address, owner or asset fails here.
func (a Authority) Verify() error {
	addr, err := pubkey.CreateProgramAddress(seeds(a.Owner, a.Asset), a.Nonce, a.Program)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProof, err)
	}
	if addr != a.Address {
		return ErrInvalidProof
	}
	return nil
}
