package pubkey

import (
	"crypto/sha256"
	"errors"

	"filippo.io/edwards25519"
)

const (
	// MaxSeeds and MaxSeedLen bound derivation input.
	MaxSeeds   = 16
	MaxSeedLen = 32

	pdaMarker = "ProgramDerivedAddress"
)

var (
	ErrOnCurve       = errors.New("derived address lies on the ed25519 curve")
	ErrSeedTooLong   = errors.New("derivation seed too long")
	ErrNoViableNonce = errors.New("no viable derivation nonce")
)

// CreateProgramAddress hashes seeds, the nonce and the program id into an
// address. Results that decode as an ed25519 point are rejected: such an
// address could have a private key, a program-owned one must not.
func CreateProgramAddress(seeds [][]byte, nonce uint8, program Address) (Address, error) {
	var a Address
	if len(seeds) >= MaxSeeds {
		return a, ErrSeedTooLong
	}

	h := sha256.New()
	for _, s := range seeds {
		if len(s) > MaxSeedLen {
			return a, ErrSeedTooLong
		}
		h.Write(s)
	}
	h.Write([]byte{nonce})
	h.Write(program[:])
	h.Write([]byte(pdaMarker))
	copy(a[:], h.Sum(nil))

	if IsOnCurve(a) {
		return Address{}, ErrOnCurve
	}
	return a, nil
}

// FindProgramAddress searches nonces from 255 downward and returns the
// first off-curve address with its nonce.
func FindProgramAddress(seeds [][]byte, program Address) (Address, uint8, error) {
	for n := 255; n >= 0; n-- {
		a, err := CreateProgramAddress(seeds, uint8(n), program)
		if err == nil {
			return a, uint8(n), nil
		}
		if !errors.Is(err, ErrOnCurve) {
			return Address{}, 0, err
		}
	}
	return Address{}, 0, ErrNoViableNonce
}

// IsOnCurve reports whether a is a valid compressed ed25519 point.
func IsOnCurve(a Address) bool {
	_, err := new(edwards25519.Point).SetBytes(a[:])
	return err == nil
}
