// Package pubkey defines the 32-byte address type shared by owners, assets,
// custody authorities and token holdings.
package pubkey

import (
	"crypto/ed25519"
	"database/sql/driver"
	"encoding/hex"
	"errors"
	"fmt"
)

// Size is the byte length of an Address.
const Size = 32

var ErrInvalidAddress = errors.New("invalid address")

// Address identifies an account. Wallet addresses are ed25519 public keys;
// vault-derived addresses are deliberately off the curve.
type Address [Size]byte

// Zero is the unset address.
var Zero Address

// Parse decodes a hex-encoded address.
func Parse(s string) (Address, error) {
	var a Address
	b, err := hex.DecodeString(s)
	if err != nil {
		return a, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return FromBytes(b)
}

// FromBytes copies a raw 32-byte address.
func FromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != Size {
		return a, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidAddress, Size, len(b))
	}
	copy(a[:], b)
	return a, nil
}

// MustParse is Parse for constants and tests.
func MustParse(s string) Address {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// FromPublicKey converts an ed25519 public key into an Address.
func FromPublicKey(pk ed25519.PublicKey) (Address, error) {
	var a Address
	if len(pk) != ed25519.PublicKeySize {
		return a, ErrInvalidAddress
	}
	copy(a[:], pk)
	return a, nil
}

func (a Address) String() string { return hex.EncodeToString(a[:]) }

func (a Address) Bytes() []byte { return a[:] }

func (a Address) IsZero() bool { return a == Zero }

// PublicKey returns the address as an ed25519 public key.
func (a Address) PublicKey() ed25519.PublicKey { return ed25519.PublicKey(a[:]) }

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(b []byte) error {
	p, err := Parse(string(b))
	if err != nil {
		return err
	}
	*a = p
	return nil
}

// Value stores addresses as lowercase hex text.
func (a Address) Value() (driver.Value, error) {
	return a.String(), nil
}

func (a *Address) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return a.UnmarshalText([]byte(v))
	case []byte:
		return a.UnmarshalText(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidAddress, src)
	}
}
