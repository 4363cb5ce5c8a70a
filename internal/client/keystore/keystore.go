// Package keystore keeps the wallet's ed25519 key on disk, sealed under a
// passphrase.
package keystore

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/tokenlocker/internal/cryptox"
	"github.com/dmitrijs2005/tokenlocker/internal/filex"
	"github.com/dmitrijs2005/tokenlocker/internal/pubkey"
)

const version = 1

var (
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted key file")
	ErrExists          = errors.New("key file already exists")
)

// File is the on-disk layout. Address is stored in clear so the wallet can
// be identified without the passphrase.
type File struct {
	Version    int            `json:"version"`
	Address    pubkey.Address `json:"address"`
	Salt       []byte         `json:"salt"`
	Nonce      []byte         `json:"nonce"`
	Ciphertext []byte         `json:"ciphertext"`
}

// Generate creates a new wallet key.
func Generate() (ed25519.PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return priv, nil
}

// Address returns the wallet address of key.
func Address(key ed25519.PrivateKey) pubkey.Address {
	a, _ := pubkey.FromPublicKey(key.Public().(ed25519.PublicKey))
	return a
}

// Save seals key under passphrase and writes it to path. An existing file
// is never overwritten.
func Save(path string, key ed25519.PrivateKey, passphrase []byte) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrExists, path)
	}

	salt, err := cryptox.RandomBytes(cryptox.SaltSize)
	if err != nil {
		return err
	}
	ct, nonce, err := cryptox.Seal(key.Seed(), cryptox.DeriveMasterKey(passphrase, salt))
	if err != nil {
		return fmt.Errorf("seal key: %w", err)
	}

	data, err := json.MarshalIndent(File{
		Version:    version,
		Address:    Address(key),
		Salt:       salt,
		Nonce:      nonce,
		Ciphertext: ct,
	}, "", "  ")
	if err != nil {
		return err
	}
	return filex.WritePrivate(path, data)
}

// Peek reads the wallet address without unsealing the key.
func Peek(path string) (pubkey.Address, error) {
	f, err := read(path)
	if err != nil {
		return pubkey.Address{}, err
	}
	return f.Address, nil
}

// Load reads and unseals the key at path.
func Load(path string, passphrase []byte) (ed25519.PrivateKey, error) {
	f, err := read(path)
	if err != nil {
		return nil, err
	}

	seed, err := cryptox.Open(f.Ciphertext, f.Nonce, cryptox.DeriveMasterKey(passphrase, f.Salt))
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	if len(seed) != ed25519.SeedSize {
		return nil, ErrWrongPassphrase
	}

	key := ed25519.NewKeyFromSeed(seed)
	if Address(key) != f.Address {
		return nil, ErrWrongPassphrase
	}
	return key, nil
}

func read(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f := &File{}
	if err := json.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parse key file: %w", err)
	}
	if f.Version != version {
		return nil, fmt.Errorf("unsupported key file version %d", f.Version)
	}
	return f, nil
}
