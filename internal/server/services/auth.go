package services

import (
	"context"
	"crypto/ed25519"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/tokenlocker/internal/common"
	"github.com/dmitrijs2005/tokenlocker/internal/pubkey"
	"github.com/dmitrijs2005/tokenlocker/internal/server/auth"
	"github.com/dmitrijs2005/tokenlocker/internal/server/config"
	"github.com/dmitrijs2005/tokenlocker/internal/timex"
)

// acceptedSweepSize is how many owners the replay guard tracks before it
// drops entries that have aged out of the clock skew window.
const acceptedSweepSize = 1024

// AuthService exchanges a signed wallet challenge for an access token.
// Wallet addresses are ed25519 public keys, so the signature proves the
// caller holds the key of the address it claims.
type AuthService struct {
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	maxClockSkew                time.Duration
	clock                       timex.Clock

	mu       sync.Mutex
	accepted map[pubkey.Address]int64 // newest accepted challenge per owner
}

// NewAuthService constructs an AuthService from server config.
func NewAuthService(cfg *config.Config, clock timex.Clock) *AuthService {
	return &AuthService{
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		maxClockSkew:                cfg.AuthMaxClockSkew,
		clock:                       clock,
		accepted:                    make(map[pubkey.Address]int64),
	}
}

// Authenticate verifies signature over common.AuthChallenge(owner, timestamp)
// and returns an access token for owner. timestamp is unix milliseconds.
// Stale, future-dated or already used challenges and bad signatures yield
// common.ErrorUnauthorized.
//
// Each challenge buys one token: a challenge not newer than the last one
// accepted for the owner is refused. The guard is per process.
func (s *AuthService) Authenticate(ctx context.Context, owner pubkey.Address, timestamp int64, signature []byte) (string, error) {
	if owner.IsZero() || len(signature) != ed25519.SignatureSize {
		return "", common.ErrorUnauthorized
	}

	now := s.clock.Now()
	skew := now.Sub(time.UnixMilli(timestamp))
	if skew < 0 {
		skew = -skew
	}
	if skew > s.maxClockSkew {
		return "", common.ErrorUnauthorized
	}

	if !ed25519.Verify(owner.PublicKey(), common.AuthChallenge(owner.String(), timestamp), signature) {
		return "", common.ErrorUnauthorized
	}
	if !s.accept(owner, timestamp, now) {
		return "", fmt.Errorf("%w: challenge already used", common.ErrorUnauthorized)
	}

	token, err := auth.GenerateToken(owner, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// accept records timestamp as the newest challenge of owner and reports
// whether it was newer than the previous one.
func (s *AuthService) accept(owner pubkey.Address, timestamp int64, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if last, ok := s.accepted[owner]; ok && timestamp <= last {
		return false
	}
	s.accepted[owner] = timestamp

	if len(s.accepted) > acceptedSweepSize {
		// Older entries would fail the skew check anyway.
		horizon := now.Add(-s.maxClockSkew).UnixMilli()
		for o, ts := range s.accepted {
			if ts < horizon {
				delete(s.accepted, o)
			}
		}
	}
	return true
}

// Owner resolves an access token to the wallet address it was issued for.
func (s *AuthService) Owner(accessToken string) (pubkey.Address, error) {
	return auth.OwnerFromToken(accessToken, s.jwtSecret)
}
