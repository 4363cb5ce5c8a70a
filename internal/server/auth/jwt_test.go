package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/tokenlocker/internal/common"
	"github.com/dmitrijs2005/tokenlocker/internal/pubkey"
)

var owner = pubkey.MustParse(strings.Repeat("ab", pubkey.Size))

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := GenerateToken(owner, secret, time.Hour)
	require.NoError(t, err)

	got, err := OwnerFromToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, owner, got)
}

func TestOwnerFromToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, err := GenerateToken(owner, secret, -1*time.Second)
	require.NoError(t, err)

	_, err = OwnerFromToken(tok, secret)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestOwnerFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken(owner, []byte("right-secret"), time.Hour)
	require.NoError(t, err)

	_, err = OwnerFromToken(tok, []byte("wrong-secret"))
	assert.Error(t, err)
}

func TestOwnerFromToken_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := OwnerFromToken("not.a.jwt", []byte("k"))
	assert.Error(t, err)
}

func TestOwnerFromToken_BadSubject(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(secret)
	require.NoError(t, err)

	_, err = OwnerFromToken(tok, secret)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestOwnerFromToken_RejectsNoneAlg(t *testing.T) {
	t.Parallel()

	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:  issuer,
		Subject: owner.String(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = OwnerFromToken(tok, []byte("k"))
	assert.Error(t, err)
}
