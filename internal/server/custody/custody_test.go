package custody

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/tokenlocker/internal/pubkey"
)

var (
	program = pubkey.MustParse(strings.Repeat("01", pubkey.Size))
	owner   = pubkey.MustParse(strings.Repeat("02", pubkey.Size))
	asset   = pubkey.MustParse(strings.Repeat("03", pubkey.Size))
)

func TestDerive_IsReproducible(t *testing.T) {
	a, err := Derive(program, owner, asset)
	require.NoError(t, err)
	b, err := Derive(program, owner, asset)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, a.Address, a.Key())
	assert.False(t, pubkey.IsOnCurve(a.Address))
	assert.NoError(t, a.Verify())
}

func TestDerive_DistinctPairs(t *testing.T) {
	other := pubkey.MustParse(strings.Repeat("04", pubkey.Size))

	base, err := Derive(program, owner, asset)
	require.NoError(t, err)
	swapped, err := Derive(program, asset, owner)
	require.NoError(t, err)
	otherAsset, err := Derive(program, owner, other)
	require.NoError(t, err)

	assert.NotEqual(t, base.Address, swapped.Address)
	assert.NotEqual(t, base.Address, otherAsset.Address)
}

func TestRebuild_MatchesDerive(t *testing.T) {
	a, err := Derive(program, owner, asset)
	require.NoError(t, err)

	r, err := Rebuild(program, owner, asset, a.Nonce)
	require.NoError(t, err)
	assert.Equal(t, a, r)
}

func TestVerify_RejectsForgery(t *testing.T) {
	a, err := Derive(program, owner, asset)
	require.NoError(t, err)

	forgedAddr := a
	forgedAddr.Address = owner
	assert.ErrorIs(t, forgedAddr.Verify(), ErrInvalidProof)

	forgedOwner := a
	forgedOwner.Owner = asset
	assert.ErrorIs(t, forgedOwner.Verify(), ErrInvalidProof)

	forgedProgram := a
	forgedProgram.Program = owner
	assert.ErrorIs(t, forgedProgram.Verify(), ErrInvalidProof)
}
