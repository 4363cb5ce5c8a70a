package pubkey

import (
	"bytes"
	"crypto/ed25519"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var program = MustParse(strings.Repeat("7f", Size))

func TestFindProgramAddress_Deterministic(t *testing.T) {
	seeds := [][]byte{[]byte("token_locker"), bytes.Repeat([]byte{1}, 32)}

	a1, n1, err := FindProgramAddress(seeds, program)
	require.NoError(t, err)
	a2, n2, err := FindProgramAddress(seeds, program)
	require.NoError(t, err)

	assert.Equal(t, a1, a2)
	assert.Equal(t, n1, n2)
	assert.False(t, IsOnCurve(a1))

	again, err := CreateProgramAddress(seeds, n1, program)
	require.NoError(t, err)
	assert.Equal(t, a1, again)
}

func TestFindProgramAddress_DistinctInputs(t *testing.T) {
	base := [][]byte{[]byte("token_locker"), bytes.Repeat([]byte{1}, 32)}
	other := [][]byte{[]byte("token_locker"), bytes.Repeat([]byte{2}, 32)}
	otherProgram := MustParse(strings.Repeat("6e", Size))

	a, _, err := FindProgramAddress(base, program)
	require.NoError(t, err)
	b, _, err := FindProgramAddress(other, program)
	require.NoError(t, err)
	c, _, err := FindProgramAddress(base, otherProgram)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestCreateProgramAddress_SeedLimits(t *testing.T) {
	_, err := CreateProgramAddress([][]byte{make([]byte, MaxSeedLen+1)}, 255, program)
	assert.ErrorIs(t, err, ErrSeedTooLong)

	many := make([][]byte, MaxSeeds)
	_, err = CreateProgramAddress(many, 255, program)
	assert.ErrorIs(t, err, ErrSeedTooLong)
}

func TestIsOnCurve_WalletKeys(t *testing.T) {
	for i := 0; i < 8; i++ {
		pk, _, err := ed25519.GenerateKey(nil)
		require.NoError(t, err)
		a, err := FromPublicKey(pk)
		require.NoError(t, err)
		assert.True(t, IsOnCurve(a), "ed25519 public keys are curve points")
	}
}
