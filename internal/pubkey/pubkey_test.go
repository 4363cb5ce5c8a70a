package pubkey

import (
	"crypto/ed25519"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	valid := strings.Repeat("ab", Size)

	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "valid", in: valid},
		{name: "not hex", in: strings.Repeat("zz", Size), wantErr: true},
		{name: "short", in: "abcd", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Parse(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAddress)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.in, a.String())
		})
	}
}

func TestFromPublicKey(t *testing.T) {
	pk, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	a, err := FromPublicKey(pk)
	require.NoError(t, err)
	assert.Equal(t, []byte(pk), a.Bytes())
	assert.Equal(t, pk, a.PublicKey())

	_, err = FromPublicKey(pk[:10])
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestFromBytes(t *testing.T) {
	raw := []byte(strings.Repeat("x", Size))

	a, err := FromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, a.Bytes())

	raw[0] = 'y'
	assert.Equal(t, byte('x'), a[0], "address must not alias the input")

	for _, in := range [][]byte{nil, raw[:Size-1], append(raw, 0)} {
		_, err := FromBytes(in)
		assert.ErrorIs(t, err, ErrInvalidAddress)
	}
}

func TestJSONRoundTripUsesHex(t *testing.T) {
	a := MustParse(strings.Repeat("01", Size))

	b, err := json.Marshal(struct{ Owner Address }{a})
	require.NoError(t, err)
	assert.Contains(t, string(b), a.String())

	var out struct{ Owner Address }
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, a, out.Owner)
}

func TestScanAndValue(t *testing.T) {
	a := MustParse(strings.Repeat("02", Size))

	v, err := a.Value()
	require.NoError(t, err)
	assert.Equal(t, a.String(), v)

	var fromString, fromBytes Address
	require.NoError(t, fromString.Scan(a.String()))
	require.NoError(t, fromBytes.Scan([]byte(a.String())))
	assert.Equal(t, a, fromString)
	assert.Equal(t, a, fromBytes)

	var bad Address
	assert.Error(t, bad.Scan(42))
}

func TestIsZero(t *testing.T) {
	assert.True(t, Zero.IsZero())
	assert.False(t, MustParse(strings.Repeat("03", Size)).IsZero())
}
