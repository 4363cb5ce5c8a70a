package userledger

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/tokenlocker/internal/common"
	"github.com/dmitrijs2005/tokenlocker/internal/pubkey"
	"github.com/dmitrijs2005/tokenlocker/internal/server/models"
)

var owner = pubkey.MustParse(strings.Repeat("aa", pubkey.Size))

func TestRecordDeposit_FirstDeposit(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	got, err := RecordDeposit(nil, owner, 500, now)
	require.NoError(t, err)
	assert.Equal(t, &models.UserStats{
		Owner:              owner,
		TotalDepositsCount: 1,
		TotalLockedVolume:  500,
		LastActivityTime:   now.Unix(),
	}, got)
}

func TestRecordDeposit_Accumulates(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	var stats *models.UserStats
	for i, amount := range []uint64{500, 300, 1} {
		next, err := RecordDeposit(stats, owner, amount, now.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
		stats = next
	}

	assert.Equal(t, uint64(3), stats.TotalDepositsCount)
	assert.Equal(t, uint64(801), stats.TotalLockedVolume)
	assert.Equal(t, now.Add(2*time.Minute).Unix(), stats.LastActivityTime)
}

func TestRecordDeposit_DoesNotMutateInput(t *testing.T) {
	in := &models.UserStats{Owner: owner, TotalDepositsCount: 2, TotalLockedVolume: 10}

	_, err := RecordDeposit(in, owner, 5, time.Now())
	require.NoError(t, err)
	assert.Equal(t, uint64(2), in.TotalDepositsCount)
	assert.Equal(t, uint64(10), in.TotalLockedVolume)
}

func TestRecordDeposit_VolumeOverflow(t *testing.T) {
	in := &models.UserStats{Owner: owner, TotalDepositsCount: 1, TotalLockedVolume: math.MaxUint64}

	_, err := RecordDeposit(in, owner, 1, time.Now())
	assert.ErrorIs(t, err, common.ErrInvalidAmount)
}

func TestRecordDeposit_WrongOwner(t *testing.T) {
	other := pubkey.MustParse(strings.Repeat("bb", pubkey.Size))
	in := &models.UserStats{Owner: other}

	_, err := RecordDeposit(in, owner, 1, time.Now())
	assert.ErrorIs(t, err, common.ErrUnauthorizedAccess)
}
