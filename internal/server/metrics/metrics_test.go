package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New()
	m.Register(reg)

	m.Observe("deposit", OutcomeOK)
	m.LockedTokens.Add(500)
	m.ReleasedTokens.Add(400)
	m.BurnedTokens.Add(100)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, mfs, 4)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.Transitions.WithLabelValues("deposit", OutcomeOK)))
	assert.Equal(t, float64(500), testutil.ToFloat64(m.LockedTokens))
	assert.Equal(t, float64(100), testutil.ToFloat64(m.BurnedTokens))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	reg := NewRegistry()
	m := New()
	m.Register(reg)
	assert.Panics(t, func() { m.Register(reg) })
}
