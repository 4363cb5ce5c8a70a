// Package metrics holds the Prometheus collectors of the lock service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tokenlocker"

// Outcome labels.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics groups the service collectors so each server (and each test) can
// own its registry.
type Metrics struct {
	// Transitions counts lock transitions by operation and outcome.
	Transitions *prometheus.CounterVec
	// LockedTokens is the total amount accepted by deposits.
	LockedTokens prometheus.Counter
	// ReleasedTokens is the total amount paid back to owners.
	ReleasedTokens prometheus.Counter
	// BurnedTokens is the total amount destroyed as early-withdrawal penalty.
	BurnedTokens prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_total",
			Help:      "Total number of lock transitions",
		}, []string{"op", "outcome"}),
		LockedTokens: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "locked_tokens_total",
			Help:      "Total amount of tokens deposited into locks",
		}),
		ReleasedTokens: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "released_tokens_total",
			Help:      "Total amount of tokens paid out by withdrawals",
		}),
		BurnedTokens: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "burned_tokens_total",
			Help:      "Total amount of tokens burned as early withdrawal penalty",
		}),
	}
}

// NewRegistry creates a new Prometheus registry.
func NewRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// Register registers all collectors on reg.
func (m *Metrics) Register(reg prometheus.Registerer) {
	reg.MustRegister(m.Transitions, m.LockedTokens, m.ReleasedTokens, m.BurnedTokens)
}

// Observe records one finished transition.
func (m *Metrics) Observe(op, outcome string) {
	m.Transitions.WithLabelValues(op, outcome).Inc()
}
