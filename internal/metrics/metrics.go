package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the token service instruments. Registered once at startup on
// an explicit registry so tests stay isolated. Labels only take values from
// fixed sets; room names go to the logs.
type Metrics struct {
	TokensIssued prometheus.Counter
	TokenErrors  *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		TokensIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sofia_tokens_issued_total",
			Help: "Total number of room access tokens issued.",
		}),

		TokenErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sofia_token_errors_total",
			Help: "Total number of failed token requests by reason.",
		}, []string{"reason"}),
	}

	reg.MustRegister(m.TokensIssued, m.TokenErrors)

	return m
}

func (m *Metrics) TokenIssued() {
	m.TokensIssued.Inc()
}

func (m *Metrics) TokenFailed(reason string) {
	m.TokenErrors.WithLabelValues(reason).Inc()
}
