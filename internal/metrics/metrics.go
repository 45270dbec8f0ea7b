package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Fetch cycle outcomes.
const (
	OutcomeOK          = "ok"
	OutcomeTransport   = "transport"
	OutcomeHTTP        = "http"
	OutcomeInvalidData = "invalid_data"
	OutcomeError       = "error"
)

// Metrics holds the fetch cycle collectors. A nil *Metrics records nothing.
type Metrics struct {
	cycles   *prometheus.CounterVec
	duration prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		cycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cryptomonitor",
			Name:      "fetch_cycles_total",
			Help:      "Ticker fetch cycles by outcome",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "cryptomonitor",
			Name:      "fetch_cycle_duration_seconds",
			Help:      "Time spent fetching and formatting one quote",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.cycles, m.duration)
	return m
}

// ObserveFetch records one completed fetch cycle.
func (m *Metrics) ObserveFetch(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.cycles.WithLabelValues(outcome).Inc()
	m.duration.Observe(d.Seconds())
}
