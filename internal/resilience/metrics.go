package resilience

import "github.com/prometheus/client_golang/prometheus"

// Breaker collectors are process-wide and registered on the default registry.
var (
	BreakerState = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Subsystem: "breaker",
		Name:      "state",
		Help:      "Current breaker state per target: 0=closed, 1=open, 2=half-open.",
	}, []string{"target"})
	BreakerTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Subsystem: "breaker",
		Name:      "transitions_total",
		Help:      "Breaker state transitions per target.",
	}, []string{"target", "from", "to"})
	BreakerOpenedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Subsystem: "breaker",
		Name:      "opened_total",
		Help:      "Times a breaker tripped open, including failed half-open trial requests.",
	}, []string{"target"})
)

func init() {
	prometheus.MustRegister(BreakerState, BreakerTransitions, BreakerOpenedTotal)
}

func stateGauge(target string, s State) {
	BreakerState.WithLabelValues(target).Set(float64(s))
}

func recordTransition(target string, from, to State) {
	BreakerTransitions.WithLabelValues(target, from.String(), to.String()).Inc()
	if to == Open {
		BreakerOpenedTotal.WithLabelValues(target).Inc()
	}
}
