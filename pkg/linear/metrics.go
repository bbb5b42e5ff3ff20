package linear

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects statistics of head elections. A nil *Metrics records nothing.
type Metrics struct {
	headsElected         prometheus.Counter
	candidatesEliminated prometheus.Counter
	unitsAdded           prometheus.Counter
	unitsRejected        prometheus.Counter
	currentRound         prometheus.Gauge
}

// NewMetrics creates the election metrics and registers them with the given registerer.
func NewMetrics(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		headsElected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "election_heads_elected_total",
			Help:      "Number of rounds whose head was elected.",
		}),
		candidatesEliminated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "election_candidates_eliminated_total",
			Help:      "Number of candidates eliminated before a head was found.",
		}),
		unitsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "election_units_added_total",
			Help:      "Number of units accepted into the dag.",
		}),
		unitsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "election_rejected_units_total",
			Help:      "Number of units refused by the dag.",
		}),
		currentRound: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "election_current_round",
			Help:      "Round whose head is being elected.",
		}),
	}
	for _, c := range []prometheus.Collector{m.headsElected, m.candidatesEliminated, m.unitsAdded, m.unitsRejected, m.currentRound} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) unitAdded(err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.unitsRejected.Inc()
		return
	}
	m.unitsAdded.Inc()
}

func (m *Metrics) eliminated(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.candidatesEliminated.Add(float64(n))
}

func (m *Metrics) elected(nextRound int) {
	if m == nil {
		return
	}
	m.headsElected.Inc()
	m.currentRound.Set(float64(nextRound))
}

func (m *Metrics) round(round int) {
	if m == nil {
		return
	}
	m.currentRound.Set(float64(round))
}
