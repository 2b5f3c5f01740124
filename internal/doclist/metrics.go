package doclist

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts list view activity. A nil *Metrics records nothing.
type Metrics struct {
	sorts   *prometheus.CounterVec
	actions *prometheus.CounterVec
}

// NewMetrics registers the list view collectors on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		sorts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "doclist_sorts_total",
				Help: "Total number of column activations on document list views.",
			},
			[]string{"column"},
		),
		actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "doclist_actions_total",
				Help: "Total number of row actions dispatched from document list views.",
			},
			[]string{"action", "outcome"},
		),
	}
	for _, c := range []prometheus.Collector{m.sorts, m.actions} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) sorted(column string) {
	if m == nil {
		return
	}
	m.sorts.WithLabelValues(column).Inc()
}

func (m *Metrics) action(name string, ok bool) {
	if m == nil {
		return
	}
	outcome := "success"
	if !ok {
		outcome = "failure"
	}
	m.actions.WithLabelValues(name, outcome).Inc()
}
