// Package prom exports lambdalog activity as Prometheus counters.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/trickstertwo/lambdalog"
)

// Observer counts emitted, deferred and discarded lines.
type Observer struct {
	lines     *prometheus.CounterVec
	deferred  prometheus.Counter
	discarded prometheus.Counter
}

var _ lambdalog.Observer = (*Observer)(nil)

// New registers the counters with reg (prometheus.DefaultRegisterer when nil).
func New(reg prometheus.Registerer) (*Observer, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	o := &Observer{
		lines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lambdalog_lines_total",
			Help: "Lines emitted by level, whether written or queued",
		}, []string{"level"}),
		deferred: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lambdalog_lines_deferred_total",
			Help: "Lines queued because no sink was installed yet",
		}),
		discarded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lambdalog_lines_discarded_total",
			Help: "Queued lines dropped at execution teardown without ever reaching a sink",
		}),
	}
	for _, c := range []prometheus.Collector{o.lines, o.deferred, o.discarded} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *Observer) OnLog(e lambdalog.Entry) {
	o.lines.WithLabelValues(e.Level.String()).Inc()
	if e.Deferred {
		o.deferred.Inc()
	}
}

// OnDiscard matches lambdalog.OnDiscard.
func (o *Observer) OnDiscard(n int) {
	o.discarded.Add(float64(n))
}
