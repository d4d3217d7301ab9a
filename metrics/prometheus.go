// Package metrics reports cache activity to Prometheus.
package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/krisalay/ttl-cache/types"
)

const subsystem = "cache"

var _ types.Metrics = (*Prometheus)(nil)

// Prometheus implements types.Metrics with one counter per cache event.
type Prometheus struct {
	hits        prometheus.Counter
	misses      prometheus.Counter
	inserts     prometheus.Counter
	removals    prometheus.Counter
	expirations prometheus.Counter
}

// NewPrometheus creates the counters under namespace and registers them with reg.
func NewPrometheus(reg prometheus.Registerer, namespace string) (*Prometheus, error) {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
		})
	}

	p := &Prometheus{
		hits:        counter("hits_total", "Number of lookups that found their key."),
		misses:      counter("misses_total", "Number of lookups that did not find their key."),
		inserts:     counter("inserts_total", "Number of inserted entries, replacements included."),
		removals:    counter("removals_total", "Number of entries removed before their deadline."),
		expirations: counter("expirations_total", "Number of entries evicted because their TTL elapsed."),
	}

	for _, c := range []prometheus.Collector{p.hits, p.misses, p.inserts, p.removals, p.expirations} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "register cache metrics")
		}
	}
	return p, nil
}

func (p *Prometheus) Hit()    { p.hits.Inc() }
func (p *Prometheus) Miss()   { p.misses.Inc() }
func (p *Prometheus) Insert() { p.inserts.Inc() }
func (p *Prometheus) Remove() { p.removals.Inc() }
func (p *Prometheus) Expire() { p.expirations.Inc() }
