package input

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	hits        prometheus.Counter
	misses      prometheus.Counter
	fetchErrors *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "advent",
			Subsystem: "input",
			Name:      "cache_hits_total",
			Help:      "Puzzle inputs served from the local data directory.",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "advent",
			Subsystem: "input",
			Name:      "cache_misses_total",
			Help:      "Puzzle inputs not found locally.",
		}),
		fetchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "advent",
			Subsystem: "input",
			Name:      "fetch_errors_total",
			Help:      "Failed Input calls by error kind.",
		}, []string{"kind"}),
	}
	if reg == nil {
		return m
	}
	m.hits = register(reg, m.hits)
	m.misses = register(reg, m.misses)
	m.fetchErrors = register(reg, m.fetchErrors)

	return m
}

// register adds c to reg, reusing the existing collector when several
// caches share one registry.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		// Conflicting descriptor: keep counting locally.
	}

	return c
}
