// Package observability exposes engine counters for hosts that scrape
// Prometheus. The engine itself serves nothing; the caller owns the registry
// and the scrape surface.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the logic-tree engine counters.
type Metrics struct {
	// PathsEnumerated counts paths yielded by exhaustive enumeration.
	PathsEnumerated prometheus.Counter
	// RealizationsSampled counts sampled realizations.
	RealizationsSampled prometheus.Counter
	// SourcesTransformed counts sources emitted by group transformations.
	SourcesTransformed prometheus.Counter
	// SourceChanges counts uncertainty applications across transformations.
	SourceChanges prometheus.Counter
}

// NewMetrics registers the engine counters on reg. Pass
// prometheus.DefaultRegisterer to use the process-global registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PathsEnumerated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "logictree",
			Name:      "paths_enumerated_total",
			Help:      "Paths yielded by exhaustive logic-tree enumeration.",
		}),
		RealizationsSampled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "logictree",
			Name:      "realizations_sampled_total",
			Help:      "Realizations drawn by seeded weighted sampling.",
		}),
		SourcesTransformed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "logictree",
			Name:      "sources_transformed_total",
			Help:      "Sources emitted by group transformations.",
		}),
		SourceChanges: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "logictree",
			Name:      "source_changes_total",
			Help:      "Uncertainty applications performed while transforming groups.",
		}),
	}
}
