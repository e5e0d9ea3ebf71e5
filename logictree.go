package logictree

import (
	"iter"
	"log/slog"

	"github.com/quakeforge/logictree/internal/logging"
	"github.com/quakeforge/logictree/internal/runtime"
	"github.com/quakeforge/logictree/pkg/domain"
	"github.com/quakeforge/logictree/pkg/observability"
	"github.com/quakeforge/logictree/pkg/ports"
)

// Tree is the high-level entry point of the engine: a root branch-set plus
// the ambient concerns (logging, metrics) of the host that embeds it.
type Tree struct {
	root    *domain.BranchSet
	logger  *slog.Logger
	metrics *observability.Metrics
}

// Option configures a Tree.
type Option func(*Tree)

// WithLogger injects a structured logger. The default is a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tree) {
		t.logger = logger
	}
}

// WithMetrics wires engine counters; see pkg/observability.
func WithMetrics(m *observability.Metrics) Option {
	return func(t *Tree) {
		t.metrics = m
	}
}

// New wraps an already-constructed root branch-set. The tree is treated as
// immutable from here on.
func New(root *domain.BranchSet, opts ...Option) *Tree {
	t := &Tree{
		root:   root,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Root returns the root branch-set.
func (t *Tree) Root() *domain.BranchSet { return t.root }

// Enumerate returns a lazy, restartable sequence of every (path weight, path)
// pair through the tree, root first. Over a conforming tree the weights sum
// to 1.0 within floating tolerance.
func (t *Tree) Enumerate() iter.Seq2[float64, []*domain.Branch] {
	return func(yield func(float64, []*domain.Branch) bool) {
		for weight, path := range runtime.EnumeratePaths(t.root) {
			if t.metrics != nil {
				t.metrics.PathsEnumerated.Inc()
			}
			if !yield(weight, path) {
				return
			}
		}
	}
}

// Sample draws one realization: one branch per tree level, reproducibly for a
// given seed.
func (t *Tree) Sample(seed int64) ([]*domain.Branch, error) {
	branches, err := runtime.SamplePath(t.root, seed)
	if err != nil {
		return nil, err
	}
	if t.metrics != nil {
		t.metrics.RealizationsSampled.Inc()
	}
	t.logger.Debug("sampled realization", "seed", seed, "path", PathIDs(branches))
	return branches, nil
}

// BsetValues turns a path of branch ids into the (branch-set, value) pairs
// consumed by Apply. The walk stops early, without error, when a chosen
// branch has no child branch-set.
func (t *Tree) BsetValues(path []string) ([]domain.BsetValue, error) {
	return t.root.BsetValues(path)
}

// Apply produces a new source group reflecting every applicable pair, leaving
// the input group untouched.
func (t *Tree) Apply(pairs []domain.BsetValue, group *ports.SourceGroup) (*ports.SourceGroup, error) {
	out, err := runtime.ApplyUncertainties(pairs, group)
	if err != nil {
		return nil, err
	}
	if t.metrics != nil {
		t.metrics.SourcesTransformed.Add(float64(len(out.Sources)))
		t.metrics.SourceChanges.Add(float64(out.Changes))
	}
	t.logger.Debug("applied uncertainties",
		"pairs", len(pairs), "sources", len(out.Sources), "changes", out.Changes)
	return out, nil
}

// PathIDs extracts the branch ids of a path, in order.
func PathIDs(branches []*domain.Branch) []string {
	ids := make([]string, len(branches))
	for i, br := range branches {
		ids[i] = br.ID
	}
	return ids
}

// ParseUncertainty produces the typed value for one branch from its raw node
// representation. Failures are *domain.LogicTreeError with node context.
func ParseUncertainty(utype domain.UncertaintyType, node *domain.Node, filename string) (any, error) {
	return runtime.ParseUncertainty(utype, node, filename)
}

// ApplyUncertainty mutates src in place according to the uncertainty type and
// parsed value.
func ApplyUncertainty(utype domain.UncertaintyType, src ports.Source, value any) error {
	return runtime.ApplyUncertainty(utype, src, value)
}

// ApplyUncertainties is the group transformation pipeline; see Tree.Apply.
func ApplyUncertainties(pairs []domain.BsetValue, group *ports.SourceGroup) (*ports.SourceGroup, error) {
	return runtime.ApplyUncertainties(pairs, group)
}

// FilterSource reports whether a branch-set's uncertainty applies to src.
func FilterSource(bset *domain.BranchSet, src ports.Source) (bool, error) {
	return runtime.FilterSource(bset, src)
}

// SampleWeighted draws n objects with replacement from the discrete
// distribution given by the objects' weights, reproducibly for a given seed.
func SampleWeighted(objects []domain.Weighted, n int, seed int64) ([]domain.Weighted, error) {
	return runtime.Sample(objects, n, seed)
}
