package runtime

import (
	"fmt"

	"github.com/quakeforge/logictree/pkg/domain"
	"github.com/quakeforge/logictree/pkg/ports"
)

// ApplyUncertainties produces a new source group reflecting every applicable
// (branch-set, value) pair, in the pairs' given order, without mutating the
// input group or any of its sources.
//
// Per input source: if no pair applies, the output reuses the source as-is
// (no copy needed, sources are never mutated). Otherwise a deep clone is the
// working copy. A non-collapsed applicable pair applies its single value to
// that working copy; only the first applicable pair seeds the output with it,
// later non-collapsed pairs keep mutating the same copy. A collapsed pair
// fans out: one fresh clone of the working copy per branch, tagged with that
// branch's weight as scaling rate, each with that branch's value applied.
//
// Collapsing over a source whose rupture surface is a multi-surface composite
// is unsupported and fails with ErrCollapseUnsupported naming the source.
func ApplyUncertainties(pairs []domain.BsetValue, group *ports.SourceGroup) (*ports.SourceGroup, error) {
	out := &ports.SourceGroup{
		Name:               group.Name,
		TectonicRegionType: group.TectonicRegionType,
	}
	for _, source := range group.Sources {
		applicable := make([]bool, len(pairs))
		anyApplies := false
		for i, pair := range pairs {
			ok, err := FilterSource(pair.BranchSet, source)
			if err != nil {
				return nil, err
			}
			applicable[i] = ok
			anyApplies = anyApplies || ok
		}
		if !anyApplies {
			out.Sources = append(out.Sources, source)
			continue
		}

		work := source.Clone()
		var results []ports.Source
		for i, pair := range pairs {
			if !applicable[i] {
				continue
			}
			if pair.BranchSet.Collapsed {
				if ms, ok := work.(ports.MultiSurfaced); ok && ms.MultiSurface() {
					return nil, fmt.Errorf("%w for source %q",
						domain.ErrCollapseUnsupported, source.SourceID())
				}
				for _, br := range pair.BranchSet.Branches {
					fanned := work.Clone()
					fanned.SetScalingRate(br.Weight)
					if err := ApplyUncertainty(pair.BranchSet.UncertaintyType, fanned, br.Value); err != nil {
						return nil, fmt.Errorf("applying %s to source %q: %w",
							pair.BranchSet.UncertaintyType, source.SourceID(), err)
					}
					results = append(results, fanned)
				}
				out.Changes += len(pair.BranchSet.Branches)
			} else {
				if len(results) == 0 {
					results = append(results, work)
				}
				if err := ApplyUncertainty(pair.BranchSet.UncertaintyType, work, pair.Value); err != nil {
					return nil, fmt.Errorf("applying %s to source %q: %w",
						pair.BranchSet.UncertaintyType, source.SourceID(), err)
				}
				out.Changes++
			}
		}
		out.Sources = append(out.Sources, results...)
	}
	return out, nil
}
