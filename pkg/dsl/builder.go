package dsl

import (
	"fmt"
	"math"

	"github.com/quakeforge/logictree/pkg/domain"
)

// weightTolerance is how far a set's branch weights may drift from 1.0.
const weightTolerance = 1e-6

// SetBuilder accumulates the branches of one branch-set.
type SetBuilder struct {
	id        string
	utype     domain.UncertaintyType
	filters   domain.Filters
	collapsed bool
	branches  []branchSpec
}

type branchSpec struct {
	id     string
	weight float64
	value  any
	child  *SetBuilder
}

// NewSet starts a branch-set with the given id and uncertainty type.
func NewSet(id string, utype domain.UncertaintyType) *SetBuilder {
	return &SetBuilder{id: id, utype: utype}
}

// Filter adds an applicability filter to the set.
func (b *SetBuilder) Filter(key domain.FilterKey, value any) *SetBuilder {
	if b.filters == nil {
		b.filters = make(domain.Filters)
	}
	b.filters[key] = value
	return b
}

// Collapsed marks the set as collapsed: no probability split, fan-out on
// application instead.
func (b *SetBuilder) Collapsed() *SetBuilder {
	b.collapsed = true
	return b
}

// Branch adds a leaf branch.
func (b *SetBuilder) Branch(id string, weight float64, value any) *SetBuilder {
	b.branches = append(b.branches, branchSpec{id: id, weight: weight, value: value})
	return b
}

// Nested adds a branch whose choice conditions a further decision level.
func (b *SetBuilder) Nested(id string, weight float64, value any, child *SetBuilder) *SetBuilder {
	b.branches = append(b.branches, branchSpec{id: id, weight: weight, value: value, child: child})
	return b
}

// Build validates the set and every nested set, and returns the immutable
// tree root.
func (b *SetBuilder) Build() (*domain.BranchSet, error) {
	if len(b.branches) == 0 {
		return nil, fmt.Errorf("branch set %q has no branches", b.id)
	}
	seen := make(map[string]bool, len(b.branches))
	total := 0.0
	bset := &domain.BranchSet{
		UncertaintyType: b.utype,
		Filters:         b.filters,
		Collapsed:       b.collapsed,
	}
	for _, spec := range b.branches {
		if seen[spec.id] {
			return nil, fmt.Errorf("branch set %q: duplicate branch id %q", b.id, spec.id)
		}
		seen[spec.id] = true
		if spec.weight <= 0 || spec.weight > 1 {
			return nil, fmt.Errorf("branch set %q: branch %q weight %v outside (0, 1]",
				b.id, spec.id, spec.weight)
		}
		total += spec.weight
		branch := &domain.Branch{
			SetID:  b.id,
			ID:     spec.id,
			Weight: spec.weight,
			Value:  spec.value,
		}
		if spec.child != nil {
			child, err := spec.child.Build()
			if err != nil {
				return nil, err
			}
			branch.Child = child
		}
		bset.Branches = append(bset.Branches, branch)
	}
	if math.Abs(total-1.0) > weightTolerance {
		return nil, fmt.Errorf("branch set %q: weights sum to %v, want 1.0", b.id, total)
	}
	return bset, nil
}

// MustBuild is Build for tests and static trees; it panics on invalid input.
func (b *SetBuilder) MustBuild() *domain.BranchSet {
	bset, err := b.Build()
	if err != nil {
		panic(err)
	}
	return bset
}
