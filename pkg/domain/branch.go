package domain

import (
	"fmt"
	"strings"
)

// Weighted is anything that can report the scalar probability weight used by
// weighted sampling. Objects whose weight is structured (e.g. per-IMT weight
// tables) report the entry that drives the draw.
type Weighted interface {
	SampleWeight() float64
}

// WeightDict is a structured weight, keyed by intensity-measure type. The
// "weight" entry is the scalar used for sampling.
type WeightDict map[string]float64

// SampleWeight returns the default "weight" entry.
func (w WeightDict) SampleWeight() float64 { return w["weight"] }

// Branch is one alternative choice at a decision point. Its value is the
// parsed uncertainty payload; the concrete type depends on the owning
// branch-set's uncertainty type. A branch with a non-nil Child conditions the
// next decision level on this branch having been chosen.
type Branch struct {
	// SetID identifies the branch-set this branch belongs to.
	SetID string `json:"set_id,omitempty" yaml:"set_id,omitempty"`
	// ID is unique within the owning branch-set.
	ID     string     `json:"id" yaml:"id"`
	Weight float64    `json:"weight" yaml:"weight"`
	Value  any        `json:"value,omitempty" yaml:"value,omitempty"`
	Child  *BranchSet `json:"child,omitempty" yaml:"child,omitempty"`
}

// SampleWeight implements Weighted.
func (b *Branch) SampleWeight() float64 { return b.Weight }

func (b *Branch) String() string {
	if b.Child != nil {
		return b.ID + b.Child.String()
	}
	return b.ID
}

// BranchSet is the full set of mutually exclusive alternatives at one decision
// point. The weights of its branches sum to 1.0 within floating tolerance;
// enforcing that is the tree builder's job, not the engine's.
//
// A collapsed branch-set does not contribute a probability split: enumeration
// and sampling deterministically take its first branch, and the group
// transformer fans the set's branches out into a weighted family of sources
// instead.
type BranchSet struct {
	UncertaintyType UncertaintyType `json:"uncertainty_type" yaml:"uncertainty_type"`
	Filters         Filters         `json:"filters,omitempty" yaml:"filters,omitempty"`
	Collapsed       bool            `json:"collapsed,omitempty" yaml:"collapsed,omitempty"`
	Branches        []*Branch       `json:"branches" yaml:"branches"`
}

// Branch returns the owned branch with the given id.
func (bs *BranchSet) Branch(id string) (*Branch, error) {
	for _, br := range bs.Branches {
		if br.ID == id {
			return br, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrBranchNotFound, id)
}

// BsetValue pairs a branch-set with the value of the branch chosen from it
// along one realization.
type BsetValue struct {
	BranchSet *BranchSet
	Value     any
}

// BsetValues walks the chain starting at bs, consuming one branch id per
// level, and collects (branch-set, chosen value) pairs. The walk stops when
// the id list is exhausted or a chosen branch has no child branch-set;
// leftover ids are not an error.
func (bs *BranchSet) BsetValues(path []string) ([]BsetValue, error) {
	var pairs []BsetValue
	cur := bs
	for _, id := range path {
		br, err := cur.Branch(id)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, BsetValue{BranchSet: cur, Value: br.Value})
		cur = br.Child
		if cur == nil {
			break
		}
	}
	return pairs, nil
}

func (bs *BranchSet) String() string {
	ids := make([]string, len(bs.Branches))
	for i, br := range bs.Branches {
		ids[i] = br.ID
	}
	return "<" + strings.Join(ids, " ") + ">"
}
