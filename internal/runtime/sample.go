package runtime

import (
	"fmt"
	"math/rand/v2"

	"github.com/quakeforge/logictree/pkg/domain"
)

// Sample draws n objects with replacement from the discrete distribution
// given by each object's sample weight. The generator is freshly seeded per
// call, so identical inputs and seed always produce the identical fixed-size
// result and concurrent callers never interfere.
func Sample(weightedObjects []domain.Weighted, n int, seed int64) ([]domain.Weighted, error) {
	if len(weightedObjects) == 0 {
		return nil, fmt.Errorf("cannot sample from an empty sequence")
	}
	total := 0.0
	cumulative := make([]float64, len(weightedObjects))
	for i, obj := range weightedObjects {
		w := obj.SampleWeight()
		if w < 0 {
			return nil, fmt.Errorf("negative weight %v at index %d", w, i)
		}
		total += w
		cumulative[i] = total
	}
	if total <= 0 {
		return nil, fmt.Errorf("weights sum to %v, cannot sample", total)
	}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	out := make([]domain.Weighted, n)
	for i := range out {
		r := rng.Float64() * total
		idx := 0
		for idx < len(cumulative)-1 && r >= cumulative[idx] {
			idx++
		}
		out[i] = weightedObjects[idx]
	}
	return out, nil
}

// SamplePath draws one realization: one branch per tree level, chosen
// independently at each level with a generator seeded with seed. Collapsed
// branch-sets deterministically contribute their first branch and spend no
// randomness.
func SamplePath(bset *domain.BranchSet, seed int64) ([]*domain.Branch, error) {
	var branches []*domain.Branch
	for bset != nil {
		var branch *domain.Branch
		if bset.Collapsed {
			branch = bset.Branches[0]
		} else {
			weighted := make([]domain.Weighted, len(bset.Branches))
			for i, br := range bset.Branches {
				weighted[i] = br
			}
			chosen, err := Sample(weighted, 1, seed)
			if err != nil {
				return nil, err
			}
			branch = chosen[0].(*domain.Branch)
		}
		branches = append(branches, branch)
		bset = branch.Child
	}
	return branches, nil
}
