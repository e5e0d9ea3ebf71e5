package runtime

import (
	"iter"

	"github.com/quakeforge/logictree/pkg/domain"
)

// EnumeratePaths returns a lazy, restartable sequence of every root-to-leaf
// path through the tree starting at bset, paired with the path weight (the
// product of the branch weights along it, root first). Over a conforming tree
// the yielded weights sum to 1.0 within floating tolerance.
//
// A collapsed branch-set contributes a single synthetic branch equal to its
// first branch with weight forced to 1.0: collapsing removes that level's
// probability split, its effect is applied later as a fan-out by
// ApplyUncertainties.
//
// Recursion depth is bounded by the tree's nesting depth, which is small in
// practice (tens of levels).
func EnumeratePaths(bset *domain.BranchSet) iter.Seq2[float64, []*domain.Branch] {
	return func(yield func(float64, []*domain.Branch) bool) {
		walk(bset, 1.0, nil, yield)
	}
}

func walk(bset *domain.BranchSet, weight float64, prefix []*domain.Branch, yield func(float64, []*domain.Branch) bool) bool {
	branches := bset.Branches
	if bset.Collapsed {
		b0 := *bset.Branches[0]
		b0.Weight = 1.0
		branches = []*domain.Branch{&b0}
	}
	for _, br := range branches {
		w := weight * br.Weight
		path := make([]*domain.Branch, len(prefix), len(prefix)+1)
		copy(path, prefix)
		path = append(path, br)
		if br.Child != nil {
			if !walk(br.Child, w, path, yield) {
				return false
			}
		} else if !yield(w, path) {
			return false
		}
	}
	return true
}
