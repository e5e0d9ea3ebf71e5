package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quakeforge/logictree/internal/testutils"
	"github.com/quakeforge/logictree/pkg/domain"
)

func weightedBranches(branches ...*domain.Branch) []domain.Weighted {
	out := make([]domain.Weighted, len(branches))
	for i, br := range branches {
		out[i] = br
	}
	return out
}

func TestSample_Deterministic(t *testing.T) {
	objs := weightedBranches(
		&domain.Branch{ID: "a", Weight: 0.2},
		&domain.Branch{ID: "b", Weight: 0.5},
		&domain.Branch{ID: "c", Weight: 0.3},
	)

	first, err := Sample(objs, 100, 1234)
	require.NoError(t, err)
	second, err := Sample(objs, 100, 1234)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 100)
}

func TestSample_DifferentSeedsDiverge(t *testing.T) {
	objs := weightedBranches(
		&domain.Branch{ID: "a", Weight: 0.5},
		&domain.Branch{ID: "b", Weight: 0.5},
	)

	first, err := Sample(objs, 50, 1)
	require.NoError(t, err)
	second, err := Sample(objs, 50, 2)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSample_FrequenciesConvergeToWeights(t *testing.T) {
	a := &domain.Branch{ID: "a", Weight: 0.2}
	b := &domain.Branch{ID: "b", Weight: 0.5}
	c := &domain.Branch{ID: "c", Weight: 0.3}

	n := 200000
	drawn, err := Sample(weightedBranches(a, b, c), n, 42)
	require.NoError(t, err)

	counts := map[string]int{}
	for _, obj := range drawn {
		counts[obj.(*domain.Branch).ID]++
	}
	assert.InDelta(t, 0.2, float64(counts["a"])/float64(n), 0.01)
	assert.InDelta(t, 0.5, float64(counts["b"])/float64(n), 0.01)
	assert.InDelta(t, 0.3, float64(counts["c"])/float64(n), 0.01)
}

func TestSample_StructuredWeights(t *testing.T) {
	// Per-IMT weight tables drive the draw through their "weight" entry.
	objs := []domain.Weighted{
		domain.WeightDict{"weight": 1.0, "PGA": 0.8},
		domain.WeightDict{"weight": 0.0, "PGA": 0.2},
	}

	drawn, err := Sample(objs, 20, 7)
	require.NoError(t, err)
	for _, obj := range drawn {
		assert.Equal(t, 1.0, obj.(domain.WeightDict)["weight"])
	}
}

func TestSample_Errors(t *testing.T) {
	_, err := Sample(nil, 1, 0)
	assert.Error(t, err)

	_, err = Sample(weightedBranches(&domain.Branch{ID: "a", Weight: -0.5}), 1, 0)
	assert.Error(t, err)
}

func TestSamplePath_OneBranchPerLevel(t *testing.T) {
	tree := testutils.TwoLevelTree(t)

	for seed := int64(0); seed < 20; seed++ {
		path, err := SamplePath(tree, seed)
		require.NoError(t, err)
		require.NotEmpty(t, path)
		if path[0].ID == "b1" {
			require.Len(t, path, 2)
			assert.Contains(t, []string{"c1", "c2"}, path[1].ID)
		} else {
			require.Len(t, path, 1)
			assert.Equal(t, "b2", path[0].ID)
		}
	}
}

func TestSamplePath_Deterministic(t *testing.T) {
	tree := testutils.TwoLevelTree(t)

	first, err := SamplePath(tree, 99)
	require.NoError(t, err)
	second, err := SamplePath(tree, 99)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSamplePath_CollapsedTakesFirstBranch(t *testing.T) {
	collapsed := &domain.BranchSet{
		UncertaintyType: domain.MaxMagGRAbsolute,
		Collapsed:       true,
		Branches: []*domain.Branch{
			{ID: "c1", Weight: 0.1},
			{ID: "c2", Weight: 0.9},
		},
	}
	root := &domain.BranchSet{
		UncertaintyType: domain.SourceModel,
		Branches: []*domain.Branch{
			{ID: "b1", Weight: 1.0, Child: collapsed},
		},
	}

	for seed := int64(0); seed < 10; seed++ {
		path, err := SamplePath(root, seed)
		require.NoError(t, err)
		require.Len(t, path, 2)
		assert.Equal(t, "c1", path[1].ID)
	}
}
