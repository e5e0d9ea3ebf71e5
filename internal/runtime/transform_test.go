package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quakeforge/logictree/pkg/adapters/memory"
	"github.com/quakeforge/logictree/pkg/domain"
	"github.com/quakeforge/logictree/pkg/ports"
)

func grSource(id, trt string) *memory.SimpleFaultSource {
	return memory.NewSimpleFaultSource(id, trt, domain.SimpleFaultGeometry{
		Trace:            domain.Line{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 0}},
		LowerSeismoDepth: 10,
		Dip:              45,
		Spacing:          1,
	}, &memory.TruncatedGRMFD{AVal: 3.0, BVal: 1.0, MinMag: 5.0, MaxMag: 7.0, BinWidth: 0.1})
}

func TestApplyUncertainties_EmptyPairsReusesSources(t *testing.T) {
	src := grSource("s1", "Active Shallow Crust")
	group := &ports.SourceGroup{Name: "g1", Sources: []ports.Source{src}}

	out, err := ApplyUncertainties(nil, group)
	require.NoError(t, err)

	require.NotSame(t, group, out)
	require.Len(t, out.Sources, 1)
	assert.Same(t, ports.Source(src), out.Sources[0])
	assert.Zero(t, out.Changes)
	assert.Zero(t, group.Changes)
}

func TestApplyUncertainties_NeverMutatesInput(t *testing.T) {
	src := grSource("s1", "Active Shallow Crust")
	group := &ports.SourceGroup{Name: "g1", Sources: []ports.Source{src}}

	bset := &domain.BranchSet{
		UncertaintyType: domain.BGRRelative,
		Branches:        []*domain.Branch{{ID: "b1", Weight: 1.0, Value: 0.3}},
	}
	out, err := ApplyUncertainties([]domain.BsetValue{{BranchSet: bset, Value: 0.3}}, group)
	require.NoError(t, err)

	// Input untouched.
	assert.Equal(t, 1.0, src.Dist.(*memory.TruncatedGRMFD).BVal)
	assert.Zero(t, group.Changes)

	// Output reflects the uncertainty on a distinct object graph.
	require.Len(t, out.Sources, 1)
	outSrc := out.Sources[0].(*memory.SimpleFaultSource)
	require.NotSame(t, src, outSrc)
	assert.InDelta(t, 1.3, outSrc.Dist.(*memory.TruncatedGRMFD).BVal, 1e-12)
	assert.Equal(t, 1, out.Changes)
}

func TestApplyUncertainties_FilteredOutSourceIsReused(t *testing.T) {
	match := grSource("s1", "Active Shallow Crust")
	misfit := grSource("s2", "Stable Shallow Crust")
	group := &ports.SourceGroup{Sources: []ports.Source{match, misfit}}

	bset := &domain.BranchSet{
		UncertaintyType: domain.MaxMagGRAbsolute,
		Filters:         domain.Filters{domain.ApplyToTectonicRegionType: "Active Shallow Crust"},
		Branches:        []*domain.Branch{{ID: "b1", Weight: 1.0, Value: 7.5}},
	}
	out, err := ApplyUncertainties([]domain.BsetValue{{BranchSet: bset, Value: 7.5}}, group)
	require.NoError(t, err)

	require.Len(t, out.Sources, 2)
	assert.NotSame(t, ports.Source(match), out.Sources[0])
	assert.Same(t, ports.Source(misfit), out.Sources[1])
	assert.Equal(t, 1, out.Changes)
	assert.Equal(t, 7.5, out.Sources[0].(*memory.SimpleFaultSource).Dist.(*memory.TruncatedGRMFD).MaxMag)
}

func TestApplyUncertainties_SequentialPairsMutateOneCopy(t *testing.T) {
	src := grSource("s1", "Active Shallow Crust")
	group := &ports.SourceGroup{Sources: []ports.Source{src}}

	bIncrement := &domain.BranchSet{
		UncertaintyType: domain.BGRRelative,
		Branches:        []*domain.Branch{{ID: "b1", Weight: 1.0, Value: 0.1}},
	}
	magSet := &domain.BranchSet{
		UncertaintyType: domain.MaxMagGRAbsolute,
		Branches:        []*domain.Branch{{ID: "m1", Weight: 1.0, Value: 8.0}},
	}
	pairs := []domain.BsetValue{
		{BranchSet: bIncrement, Value: 0.1},
		{BranchSet: magSet, Value: 8.0},
	}

	out, err := ApplyUncertainties(pairs, group)
	require.NoError(t, err)

	require.Len(t, out.Sources, 1)
	mfd := out.Sources[0].(*memory.SimpleFaultSource).Dist.(*memory.TruncatedGRMFD)
	assert.InDelta(t, 1.1, mfd.BVal, 1e-12)
	assert.Equal(t, 8.0, mfd.MaxMag)
	assert.Equal(t, 2, out.Changes)
}

func TestApplyUncertainties_CollapsedFansOut(t *testing.T) {
	src := grSource("s1", "Active Shallow Crust")
	group := &ports.SourceGroup{Sources: []ports.Source{src}}

	collapsed := &domain.BranchSet{
		UncertaintyType: domain.MaxMagGRAbsolute,
		Collapsed:       true,
		Branches: []*domain.Branch{
			{ID: "c1", Weight: 0.2, Value: 7.0},
			{ID: "c2", Weight: 0.5, Value: 7.5},
			{ID: "c3", Weight: 0.3, Value: 8.0},
		},
	}
	out, err := ApplyUncertainties([]domain.BsetValue{{BranchSet: collapsed, Value: 7.0}}, group)
	require.NoError(t, err)

	require.Len(t, out.Sources, 3)
	assert.Equal(t, 3, out.Changes)

	wantWeights := []float64{0.2, 0.5, 0.3}
	wantMags := []float64{7.0, 7.5, 8.0}
	for i, outSrc := range out.Sources {
		fanned := outSrc.(*memory.SimpleFaultSource)
		assert.Equal(t, wantWeights[i], fanned.ScalingRate, "fanned source %d", i)
		assert.Equal(t, wantMags[i], fanned.Dist.(*memory.TruncatedGRMFD).MaxMag, "fanned source %d", i)
	}

	// Original still pristine.
	assert.Equal(t, 7.0, src.Dist.(*memory.TruncatedGRMFD).MaxMag)
	assert.Zero(t, src.ScalingRate)
}

func TestApplyUncertainties_CollapsingMultiSurfaceFails(t *testing.T) {
	multi := memory.NewCharacteristicFaultSource("char1", "Active Shallow Crust",
		domain.MultiSurface{Surfaces: []domain.Surface{
			domain.PlanarSurface{},
			domain.PlanarSurface{},
		}}, nil)
	group := &ports.SourceGroup{Sources: []ports.Source{multi}}

	collapsed := &domain.BranchSet{
		UncertaintyType: domain.CharacteristicFaultGeometryAbsolute,
		Collapsed:       true,
		Branches: []*domain.Branch{
			{ID: "c1", Weight: 0.5, Value: domain.PlanarSurface{}},
			{ID: "c2", Weight: 0.5, Value: domain.PlanarSurface{}},
		},
	}
	_, err := ApplyUncertainties([]domain.BsetValue{{BranchSet: collapsed, Value: nil}}, group)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCollapseUnsupported)
	assert.Contains(t, err.Error(), "char1")
}

func TestApplyUncertainties_CollapsingSingleSurfaceSucceeds(t *testing.T) {
	single := memory.NewCharacteristicFaultSource("char1", "Active Shallow Crust",
		domain.PlanarSurface{}, nil)
	group := &ports.SourceGroup{Sources: []ports.Source{single}}

	replacement := domain.PlanarSurface{TopRight: domain.Point{Lon: 1, Lat: 1}}
	collapsed := &domain.BranchSet{
		UncertaintyType: domain.CharacteristicFaultGeometryAbsolute,
		Collapsed:       true,
		Branches: []*domain.Branch{
			{ID: "c1", Weight: 0.6, Value: replacement},
			{ID: "c2", Weight: 0.4, Value: domain.PlanarSurface{}},
		},
	}
	out, err := ApplyUncertainties([]domain.BsetValue{{BranchSet: collapsed, Value: nil}}, group)
	require.NoError(t, err)
	require.Len(t, out.Sources, 2)
	assert.Equal(t, replacement, out.Sources[0].(*memory.CharacteristicFaultSource).Surface)
}

func TestApplyUncertainties_FilterErrorSurfaces(t *testing.T) {
	src := grSource("s1", "Active Shallow Crust")
	group := &ports.SourceGroup{Sources: []ports.Source{src}}

	bset := &domain.BranchSet{
		UncertaintyType: domain.BGRRelative,
		Filters:         domain.Filters{domain.FilterKey("applyToDepth"): 5.0},
		Branches:        []*domain.Branch{{ID: "b1", Weight: 1.0, Value: 0.1}},
	}
	_, err := ApplyUncertainties([]domain.BsetValue{{BranchSet: bset, Value: 0.1}}, group)
	assert.ErrorIs(t, err, domain.ErrUnknownFilter)
}
