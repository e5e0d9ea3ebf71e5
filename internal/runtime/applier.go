package runtime

import (
	"fmt"

	"github.com/quakeforge/logictree/pkg/domain"
	"github.com/quakeforge/logictree/pkg/ports"
)

// applyFunc applies one parsed uncertainty value onto a source (or its MFD)
// through the generic modification capability.
type applyFunc func(src ports.Source, value any) error

var applyTable = map[domain.UncertaintyType]applyFunc{
	domain.SimpleFaultDipRelative: func(src ports.Source, value any) error {
		return src.Modify("adjust_dip", map[string]any{"increment": value})
	},
	domain.SimpleFaultDipAbsolute: func(src ports.Source, value any) error {
		return src.Modify("set_dip", map[string]any{"dip": value})
	},
	domain.SimpleFaultGeometryAbsolute: func(src ports.Source, value any) error {
		g, ok := value.(domain.SimpleFaultGeometry)
		if !ok {
			return fmt.Errorf("simpleFaultGeometryAbsolute value is %T, not a simple fault geometry", value)
		}
		return src.Modify("set_geometry", map[string]any{
			"fault_trace":             g.Trace,
			"upper_seismogenic_depth": g.UpperSeismoDepth,
			"lower_seismogenic_depth": g.LowerSeismoDepth,
			"dip":                     g.Dip,
			"spacing":                 g.Spacing,
		})
	},
	domain.ComplexFaultGeometryAbsolute: func(src ports.Source, value any) error {
		g, ok := value.(domain.ComplexFaultGeometry)
		if !ok {
			return fmt.Errorf("complexFaultGeometryAbsolute value is %T, not a complex fault geometry", value)
		}
		return src.Modify("set_geometry", map[string]any{
			"edges":   g.Edges,
			"spacing": g.Spacing,
		})
	},
	domain.CharacteristicFaultGeometryAbsolute: func(src ports.Source, value any) error {
		return src.Modify("set_geometry", map[string]any{"surface": value})
	},
	domain.ABGRAbsolute: func(src ports.Source, value any) error {
		ab, ok := value.(domain.ABValues)
		if !ok {
			return fmt.Errorf("abGRAbsolute value is %T, not an (a, b) pair", value)
		}
		return src.MFD().Modify("set_ab", map[string]any{"a_val": ab.A, "b_val": ab.B})
	},
	domain.BGRRelative: func(src ports.Source, value any) error {
		return src.MFD().Modify("increment_b", map[string]any{"value": value})
	},
	domain.MaxMagGRRelative: func(src ports.Source, value any) error {
		return src.MFD().Modify("increment_max_mag", map[string]any{"value": value})
	},
	domain.MaxMagGRAbsolute: func(src ports.Source, value any) error {
		return src.MFD().Modify("set_max_mag", map[string]any{"value": value})
	},
	domain.IncrementalMFDAbsolute: func(src ports.Source, value any) error {
		mfd, ok := value.(domain.IncrementalMFD)
		if !ok {
			return fmt.Errorf("incrementalMFDAbsolute value is %T, not an incremental MFD", value)
		}
		return src.MFD().Modify("set_mfd", map[string]any{
			"min_mag":          mfd.MinMag,
			"bin_width":        mfd.BinWidth,
			"occurrence_rates": mfd.OccurRates,
		})
	},
}

// ApplyUncertainty mutates src in place according to the uncertainty type and
// parsed value. Uncertainty types without an applier (the model-selection
// tags, or tags unknown altogether) cannot legally reach this point on a
// validated tree, so they panic rather than return an error.
func ApplyUncertainty(utype domain.UncertaintyType, src ports.Source, value any) error {
	fn, ok := applyTable[utype]
	if !ok {
		panic(fmt.Sprintf("no applier for uncertainty type %q", utype))
	}
	return fn(src, value)
}
