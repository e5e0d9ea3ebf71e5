package runtime

import (
	"fmt"

	"github.com/quakeforge/logictree/pkg/domain"
	"github.com/quakeforge/logictree/pkg/ports"
)

// FilterSource evaluates every filter of the branch-set against src and
// reports whether the branch-set's uncertainty applies to it. Filters combine
// as a strict conjunction. Unknown filter keys and unknown source-type names
// are contract violations surfaced as errors, never ignored.
func FilterSource(bset *domain.BranchSet, src ports.Source) (bool, error) {
	for key, value := range bset.Filters {
		if src == nil {
			// No source under evaluation fails any filter.
			return false, nil
		}
		switch key {
		case domain.ApplyToTectonicRegionType:
			if value != src.TectonicRegionType() {
				return false, nil
			}
		case domain.ApplyToSourceType:
			ok, err := matchSourceType(value, src.Kind())
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		case domain.ApplyToSources:
			ids, _ := value.([]string)
			if !contains(ids, src.SourceID()) {
				return false, nil
			}
		default:
			return false, fmt.Errorf("%w: %q", domain.ErrUnknownFilter, key)
		}
	}
	return true, nil
}

// matchSourceType implements the source-type hierarchy. Area is a
// specialization of point, so "point" matches point-like sources that are not
// true area sources, while "area" matches area sources only.
func matchSourceType(value any, kind ports.SourceKind) (bool, error) {
	switch value {
	case "area":
		return kind == ports.KindArea, nil
	case "point":
		return kind.IsPointLike() && kind != ports.KindArea, nil
	case "simpleFault":
		return kind == ports.KindSimpleFault, nil
	case "complexFault":
		return kind == ports.KindComplexFault, nil
	case "characteristicFault":
		return kind == ports.KindCharacteristicFault, nil
	default:
		return false, fmt.Errorf("%w: %v", domain.ErrUnknownSourceType, value)
	}
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
