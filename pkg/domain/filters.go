package domain

// FilterKey names an applicability predicate on a branch-set. A source must
// pass every filter in the map (strict conjunction) for the branch-set's
// uncertainty to apply to it.
type FilterKey string

const (
	// ApplyToTectonicRegionType restricts the uncertainty to sources with an
	// exactly matching tectonic region type. Value: string.
	ApplyToTectonicRegionType FilterKey = "applyToTectonicRegionType"
	// ApplyToSourceType restricts the uncertainty to one source-type class.
	// Value: one of "point", "area", "simpleFault", "complexFault",
	// "characteristicFault".
	ApplyToSourceType FilterKey = "applyToSourceType"
	// ApplyToSources restricts the uncertainty to explicitly listed source
	// ids. Value: []string.
	ApplyToSources FilterKey = "applyToSources"
)

// Filters is the applicability predicate map of a branch-set.
type Filters map[FilterKey]any
