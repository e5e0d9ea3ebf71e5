package domain

// UncertaintyType tags a branch-set with the kind of epistemic uncertainty its
// branches describe. The tag selects both how branch values are parsed and how
// they are applied to a source.
type UncertaintyType string

const (
	// SourceModel branches reference alternative source-model files.
	SourceModel UncertaintyType = "sourceModel"
	// ExtendModel branches reference files that extend the base source model.
	ExtendModel UncertaintyType = "extendModel"
	// GMPEModel branches reference alternative ground-motion prediction equations.
	GMPEModel UncertaintyType = "gmpeModel"

	// ABGRAbsolute replaces the (a, b) pair of a Gutenberg-Richter MFD.
	ABGRAbsolute UncertaintyType = "abGRAbsolute"
	// BGRRelative adds an increment to the Gutenberg-Richter b value.
	BGRRelative UncertaintyType = "bGRRelative"
	// MaxMagGRRelative adds an increment to the GR maximum magnitude.
	MaxMagGRRelative UncertaintyType = "maxMagGRRelative"
	// MaxMagGRAbsolute replaces the GR maximum magnitude.
	MaxMagGRAbsolute UncertaintyType = "maxMagGRAbsolute"
	// IncrementalMFDAbsolute replaces an evenly discretized MFD wholesale.
	IncrementalMFDAbsolute UncertaintyType = "incrementalMFDAbsolute"

	// SimpleFaultDipRelative adjusts the fault dip by an increment.
	SimpleFaultDipRelative UncertaintyType = "simpleFaultDipRelative"
	// SimpleFaultDipAbsolute replaces the fault dip.
	SimpleFaultDipAbsolute UncertaintyType = "simpleFaultDipAbsolute"
	// SimpleFaultGeometryAbsolute replaces the whole simple-fault geometry.
	SimpleFaultGeometryAbsolute UncertaintyType = "simpleFaultGeometryAbsolute"
	// ComplexFaultGeometryAbsolute replaces the complex-fault edge geometry.
	ComplexFaultGeometryAbsolute UncertaintyType = "complexFaultGeometryAbsolute"
	// CharacteristicFaultGeometryAbsolute replaces the rupture surface of a
	// characteristic-fault source.
	CharacteristicFaultGeometryAbsolute UncertaintyType = "characteristicFaultGeometryAbsolute"
)
