package ports

import "errors"

// ErrUnsupportedOperation is returned by Modify when a concrete source or MFD
// subtype does not support the named operation. Calling an unsupported
// operation is a caller error, never a silent no-op.
var ErrUnsupportedOperation = errors.New("unsupported modify operation")

// SourceKind classifies a seismic source for filter matching.
type SourceKind string

const (
	KindPoint               SourceKind = "point"
	KindArea                SourceKind = "area"
	KindSimpleFault         SourceKind = "simpleFault"
	KindComplexFault        SourceKind = "complexFault"
	KindCharacteristicFault SourceKind = "characteristicFault"
)

// IsPointLike reports whether the kind sits in the point branch of the source
// type hierarchy. Area sources are a specialization of point sources.
func (k SourceKind) IsPointLike() bool {
	return k == KindPoint || k == KindArea
}

// MFD is the magnitude-frequency distribution of a source, exposed to the
// engine only through the generic modification capability.
//
// Operations a concrete MFD may support: "set_ab", "increment_b",
// "increment_max_mag", "set_max_mag", "set_mfd".
type MFD interface {
	Modify(operation string, params map[string]any) error
}

// Source is a seismic source as seen by the engine: identity accessors for
// filter evaluation, deep-copy isolation, and the generic modification
// capability.
//
// Operations a concrete source may support: "adjust_dip", "set_dip",
// "set_geometry".
type Source interface {
	SourceID() string
	TectonicRegionType() string
	Kind() SourceKind
	// MFD returns the source's magnitude-frequency distribution, nil when the
	// source has none.
	MFD() MFD
	// Clone returns a deep, independently mutable copy of the source.
	Clone() Source
	// SetScalingRate tags the source with the probability weight of the
	// collapsed branch it was fanned out from.
	SetScalingRate(rate float64)
	Modify(operation string, params map[string]any) error
}

// MultiSurfaced is implemented by sources whose rupture surface may be a
// multi-surface composite. The group transformer refuses to collapse such
// sources.
type MultiSurfaced interface {
	MultiSurface() bool
}

// SourceGroup owns an ordered collection of sources sharing a tectonic region
// type, plus a diagnostic counter of uncertainty applications.
type SourceGroup struct {
	Name               string
	TectonicRegionType string
	Sources            []Source
	// Changes counts uncertainty applications performed while deriving this
	// group. Diagnostic only.
	Changes int
}
