// Package memory provides a reference in-memory implementation of the
// source-model boundary: concrete seismic sources and MFDs supporting the
// generic modification capability the engine applies uncertainties through.
// Geometry fields are stored payloads; no geodetic math happens here.
package memory

import (
	"fmt"

	"github.com/quakeforge/logictree/pkg/domain"
	"github.com/quakeforge/logictree/pkg/ports"
)

// baseSource carries the identity every concrete source shares.
type baseSource struct {
	ID          string
	TRT         string
	ScalingRate float64
	Dist        MFD
}

func (b *baseSource) SourceID() string           { return b.ID }
func (b *baseSource) TectonicRegionType() string { return b.TRT }
func (b *baseSource) SetScalingRate(rate float64) {
	b.ScalingRate = rate
}

// MFD returns the source's distribution, nil when it has none.
func (b *baseSource) MFD() ports.MFD {
	if b.Dist == nil {
		return nil
	}
	return b.Dist
}

func (b *baseSource) cloneBase() baseSource {
	c := *b
	if b.Dist != nil {
		c.Dist = b.Dist.Clone()
	}
	return c
}

// PointSource models seismicity concentrated at a single location.
type PointSource struct {
	baseSource
	Location domain.Point
}

// NewPointSource builds a point source; mfd may be nil.
func NewPointSource(id, trt string, location domain.Point, mfd MFD) *PointSource {
	return &PointSource{
		baseSource: baseSource{ID: id, TRT: trt, Dist: mfd},
		Location:   location,
	}
}

func (s *PointSource) Kind() ports.SourceKind { return ports.KindPoint }

// Clone returns a deep copy.
func (s *PointSource) Clone() ports.Source {
	c := *s
	c.baseSource = s.cloneBase()
	return &c
}

// Modify rejects every operation: point sources expose no mutable geometry
// through the uncertainty pipeline, only their MFD is modified.
func (s *PointSource) Modify(operation string, _ map[string]any) error {
	return fmt.Errorf("%w: %q on point source %q", ports.ErrUnsupportedOperation, operation, s.ID)
}

// AreaSource is a point source spread over a polygonal area.
type AreaSource struct {
	PointSource
	Polygon domain.Line
}

// NewAreaSource builds an area source; mfd may be nil.
func NewAreaSource(id, trt string, polygon domain.Line, mfd MFD) *AreaSource {
	return &AreaSource{
		PointSource: PointSource{baseSource: baseSource{ID: id, TRT: trt, Dist: mfd}},
		Polygon:     polygon,
	}
}

func (s *AreaSource) Kind() ports.SourceKind { return ports.KindArea }

// Clone returns a deep copy.
func (s *AreaSource) Clone() ports.Source {
	c := *s
	c.baseSource = s.cloneBase()
	c.Polygon = append(domain.Line(nil), s.Polygon...)
	return &c
}

// Modify rejects every operation, like PointSource.
func (s *AreaSource) Modify(operation string, _ map[string]any) error {
	return fmt.Errorf("%w: %q on area source %q", ports.ErrUnsupportedOperation, operation, s.ID)
}

// SimpleFaultSource models a fault described by a surface trace, dip and
// seismogenic depths.
type SimpleFaultSource struct {
	baseSource
	Geometry domain.SimpleFaultGeometry
}

// NewSimpleFaultSource builds a simple-fault source; mfd may be nil.
func NewSimpleFaultSource(id, trt string, geometry domain.SimpleFaultGeometry, mfd MFD) *SimpleFaultSource {
	return &SimpleFaultSource{
		baseSource: baseSource{ID: id, TRT: trt, Dist: mfd},
		Geometry:   geometry,
	}
}

func (s *SimpleFaultSource) Kind() ports.SourceKind { return ports.KindSimpleFault }

// Clone returns a deep copy, trace included.
func (s *SimpleFaultSource) Clone() ports.Source {
	c := *s
	c.baseSource = s.cloneBase()
	c.Geometry.Trace = append(domain.Line(nil), s.Geometry.Trace...)
	return &c
}

// Modify supports adjust_dip, set_dip and set_geometry.
func (s *SimpleFaultSource) Modify(operation string, params map[string]any) error {
	switch operation {
	case "adjust_dip":
		var p struct {
			Increment float64 `mapstructure:"increment"`
		}
		if err := decode(params, &p); err != nil {
			return err
		}
		s.Geometry.Dip += p.Increment
	case "set_dip":
		var p struct {
			Dip float64 `mapstructure:"dip"`
		}
		if err := decode(params, &p); err != nil {
			return err
		}
		s.Geometry.Dip = p.Dip
	case "set_geometry":
		var p struct {
			FaultTrace            domain.Line `mapstructure:"fault_trace"`
			UpperSeismogenicDepth float64     `mapstructure:"upper_seismogenic_depth"`
			LowerSeismogenicDepth float64     `mapstructure:"lower_seismogenic_depth"`
			Dip                   float64     `mapstructure:"dip"`
			Spacing               float64     `mapstructure:"spacing"`
		}
		if err := decode(params, &p); err != nil {
			return err
		}
		s.Geometry = domain.SimpleFaultGeometry{
			Trace:            p.FaultTrace,
			UpperSeismoDepth: p.UpperSeismogenicDepth,
			LowerSeismoDepth: p.LowerSeismogenicDepth,
			Dip:              p.Dip,
			Spacing:          p.Spacing,
		}
	default:
		return fmt.Errorf("%w: %q on simple fault source %q", ports.ErrUnsupportedOperation, operation, s.ID)
	}
	return nil
}

// ComplexFaultSource models a fault described by several geometry edges.
type ComplexFaultSource struct {
	baseSource
	Geometry domain.ComplexFaultGeometry
}

// NewComplexFaultSource builds a complex-fault source; mfd may be nil.
func NewComplexFaultSource(id, trt string, geometry domain.ComplexFaultGeometry, mfd MFD) *ComplexFaultSource {
	return &ComplexFaultSource{
		baseSource: baseSource{ID: id, TRT: trt, Dist: mfd},
		Geometry:   geometry,
	}
}

func (s *ComplexFaultSource) Kind() ports.SourceKind { return ports.KindComplexFault }

// Clone returns a deep copy, edges included.
func (s *ComplexFaultSource) Clone() ports.Source {
	c := *s
	c.baseSource = s.cloneBase()
	c.Geometry.Edges = cloneEdges(s.Geometry.Edges)
	return &c
}

// Modify supports set_geometry with an edge list and spacing.
func (s *ComplexFaultSource) Modify(operation string, params map[string]any) error {
	if operation != "set_geometry" {
		return fmt.Errorf("%w: %q on complex fault source %q", ports.ErrUnsupportedOperation, operation, s.ID)
	}
	var p struct {
		Edges   []domain.Line `mapstructure:"edges"`
		Spacing float64       `mapstructure:"spacing"`
	}
	if err := decode(params, &p); err != nil {
		return err
	}
	s.Geometry = domain.ComplexFaultGeometry{Edges: p.Edges, Spacing: p.Spacing}
	return nil
}

// CharacteristicFaultSource models a fault with an explicitly given rupture
// surface, possibly a multi-surface composite.
type CharacteristicFaultSource struct {
	baseSource
	Surface domain.Surface
}

// NewCharacteristicFaultSource builds a characteristic-fault source; mfd may
// be nil.
func NewCharacteristicFaultSource(id, trt string, surface domain.Surface, mfd MFD) *CharacteristicFaultSource {
	return &CharacteristicFaultSource{
		baseSource: baseSource{ID: id, TRT: trt, Dist: mfd},
		Surface:    surface,
	}
}

func (s *CharacteristicFaultSource) Kind() ports.SourceKind { return ports.KindCharacteristicFault }

// MultiSurface reports whether the rupture surface is a composite of more
// than one sub-shape. Such sources cannot be collapsed.
func (s *CharacteristicFaultSource) MultiSurface() bool {
	ms, ok := s.Surface.(domain.MultiSurface)
	return ok && len(ms.Surfaces) > 1
}

// Clone returns a deep copy, surface included.
func (s *CharacteristicFaultSource) Clone() ports.Source {
	c := *s
	c.baseSource = s.cloneBase()
	c.Surface = cloneSurface(s.Surface)
	return &c
}

// Modify supports set_geometry with a pre-built surface or multi-surface.
func (s *CharacteristicFaultSource) Modify(operation string, params map[string]any) error {
	if operation != "set_geometry" {
		return fmt.Errorf("%w: %q on characteristic fault source %q", ports.ErrUnsupportedOperation, operation, s.ID)
	}
	surface, ok := params["surface"].(domain.Surface)
	if !ok {
		return fmt.Errorf("set_geometry on %q: %T is not a surface", s.ID, params["surface"])
	}
	s.Surface = surface
	return nil
}

func cloneEdges(edges []domain.Line) []domain.Line {
	if edges == nil {
		return nil
	}
	out := make([]domain.Line, len(edges))
	for i, e := range edges {
		out[i] = append(domain.Line(nil), e...)
	}
	return out
}

func cloneSurface(surface domain.Surface) domain.Surface {
	switch s := surface.(type) {
	case domain.SimpleFaultGeometry:
		s.Trace = append(domain.Line(nil), s.Trace...)
		return s
	case domain.ComplexFaultGeometry:
		s.Edges = cloneEdges(s.Edges)
		return s
	case domain.MultiSurface:
		surfaces := make([]domain.Surface, len(s.Surfaces))
		for i, sub := range s.Surfaces {
			surfaces[i] = cloneSurface(sub)
		}
		return domain.MultiSurface{Surfaces: surfaces}
	default:
		// PlanarSurface and other value shapes copy by assignment.
		return surface
	}
}
