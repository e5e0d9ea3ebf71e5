package domain

import "fmt"

// Geometry types are payload carriers for absolute-geometry uncertainties.
// The engine validates coordinate ranges only; surface construction and
// geodetic math belong to the source-model collaborator.

// Point is a geographic position with depth in km.
type Point struct {
	Lon   float64 `json:"lon" yaml:"lon"`
	Lat   float64 `json:"lat" yaml:"lat"`
	Depth float64 `json:"depth" yaml:"depth"`
}

// Validate checks the coordinate ranges: longitude in [-180, 180], latitude
// in [-90, 90], non-negative depth.
func (p Point) Validate() error {
	if p.Lon < -180 || p.Lon > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", p.Lon)
	}
	if p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", p.Lat)
	}
	if p.Depth < 0 {
		return fmt.Errorf("negative depth %v", p.Depth)
	}
	return nil
}

// Line is an ordered sequence of points, e.g. a fault trace or edge.
type Line []Point

// Validate checks every point and requires at least two of them.
func (l Line) Validate() error {
	if len(l) < 2 {
		return fmt.Errorf("a line needs at least 2 points, got %d", len(l))
	}
	for i, p := range l {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("point %d: %w", i, err)
		}
	}
	return nil
}

// Surface is the closed set of geometry shapes a characteristic-fault
// uncertainty may carry.
type Surface interface {
	isSurface()
}

// SimpleFaultGeometry is a fault trace with seismogenic depths, dip and mesh
// spacing.
type SimpleFaultGeometry struct {
	Trace            Line    `json:"trace" yaml:"trace"`
	UpperSeismoDepth float64 `json:"upper_seismo_depth" yaml:"upper_seismo_depth"`
	LowerSeismoDepth float64 `json:"lower_seismo_depth" yaml:"lower_seismo_depth"`
	Dip              float64 `json:"dip" yaml:"dip"`
	Spacing          float64 `json:"spacing" yaml:"spacing"`
}

func (SimpleFaultGeometry) isSurface() {}

// ComplexFaultGeometry is a multi-edge fault description with mesh spacing.
type ComplexFaultGeometry struct {
	Edges   []Line  `json:"edges" yaml:"edges"`
	Spacing float64 `json:"spacing" yaml:"spacing"`
}

func (ComplexFaultGeometry) isSurface() {}

// PlanarSurface is a quadrilateral defined by its four corner points.
type PlanarSurface struct {
	TopLeft     Point `json:"top_left" yaml:"top_left"`
	TopRight    Point `json:"top_right" yaml:"top_right"`
	BottomRight Point `json:"bottom_right" yaml:"bottom_right"`
	BottomLeft  Point `json:"bottom_left" yaml:"bottom_left"`
}

func (PlanarSurface) isSurface() {}

// Corners returns the corner points in topLeft, topRight, bottomRight,
// bottomLeft order.
func (s PlanarSurface) Corners() [4]Point {
	return [4]Point{s.TopLeft, s.TopRight, s.BottomRight, s.BottomLeft}
}

// MultiSurface is a composite of two or more sub-surfaces. The parser builds
// one only when a characteristic-fault geometry carries more than one
// sub-shape.
type MultiSurface struct {
	Surfaces []Surface `json:"surfaces" yaml:"surfaces"`
}

func (MultiSurface) isSurface() {}

// ABValues is the (a, b) pair of a Gutenberg-Richter MFD.
type ABValues struct {
	A float64 `json:"a" yaml:"a"`
	B float64 `json:"b" yaml:"b"`
}

// IncrementalMFD is an evenly discretized magnitude-frequency distribution:
// occurrence rates per bin starting at MinMag with the given bin width.
type IncrementalMFD struct {
	MinMag     float64   `json:"min_mag" yaml:"min_mag"`
	BinWidth   float64   `json:"bin_width" yaml:"bin_width"`
	OccurRates []float64 `json:"occur_rates" yaml:"occur_rates"`
}
