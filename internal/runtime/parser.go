package runtime

import (
	"strconv"
	"strings"

	"github.com/quakeforge/logictree/pkg/domain"
)

// parseFunc turns the raw node of one branch into a typed uncertainty value.
type parseFunc func(utype domain.UncertaintyType, node *domain.Node, filename string) (any, error)

// parseTable is the closed dispatch table over uncertainty types. Tags absent
// from the table fall back to parseDefault, which expects a single float
// literal.
var parseTable = map[domain.UncertaintyType]parseFunc{
	domain.SourceModel:                         parseModelRef,
	domain.ExtendModel:                         parseModelRef,
	domain.GMPEModel:                           parseModelRef,
	domain.ABGRAbsolute:                        parseABPair,
	domain.IncrementalMFDAbsolute:              parseIncrementalMFD,
	domain.SimpleFaultGeometryAbsolute:         parseSimpleFaultGeometry,
	domain.ComplexFaultGeometryAbsolute:        parseComplexFaultGeometry,
	domain.CharacteristicFaultGeometryAbsolute: parseCharacteristicGeometry,
}

// ParseUncertainty dispatches on the uncertainty type and produces the typed
// value for one branch. Failures are always *domain.LogicTreeError carrying
// the offending node's location.
func ParseUncertainty(utype domain.UncertaintyType, node *domain.Node, filename string) (any, error) {
	if fn, ok := parseTable[utype]; ok {
		return fn(utype, node, filename)
	}
	return parseDefault(utype, node, filename)
}

func parseDefault(_ domain.UncertaintyType, node *domain.Node, filename string) (any, error) {
	text := ""
	if node != nil {
		text = strings.TrimSpace(node.Text)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, domain.NewLogicTreeError(node, filename, "expected single float value")
	}
	return v, nil
}

func parseModelRef(_ domain.UncertaintyType, node *domain.Node, _ string) (any, error) {
	return strings.TrimSpace(node.Text), nil
}

func parseABPair(_ domain.UncertaintyType, node *domain.Node, filename string) (any, error) {
	fields := strings.Fields(node.Text)
	if len(fields) == 2 {
		a, errA := strconv.ParseFloat(fields[0], 64)
		b, errB := strconv.ParseFloat(fields[1], 64)
		if errA == nil && errB == nil {
			return domain.ABValues{A: a, B: b}, nil
		}
	}
	return nil, domain.NewLogicTreeError(
		node, filename, "expected a pair of floats separated by space")
}

func parseIncrementalMFD(_ domain.UncertaintyType, node *domain.Node, filename string) (any, error) {
	mfdNode := node.Child("incrementalMFD")
	if mfdNode == nil {
		return nil, domain.NewLogicTreeError(
			node, filename, "expected an 'incrementalMFD' node")
	}
	minMag, okMin := mfdNode.FloatAttr("minMag")
	binWidth, okBin := mfdNode.FloatAttr("binWidth")
	rates := mfdNode.Child("occurRates")
	if !okMin || !okBin || rates == nil {
		return nil, domain.NewLogicTreeError(
			mfdNode, filename, "'incrementalMFD' node needs minMag, binWidth and occurRates")
	}
	occur, err := parseFloats(rates.Text)
	if err != nil || len(occur) == 0 {
		return nil, domain.NewLogicTreeError(
			rates, filename, "'occurRates' node is not a sequence of floats")
	}
	return domain.IncrementalMFD{MinMag: minMag, BinWidth: binWidth, OccurRates: occur}, nil
}

func parseSimpleFaultGeometry(utype domain.UncertaintyType, node *domain.Node, filename string) (any, error) {
	if g := node.Child("simpleFaultGeometry"); g != nil {
		node = g
	}
	if err := validateSimpleFaultGeometry(node, filename); err != nil {
		return nil, err
	}
	spacing, _ := node.FloatAttr("spacing")
	usd := childFloat(node, "upperSeismoDepth")
	lsd := childFloat(node, "lowerSeismoDepth")
	dip := childFloat(node, "dip")
	trace, _ := splitCoords2D(posListText(node))
	return domain.SimpleFaultGeometry{
		Trace:            trace,
		UpperSeismoDepth: usd,
		LowerSeismoDepth: lsd,
		Dip:              dip,
		Spacing:          spacing,
	}, nil
}

func parseComplexFaultGeometry(utype domain.UncertaintyType, node *domain.Node, filename string) (any, error) {
	if g := node.Child("complexFaultGeometry"); g != nil {
		node = g
	}
	if err := validateComplexFaultGeometry(node, filename); err != nil {
		return nil, err
	}
	spacing, _ := node.FloatAttr("spacing")
	var edges []domain.Line
	for _, edgeNode := range node.ChildrenByTag("Edge") {
		edge, _ := splitCoords3D(posListText(edgeNode))
		edges = append(edges, edge)
	}
	return domain.ComplexFaultGeometry{Edges: edges, Spacing: spacing}, nil
}

func parseCharacteristicGeometry(utype domain.UncertaintyType, node *domain.Node, filename string) (any, error) {
	surfaceNode := node.Child("surface")
	if surfaceNode == nil {
		return nil, domain.NewLogicTreeError(node, filename, "expected a 'surface' node")
	}
	var surfaces []domain.Surface
	for _, geomNode := range surfaceNode.Children {
		switch {
		case strings.Contains(geomNode.Tag, "simpleFaultGeometry"):
			v, err := parseSimpleFaultGeometry(utype, geomNode, filename)
			if err != nil {
				return nil, err
			}
			surfaces = append(surfaces, v.(domain.SimpleFaultGeometry))
		case strings.Contains(geomNode.Tag, "complexFaultGeometry"):
			v, err := parseComplexFaultGeometry(utype, geomNode, filename)
			if err != nil {
				return nil, err
			}
			surfaces = append(surfaces, v.(domain.ComplexFaultGeometry))
		case strings.Contains(geomNode.Tag, "planarSurface"):
			surface, err := parsePlanarSurface(geomNode, filename)
			if err != nil {
				return nil, err
			}
			surfaces = append(surfaces, surface)
		default:
			return nil, domain.NewLogicTreeError(
				geomNode, filename, "surface geometry type not recognised")
		}
	}
	if len(surfaces) == 0 {
		return nil, domain.NewLogicTreeError(
			surfaceNode, filename, "'surface' node carries no geometry")
	}
	if len(surfaces) > 1 {
		return domain.MultiSurface{Surfaces: surfaces}, nil
	}
	return surfaces[0], nil
}

func parsePlanarSurface(node *domain.Node, filename string) (domain.Surface, error) {
	if err := validatePlanarSurface(node, filename); err != nil {
		return nil, err
	}
	corners := make([]domain.Point, 0, 4)
	for _, key := range []string{"topLeft", "topRight", "bottomRight", "bottomLeft"} {
		c := node.Child(key)
		lon, _ := c.FloatAttr("lon")
		lat, _ := c.FloatAttr("lat")
		depth, _ := c.FloatAttr("depth")
		corners = append(corners, domain.Point{Lon: lon, Lat: lat, Depth: depth})
	}
	return domain.PlanarSurface{
		TopLeft:     corners[0],
		TopRight:    corners[1],
		BottomRight: corners[2],
		BottomLeft:  corners[3],
	}, nil
}

// validations

func validateSimpleFaultGeometry(node *domain.Node, filename string) error {
	trace, err := splitCoords2D(posListText(node))
	spacing, _ := node.FloatAttr("spacing")
	if err != nil || trace.Validate() != nil || spacing <= 0 {
		return domain.NewLogicTreeError(
			node, filename, "'simpleFaultGeometry' node is not valid")
	}
	return nil
}

func validateComplexFaultGeometry(node *domain.Node, filename string) error {
	spacing, _ := node.FloatAttr("spacing")
	edgeNodes := node.ChildrenByTag("Edge")
	valid := spacing > 0 && len(edgeNodes) > 0
	for _, edgeNode := range edgeNodes {
		edge, err := splitCoords3D(posListText(edgeNode))
		if err != nil || edge.Validate() != nil {
			valid = false
		}
	}
	if !valid {
		return domain.NewLogicTreeError(
			node, filename, "'complexFaultGeometry' node is not valid")
	}
	return nil
}

func validatePlanarSurface(node *domain.Node, filename string) error {
	spacing, _ := node.FloatAttr("spacing")
	valid := spacing > 0
	for _, key := range []string{"topLeft", "topRight", "bottomLeft", "bottomRight"} {
		corner := node.Child(key)
		if corner == nil {
			valid = false
			continue
		}
		lon, _ := corner.FloatAttr("lon")
		lat, _ := corner.FloatAttr("lat")
		depth, _ := corner.FloatAttr("depth")
		if (domain.Point{Lon: lon, Lat: lat, Depth: depth}).Validate() != nil {
			valid = false
		}
	}
	if !valid {
		return domain.NewLogicTreeError(
			node, filename, "'planarFaultGeometry' node is not valid")
	}
	return nil
}

// helpers

// posListText finds the coordinate list of a geometry node, tolerating an
// intermediate LineString wrapper.
func posListText(node *domain.Node) string {
	target := node
	if ls := node.Child("LineString"); ls != nil {
		target = ls
	}
	if pl := target.Child("posList"); pl != nil {
		return pl.Text
	}
	return ""
}

func childFloat(node *domain.Node, tag string) float64 {
	c := node.Child(tag)
	if c == nil {
		return 0
	}
	v, _ := strconv.ParseFloat(strings.TrimSpace(c.Text), 64)
	return v
}

func parseFloats(text string) ([]float64, error) {
	fields := strings.Fields(text)
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// splitCoords2D splits a flat "lon lat lon lat ..." list into points.
func splitCoords2D(text string) (domain.Line, error) {
	coords, err := parseFloats(text)
	if err != nil {
		return nil, err
	}
	if len(coords) == 0 || len(coords)%2 != 0 {
		return nil, strconv.ErrSyntax
	}
	line := make(domain.Line, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		line = append(line, domain.Point{Lon: coords[i], Lat: coords[i+1]})
	}
	return line, nil
}

// splitCoords3D splits a flat "lon lat depth ..." list into points.
func splitCoords3D(text string) (domain.Line, error) {
	coords, err := parseFloats(text)
	if err != nil {
		return nil, err
	}
	if len(coords) == 0 || len(coords)%3 != 0 {
		return nil, strconv.ErrSyntax
	}
	line := make(domain.Line, 0, len(coords)/3)
	for i := 0; i < len(coords); i += 3 {
		line = append(line, domain.Point{Lon: coords[i], Lat: coords[i+1], Depth: coords[i+2]})
	}
	return line, nil
}
