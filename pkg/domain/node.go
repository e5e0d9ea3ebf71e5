package domain

import "strings"

// Node is the raw representation of an uncertainty-model node as produced by
// an external format parser (XML or equivalent). The engine never parses
// files itself; it consumes nodes like these when turning a branch's raw
// uncertainty into a typed value.
type Node struct {
	Tag      string         `json:"tag" yaml:"tag"`
	Text     string         `json:"text,omitempty" yaml:"text,omitempty"`
	Attr     map[string]any `json:"attr,omitempty" yaml:"attr,omitempty"`
	Children []*Node        `json:"children,omitempty" yaml:"children,omitempty"`
	// Line is the 1-based line number in the originating file, 0 when the
	// producer had no location information.
	Line int `json:"line,omitempty" yaml:"line,omitempty"`
}

// Child returns the first child whose tag contains the given name, or nil.
// Substring matching tolerates namespace-prefixed tags from format parsers.
func (n *Node) Child(tag string) *Node {
	for _, c := range n.Children {
		if strings.Contains(c.Tag, tag) {
			return c
		}
	}
	return nil
}

// ChildrenByTag returns every child whose tag contains the given name.
func (n *Node) ChildrenByTag(tag string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if strings.Contains(c.Tag, tag) {
			out = append(out, c)
		}
	}
	return out
}

// FloatAttr reads a numeric attribute. YAML and JSON producers may deliver
// numbers as float64 or int.
func (n *Node) FloatAttr(key string) (float64, bool) {
	v, ok := n.Attr[key]
	if !ok {
		return 0, false
	}
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	default:
		return 0, false
	}
}
