// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

package graph

import (
	"maps"
	"slices"

	"gonum.org/v1/gonum/graph/encoding"
)

// Attributes for nodes and edges rendered by Graphviz.
type Attrs map[string]string

var (
	_ encoding.Attributer = Attrs{}
	_ encoding.Attributer = &Node{}
	_ encoding.Attributer = Edge{}
)

// Attributes in key order, so rendered output is stable.
func (a Attrs) Attributes() []encoding.Attribute {
	enc := make([]encoding.Attribute, 0, len(a))
	for _, k := range slices.Sorted(maps.Keys(a)) {
		enc = append(enc, encoding.Attribute{Key: k, Value: a[k]})
	}
	return enc
}
