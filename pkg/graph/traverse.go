// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

package graph

import (
	"cmp"
	"slices"

	"github.com/sixdegrees/degrees/pkg/dataset"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"
)

// Neighbourhood returns the subgraph of people within the given degrees of source, with the movies that join them.
// Returns nil if source is not in the graph.
func (g *Graph) Neighbourhood(source dataset.PersonID, degrees int) *Graph {
	start := g.people[source]
	if start == nil {
		return nil
	}
	var nodes []graph.Node
	// Each degree is two edges, people are at even depths.
	limit := 2 * max(degrees, 0)
	var bf traverse.BreadthFirst
	bf.Walk(g, start, func(n graph.Node, d int) bool {
		if d > limit {
			return true
		}
		nodes = append(nodes, n)
		return false
	})
	log.V(4).Info("neighbourhood", "source", source, "degrees", degrees, "nodes", len(nodes))
	return g.NodesSubgraph(nodes)
}

// Components returns the people in each connected component, largest first.
// People in the same component are connected by some path, people in different components are not.
// Each component is sorted by person id, components of equal size are ordered by their first id.
func (g *Graph) Components() [][]dataset.PersonID {
	var people [][]dataset.PersonID
	for _, cc := range topo.ConnectedComponents(g) {
		var ids []dataset.PersonID
		for _, n := range cc {
			if p := n.(*Node).Person; p != nil {
				ids = append(ids, p.ID)
			}
		}
		if len(ids) == 0 {
			continue // Movie with no stars.
		}
		slices.Sort(ids)
		people = append(people, ids)
	}
	slices.SortFunc(people, func(a, b []dataset.PersonID) int {
		return cmp.Or(cmp.Compare(len(b), len(a)), cmp.Compare(a[0], b[0]))
	})
	return people
}

// Distance returns the degrees of separation between two people, or -1 if they are not connected.
func (g *Graph) Distance(a, b dataset.PersonID) int {
	from, to := g.people[a], g.people[b]
	if from == nil || to == nil {
		return -1
	}
	distance := -1
	var bf traverse.BreadthFirst
	bf.Walk(g, from, func(n graph.Node, d int) bool {
		if n.ID() == to.ID() {
			distance = d / 2
			return true
		}
		return false
	})
	return distance
}
