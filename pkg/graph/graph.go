// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

// Package graph presents people and movies from a [dataset.Dataset] as an undirected bipartite gonum graph.
//
// Every person and movie is a node, a person is joined to each movie they starred in.
// One degree of separation is two graph edges: person to movie to person.
//
// Functions in this package render search results and compute statistics.
// The search itself is in package [search], which does not need a graph.
package graph

import (
	"fmt"
	"maps"
	"slices"

	"github.com/sixdegrees/degrees/internal/pkg/logging"
	"github.com/sixdegrees/degrees/pkg/dataset"
	"github.com/sixdegrees/degrees/pkg/search"
	"github.com/sixdegrees/degrees/pkg/unique"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

var log = logging.Log()

// Node is a person or a movie, exactly one of Person or Movie is set.
type Node struct {
	id     int64
	Person *dataset.Person
	Movie  *dataset.Movie
	Attrs  Attrs
}

func (n *Node) ID() int64 { return n.id }

// DOTID is unique among people and movies.
func (n *Node) DOTID() string {
	if n.Person != nil {
		return "person/" + string(n.Person.ID)
	}
	return "movie/" + string(n.Movie.ID)
}

func (n *Node) String() string {
	if n.Person != nil {
		return n.Person.Name
	}
	return n.Movie.Title
}

func (n *Node) Attributes() []encoding.Attribute {
	a := Attrs{"label": n.String()}
	if n.Movie != nil {
		a["shape"] = "box"
		if n.Movie.Year != 0 {
			a["label"] = fmt.Sprintf("%v (%v)", n.Movie.Title, n.Movie.Year)
		}
	}
	for k, v := range n.Attrs {
		a[k] = v
	}
	return a.Attributes()
}

// Edge joins a person and a movie.
type Edge struct {
	F, T  *Node
	Attrs Attrs
}

func (e Edge) From() graph.Node                  { return e.F }
func (e Edge) To() graph.Node                    { return e.T }
func (e Edge) Attributes() []encoding.Attribute { return e.Attrs.Attributes() }

func (e Edge) ReversedEdge() graph.Edge {
	e.F, e.T = e.T, e.F
	return e
}

// Graph is an undirected graph of person and movie nodes.
//
// Concurrency: Graph is mutable, normal concurrency rules apply regarding read/write operations.
// The underlying dataset is immutable.
type Graph struct {
	*simple.UndirectedGraph
	GraphAttrs, NodeAttrs, EdgeAttrs Attrs
	Data                             *dataset.Dataset

	people map[dataset.PersonID]*Node
	movies map[dataset.MovieID]*Node
	nextID int64
}

// New empty graph for people and movies in d.
func New(d *dataset.Dataset) *Graph {
	return &Graph{
		UndirectedGraph: simple.NewUndirectedGraph(),
		GraphAttrs:      Attrs{"fontname": "Helvetica", "fontsize": "12", "layout": "dot", "rankdir": "LR"},
		NodeAttrs:       Attrs{"fontname": "Helvetica", "fontsize": "12"},
		EdgeAttrs:       Attrs{"fontname": "Helvetica", "fontsize": "12"},
		Data:            d,
		people:          map[dataset.PersonID]*Node{},
		movies:          map[dataset.MovieID]*Node{},
	}
}

// Full returns a graph of every person and movie in d.
// Node ids are assigned in sorted order of dataset ids, people first, so they are stable for a dataset.
func Full(d *dataset.Dataset) *Graph {
	g := New(d)
	for _, id := range d.PersonIDs() {
		g.PersonNode(id)
	}
	for _, id := range d.MovieIDs() {
		g.MovieNode(id)
		for _, p := range unique.Sorted(d.Movie(id).Stars) {
			g.Link(p, id)
		}
	}
	return g
}

// PersonNode returns the node for a person, adding it if needed.
// Returns nil if the person is not in the dataset.
func (g *Graph) PersonNode(id dataset.PersonID) *Node {
	if n := g.people[id]; n != nil {
		return n
	}
	p := g.Data.Person(id)
	if p == nil {
		return nil
	}
	n := &Node{id: g.newID(), Person: p}
	g.people[id] = n
	g.AddNode(n)
	return n
}

// MovieNode returns the node for a movie, adding it if needed.
// Returns nil if the movie is not in the dataset.
func (g *Graph) MovieNode(id dataset.MovieID) *Node {
	if n := g.movies[id]; n != nil {
		return n
	}
	m := g.Data.Movie(id)
	if m == nil {
		return nil
	}
	n := &Node{id: g.newID(), Movie: m}
	g.movies[id] = n
	g.AddNode(n)
	return n
}

// Link adds an edge between a person and a movie, adding the nodes if needed.
// Returns the edge, or nil if either is missing from the dataset.
func (g *Graph) Link(person dataset.PersonID, movie dataset.MovieID) *Edge {
	p, m := g.PersonNode(person), g.MovieNode(movie)
	if p == nil || m == nil {
		return nil
	}
	if e, ok := g.EdgeBetween(p.ID(), m.ID()).(Edge); ok {
		return &e
	}
	e := Edge{F: p, T: m}
	g.SetEdge(e)
	return &e
}

// People in the graph, ordered by id.
func (g *Graph) People() []*dataset.Person {
	people := make([]*dataset.Person, 0, len(g.people))
	for _, id := range slices.Sorted(maps.Keys(g.people)) {
		people = append(people, g.people[id].Person)
	}
	return people
}

// Movies in the graph, ordered by id.
func (g *Graph) Movies() []*dataset.Movie {
	movies := make([]*dataset.Movie, 0, len(g.movies))
	for _, id := range slices.Sorted(maps.Keys(g.movies)) {
		movies = append(movies, g.movies[id].Movie)
	}
	return movies
}

func (g *Graph) newID() int64 {
	id := g.nextID
	g.nextID++
	return id
}

// Path returns a graph of the chain of people and movies in a search path starting at source.
// The source and target people are highlighted.
func Path(d *dataset.Dataset, source dataset.PersonID, path search.Path) *Graph {
	g := New(d)
	prev := source
	start := g.PersonNode(source)
	if start == nil {
		return g
	}
	start.Attrs = Attrs{"style": "bold"}
	for _, s := range path {
		g.Link(prev, s.Movie)
		g.Link(s.Person, s.Movie)
		prev = s.Person
	}
	if end := g.PersonNode(prev); end != nil && len(path) > 0 {
		end.Attrs = Attrs{"style": "bold"}
	}
	return g
}

// NodesSubgraph returns a new graph containing nodes and all edges between them.
func (g *Graph) NodesSubgraph(nodes []graph.Node) *Graph {
	sub := New(g.Data)
	for _, n := range nodes {
		if n := n.(*Node); n.Person != nil {
			sub.PersonNode(n.Person.ID)
		} else {
			sub.MovieNode(n.Movie.ID)
		}
	}
	for _, n := range nodes {
		n := n.(*Node)
		if n.Person == nil {
			continue
		}
		to := g.From(n.ID())
		for to.Next() {
			if m := to.Node().(*Node); m.Movie != nil && sub.movies[m.Movie.ID] != nil {
				sub.Link(n.Person.ID, m.Movie.ID)
			}
		}
	}
	return sub
}

func (g *Graph) DOTAttributers() (graph, node, edge encoding.Attributer) {
	return g.GraphAttrs, g.NodeAttrs, g.EdgeAttrs
}

// DOT renders the graph in Graphviz DOT format.
func (g *Graph) DOT(name string) ([]byte, error) { return dot.Marshal(g, name, "", "  ") }
