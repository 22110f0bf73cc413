// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

// Package frontier holds search nodes that have been discovered but not yet expanded.
//
// The order nodes are removed decides the search: a [Queue] gives breadth-first search,
// a [Stack] gives depth-first search.
// Frontiers do not de-duplicate nodes, callers use [Frontier.ContainsState] to avoid adding a state twice.
// A Frontier is owned by a single search and is not safe for concurrent use.
package frontier

import (
	"errors"
	"fmt"
)

// ErrEmptyFrontier is returned by Remove if there are no nodes.
var ErrEmptyFrontier = errors.New("frontier: empty frontier")

// NoParent is the [Node.Parent] of a start node.
const NoParent = -1

// Node is a search state with the action that reached it.
type Node[S, A comparable] struct {
	State  S
	Action A   // Action that leads from the parent to State, zero for the start node.
	Parent int // Index of the parent in the search's node arena, NoParent for the start node.
	Depth  int // Number of actions from the start node.
}

// Frontier is an ordered collection of nodes.
type Frontier[S, A comparable] interface {
	// Add a node, duplicates are allowed.
	Add(Node[S, A])
	// Remove and return the next node, or return ErrEmptyFrontier.
	Remove() (Node[S, A], error)
	// ContainsState returns true if any node in the frontier has state s.
	ContainsState(s S) bool
	Empty() bool
	Len() int
}

// Strategy selects the removal order of a frontier.
type Strategy string

const (
	BreadthFirst Strategy = "bfs" // First in, first out.
	DepthFirst   Strategy = "dfs" // Last in, first out.
)

// Strategies lists the valid strategies.
var Strategies = []string{string(BreadthFirst), string(DepthFirst)}

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case BreadthFirst, DepthFirst:
		return Strategy(s), nil
	case "":
		return BreadthFirst, nil
	default:
		return "", fmt.Errorf("frontier: invalid strategy %q, expected one of %v", s, Strategies)
	}
}

// New returns an empty frontier for strategy s. Unknown strategies get a Queue.
func New[S, A comparable](s Strategy) Frontier[S, A] {
	if s == DepthFirst {
		return NewStack[S, A]()
	}
	return NewQueue[S, A]()
}

// states counts the nodes held for each state.
type states[S comparable] map[S]int

func (c states[S]) inc(s S) { c[s]++ }
func (c states[S]) dec(s S) {
	if c[s] <= 1 {
		delete(c, s)
	} else {
		c[s]--
	}
}
