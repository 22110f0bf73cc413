// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

// Package search finds chains of co-stars connecting two people in a [dataset.Dataset].
//
// The default breadth-first search returns a shortest chain: the first time the target is generated
// it is at its minimum distance from the source, so the search stops immediately.
// When several shortest chains exist any one of them may be returned.
//
// A [Searcher] is safe for concurrent use, each search allocates its own frontier and explored set.
package search

import (
	"context"

	"github.com/sixdegrees/degrees/internal/pkg/logging"
	"github.com/sixdegrees/degrees/pkg/dataset"
	"github.com/sixdegrees/degrees/pkg/frontier"
	"github.com/sixdegrees/degrees/pkg/unique"
)

var log = logging.Log()

type node = frontier.Node[dataset.PersonID, dataset.MovieID]

// Searcher runs searches over a dataset.
type Searcher struct {
	data *dataset.Dataset
	opts Options
}

// New returns a Searcher for d.
func New(d *dataset.Dataset, opts ...Option) *Searcher {
	s := &Searcher{data: d, opts: Options{Strategy: frontier.BreadthFirst}}
	for _, o := range opts {
		o(&s.opts)
	}
	return s
}

// Options in effect for searches.
func (s *Searcher) Options() Options { return s.opts }

// ShortestPath runs a breadth-first search from source to target.
// ok is false if the people are not connected.
func ShortestPath(ctx context.Context, d *dataset.Dataset, source, target dataset.PersonID) (path Path, ok bool, err error) {
	r, err := New(d).Search(ctx, source, target)
	if err != nil {
		return nil, false, err
	}
	return r.Path, r.Connected, nil
}

// Search for a path from source to target.
//
// Not being connected is not an error, it is reported by [Result.Connected].
// Returns an error wrapping [dataset.ErrUnknownPerson] if source or target is not in the dataset,
// or the context error if ctx is cancelled.
func (s *Searcher) Search(ctx context.Context, source, target dataset.PersonID) (*Result, error) {
	for _, id := range []dataset.PersonID{source, target} {
		if _, err := s.data.PersonErr(id); err != nil {
			return nil, err
		}
	}
	w := &walker{
		ctx:      ctx,
		data:     s.data,
		opts:     s.opts,
		target:   target,
		frontier: frontier.New[dataset.PersonID, dataset.MovieID](s.opts.Strategy),
		explored: unique.Set[dataset.PersonID]{},
		result:   &Result{Source: source, Target: target, Strategy: s.opts.Strategy},
	}
	if source == target {
		w.result.Connected, w.result.Path = true, Path{}
		return w.result, nil
	}
	w.frontier.Add(node{State: source, Parent: frontier.NoParent})
	if err := w.loop(); err != nil {
		return nil, err
	}
	log.V(3).Info("search", "source", source, "target", target, "strategy", s.opts.Strategy,
		"connected", w.result.Connected, "degrees", w.result.Degrees(), "explored", w.result.Explored)
	return w.result, nil
}

// walker holds the state of a single search.
type walker struct {
	ctx      context.Context
	data     *dataset.Dataset
	opts     Options
	target   dataset.PersonID
	frontier frontier.Frontier[dataset.PersonID, dataset.MovieID]
	explored unique.Set[dataset.PersonID]
	arena    []node // Expanded nodes, Node.Parent indexes into arena.
	result   *Result
}

// loop expands nodes until the target is found or the frontier is empty.
func (w *walker) loop() error {
	for !w.frontier.Empty() {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		n, err := w.frontier.Remove()
		if err != nil {
			return err
		}
		w.explored.Add(n.State)
		w.result.Explored++
		w.arena = append(w.arena, n)
		if found, err := w.expand(n, len(w.arena)-1); found || err != nil {
			return err
		}
	}
	return nil // Not connected.
}

// expand generates the children of n, which is at index i in the arena.
// Returns true if a child is the target.
func (w *walker) expand(n node, i int) (found bool, err error) {
	if w.opts.MaxDepth > 0 && n.Depth >= w.opts.MaxDepth {
		return false, nil
	}
	neighbors, err := w.data.Neighbors(n.State)
	if err != nil {
		return false, err
	}
	for _, nb := range unique.SortedFunc(neighbors, dataset.Neighbor.Compare) {
		if w.explored.Has(nb.Person) || w.frontier.ContainsState(nb.Person) {
			continue
		}
		child := node{State: nb.Person, Action: nb.Movie, Parent: i, Depth: n.Depth + 1}
		if child.State == w.target {
			w.result.Connected, w.result.Path = true, w.backtrack(child)
			return true, nil
		}
		w.frontier.Add(child)
	}
	return false, nil
}

// backtrack follows parent links from n to the start node, returns the path from start to n.
func (w *walker) backtrack(n node) Path {
	path := make(Path, n.Depth)
	for i := n.Depth - 1; n.Parent != frontier.NoParent; i-- {
		path[i] = Step{Movie: n.Action, Person: n.State}
		n = w.arena[n.Parent]
	}
	return path
}
