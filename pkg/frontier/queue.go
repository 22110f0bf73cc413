// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

package frontier

// Queue is a first-in, first-out Frontier.
type Queue[S, A comparable] struct {
	nodes  []Node[S, A]
	head   int
	states states[S]
}

func NewQueue[S, A comparable]() *Queue[S, A] { return &Queue[S, A]{states: states[S]{}} }

func (q *Queue[S, A]) Add(n Node[S, A]) {
	q.nodes = append(q.nodes, n)
	q.states.inc(n.State)
}

func (q *Queue[S, A]) Remove() (n Node[S, A], err error) {
	if q.Empty() {
		return n, ErrEmptyFrontier
	}
	n = q.nodes[q.head]
	q.nodes[q.head] = Node[S, A]{}
	q.head++
	if q.head == len(q.nodes) { // Drained, reuse the backing array.
		q.nodes, q.head = q.nodes[:0], 0
	}
	q.states.dec(n.State)
	return n, nil
}

func (q *Queue[S, A]) ContainsState(s S) bool { return q.states[s] > 0 }
func (q *Queue[S, A]) Empty() bool            { return q.Len() == 0 }
func (q *Queue[S, A]) Len() int               { return len(q.nodes) - q.head }
