// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

package frontier

// Stack is a last-in, first-out Frontier.
type Stack[S, A comparable] struct {
	nodes  []Node[S, A]
	states states[S]
}

func NewStack[S, A comparable]() *Stack[S, A] { return &Stack[S, A]{states: states[S]{}} }

func (s *Stack[S, A]) Add(n Node[S, A]) {
	s.nodes = append(s.nodes, n)
	s.states.inc(n.State)
}

func (s *Stack[S, A]) Remove() (n Node[S, A], err error) {
	if s.Empty() {
		return n, ErrEmptyFrontier
	}
	last := len(s.nodes) - 1
	n = s.nodes[last]
	s.nodes = s.nodes[:last]
	s.states.dec(n.State)
	return n, nil
}

func (s *Stack[S, A]) ContainsState(state S) bool { return s.states[state] > 0 }
func (s *Stack[S, A]) Empty() bool                { return len(s.nodes) == 0 }
func (s *Stack[S, A]) Len() int                   { return len(s.nodes) }
