// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

package search

import (
	"fmt"
	"strings"

	"github.com/sixdegrees/degrees/pkg/dataset"
	"github.com/sixdegrees/degrees/pkg/frontier"
)

// Step is one link in a path: Person starred in Movie with the person before them.
type Step struct {
	Movie  dataset.MovieID  `json:"movie"`
	Person dataset.PersonID `json:"person"`
}

// Path from a source person to a target, excluding the source.
// The number of steps is the degrees of separation.
type Path []Step

func (p Path) Degrees() int { return len(p) }

func (p Path) String() string {
	b := &strings.Builder{}
	b.WriteString("[")
	for i, s := range p {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(b, "(%v %v)", s.Movie, s.Person)
	}
	b.WriteString("]")
	return b.String()
}

// Result of a search.
type Result struct {
	Source    dataset.PersonID  `json:"source"`
	Target    dataset.PersonID  `json:"target"`
	Strategy  frontier.Strategy `json:"strategy"`
	Connected bool              `json:"connected"`
	// Path is nil if not connected, empty if Source == Target.
	Path Path `json:"path"`
	// Explored is the number of people expanded by the search.
	Explored int `json:"explored"`
}

// Degrees of separation, -1 if not connected.
func (r *Result) Degrees() int {
	if !r.Connected {
		return -1
	}
	return r.Path.Degrees()
}
