// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

package dataset

import (
	"cmp"

	"github.com/sixdegrees/degrees/pkg/unique"
)

// Neighbor is a person reachable by starring in the same movie.
type Neighbor struct {
	Movie  MovieID  `json:"movie"`
	Person PersonID `json:"person"`
}

// Compare orders neighbors by movie then person.
func (n Neighbor) Compare(o Neighbor) int {
	if c := cmp.Compare(n.Movie, o.Movie); c != 0 {
		return c
	}
	return cmp.Compare(n.Person, o.Person)
}

// Neighbors returns a (movie, co-star) pair for every star of every movie that id starred in.
//
// The result includes id itself, paired with each of its movies; callers filter out states they have seen.
// The result is empty if the person has no movies.
// Returns an error wrapping [ErrUnknownPerson] if id is not in the dataset.
func (d *Dataset) Neighbors(id PersonID) (unique.Set[Neighbor], error) {
	p, err := d.PersonErr(id)
	if err != nil {
		return nil, err
	}
	neighbors := unique.Set[Neighbor]{}
	for movie := range p.Movies {
		for star := range d.movies[movie].Stars {
			neighbors.Add(Neighbor{Movie: movie, Person: star})
		}
	}
	return neighbors, nil
}
