// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

package rest

import (
	"encoding/json"

	"github.com/sixdegrees/degrees/pkg/dataset"
	"github.com/sixdegrees/degrees/pkg/search"
	"github.com/sixdegrees/degrees/pkg/unique"
)

// Array is a slice that serializes to JSON as '[]' not 'null' for a nil value.
type Array[T any] []T

func (a Array[T]) MarshalJSON() ([]byte, error) {
	if a == nil {
		return json.Marshal([]T{})
	}
	return json.Marshal([]T(a))
}

// PersonRef identifies a person.
type PersonRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Birth int    `json:"birth,omitempty" jsonschema:"Year of birth or zero if unknown"`
}

// MovieRef identifies a movie.
type MovieRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Year  int    `json:"year,omitempty"`
}

// Person with the movies they starred in.
type Person struct {
	PersonRef
	Movies Array[MovieRef] `json:"movies"`
}

// Movie with its stars.
type Movie struct {
	MovieRef
	Stars Array[PersonRef] `json:"stars"`
}

// Step is one degree of separation: the movie joining the previous person to this one.
type Step struct {
	Movie  string `json:"movie"`
	Title  string `json:"title"`
	Person string `json:"person"`
	Name   string `json:"name"`
}

// PathResult is the result of a search between two people.
type PathResult struct {
	Source    string      `json:"source"`
	Target    string      `json:"target"`
	Connected bool        `json:"connected"`
	Degrees   int         `json:"degrees" jsonschema:"Length of the path or -1 if not connected"`
	Steps     Array[Step] `json:"steps"`
}

// Error response body.
type Error struct {
	Error      string           `json:"error"`
	Candidates Array[PersonRef] `json:"candidates,omitempty"`
}

// Stats counts records in the dataset.
type Stats = dataset.Stats

func NewPersonRef(p *dataset.Person) PersonRef {
	return PersonRef{ID: string(p.ID), Name: p.Name, Birth: p.Birth}
}

func NewPeopleRefs(people []*dataset.Person) Array[PersonRef] {
	refs := make(Array[PersonRef], len(people))
	for i, p := range people {
		refs[i] = NewPersonRef(p)
	}
	return refs
}

func NewMovieRef(m *dataset.Movie) MovieRef {
	return MovieRef{ID: string(m.ID), Title: m.Title, Year: m.Year}
}

// NewPerson returns p with its movies in id order.
func NewPerson(d *dataset.Dataset, p *dataset.Person) *Person {
	r := &Person{PersonRef: NewPersonRef(p), Movies: Array[MovieRef]{}}
	for _, id := range unique.Sorted(p.Movies) {
		r.Movies = append(r.Movies, NewMovieRef(d.Movie(id)))
	}
	return r
}

// NewMovie returns m with its stars in id order.
func NewMovie(d *dataset.Dataset, m *dataset.Movie) *Movie {
	r := &Movie{MovieRef: NewMovieRef(m), Stars: Array[PersonRef]{}}
	for _, id := range unique.Sorted(m.Stars) {
		r.Stars = append(r.Stars, NewPersonRef(d.Person(id)))
	}
	return r
}

// NewPathResult converts a search result, looking up names and titles in d.
func NewPathResult(d *dataset.Dataset, r *search.Result) *PathResult {
	pr := &PathResult{
		Source:    string(r.Source),
		Target:    string(r.Target),
		Connected: r.Connected,
		Degrees:   r.Degrees(),
		Steps:     make(Array[Step], 0, len(r.Path)),
	}
	for _, s := range r.Path {
		pr.Steps = append(pr.Steps, Step{
			Movie:  string(s.Movie),
			Title:  d.Movie(s.Movie).Title,
			Person: string(s.Person),
			Name:   d.Person(s.Person).Name,
		})
	}
	return pr
}
