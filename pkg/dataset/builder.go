// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

package dataset

import (
	"fmt"

	"github.com/sixdegrees/degrees/pkg/unique"
)

// Builder assembles a Dataset. A Builder is not safe for concurrent use.
//
// People and movies must be added before the star links that refer to them.
type Builder struct{ d *Dataset }

func NewBuilder() *Builder {
	return &Builder{d: &Dataset{
		people: map[PersonID]*Person{},
		movies: map[MovieID]*Movie{},
		names:  map[string]unique.Set[PersonID]{},
	}}
}

// AddPerson adds a person with no movies and indexes their name.
// Returns an error wrapping [ErrDuplicateID] if id is already present, the existing person is unchanged.
func (b *Builder) AddPerson(id PersonID, name string, birth int) error {
	if _, ok := b.d.people[id]; ok {
		return fmt.Errorf("%w: person %q", ErrDuplicateID, id)
	}
	b.d.people[id] = &Person{ID: id, Name: name, Birth: birth, Movies: unique.Set[MovieID]{}}
	key := NameKey(name)
	if b.d.names[key] == nil {
		b.d.names[key] = unique.Set[PersonID]{}
	}
	b.d.names[key].Add(id)
	b.d.stats.People++
	return nil
}

// AddMovie adds a movie with no stars.
// Returns an error wrapping [ErrDuplicateID] if id is already present, the existing movie is unchanged.
func (b *Builder) AddMovie(id MovieID, title string, year int) error {
	if _, ok := b.d.movies[id]; ok {
		return fmt.Errorf("%w: movie %q", ErrDuplicateID, id)
	}
	b.d.movies[id] = &Movie{ID: id, Title: title, Year: year, Stars: unique.Set[PersonID]{}}
	b.d.stats.Movies++
	return nil
}

// AddStar links a person to a movie they starred in.
// If either does not exist the link is dropped, counted in [Stats].Dropped, and AddStar returns false.
func (b *Builder) AddStar(person PersonID, movie MovieID) bool {
	p, m := b.d.people[person], b.d.movies[movie]
	if p == nil || m == nil {
		b.d.stats.Dropped++
		return false
	}
	if p.Movies.Add(movie) > 0 {
		m.Stars.Add(person)
		b.d.stats.Stars++
	}
	return true
}

// Dataset returns the assembled Dataset. The Builder must not be used afterwards.
func (b *Builder) Dataset() *Dataset {
	d := b.d
	b.d = nil
	return d
}
