// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

// Package dataset holds the people and movies that a degrees search runs over.
//
// A [Dataset] is assembled once by a [Builder] and is read-only afterwards.
// Read-only access is safe from any number of goroutines.
// Records returned by a Dataset are shared with it and must not be modified.
package dataset

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/sixdegrees/degrees/pkg/unique"
)

var (
	ErrUnknownPerson = errors.New("dataset: unknown person")
	ErrUnknownMovie  = errors.New("dataset: unknown movie")
	ErrDuplicateID   = errors.New("dataset: duplicate id")
)

// PersonID is an opaque identifier, unique among people.
type PersonID string

// MovieID is an opaque identifier, unique among movies.
type MovieID string

// Person is someone who may star in movies.
type Person struct {
	ID    PersonID `json:"id"`
	Name  string   `json:"name"`
	Birth int      `json:"birth,omitempty"` // Zero if unknown.
	// Movies this person starred in.
	Movies unique.Set[MovieID] `json:"-"`
}

func (p *Person) String() string { return fmt.Sprintf("%v(%v)", p.Name, p.ID) }

// Movie with the people who starred in it.
type Movie struct {
	ID    MovieID `json:"id"`
	Title string  `json:"title"`
	Year  int     `json:"year,omitempty"` // Zero if unknown.
	// Stars of this movie.
	Stars unique.Set[PersonID] `json:"-"`
}

func (m *Movie) String() string { return fmt.Sprintf("%v(%v)", m.Title, m.ID) }

// Stats counts the records in a Dataset.
type Stats struct {
	People  int `json:"people"`
	Movies  int `json:"movies"`
	Stars   int `json:"stars"`   // Person-movie links.
	Dropped int `json:"dropped"` // Star links that referred to a missing person or movie.
}

// Dataset is the in-memory store of people, movies and the name index.
type Dataset struct {
	people map[PersonID]*Person
	movies map[MovieID]*Movie
	names  map[string]unique.Set[PersonID]
	stats  Stats
}

// NameKey is the key used to index names: lookups are exact but not case sensitive.
func NameKey(name string) string { return strings.ToLower(name) }

// Person returns the person with id, or nil.
func (d *Dataset) Person(id PersonID) *Person { return d.people[id] }

// PersonErr is like [Dataset.Person] but returns an error wrapping [ErrUnknownPerson] if there is no such person.
func (d *Dataset) PersonErr(id PersonID) (*Person, error) {
	if p := d.people[id]; p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPerson, id)
}

// Movie returns the movie with id, or nil.
func (d *Dataset) Movie(id MovieID) *Movie { return d.movies[id] }

// MovieErr is like [Dataset.Movie] but returns an error wrapping [ErrUnknownMovie] if there is no such movie.
func (d *Dataset) MovieErr(id MovieID) (*Movie, error) {
	if m := d.movies[id]; m != nil {
		return m, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMovie, id)
}

// Named returns the sorted ids of all people whose name matches name, ignoring case.
func (d *Dataset) Named(name string) []PersonID {
	ids := d.names[NameKey(name)]
	if len(ids) == 0 {
		return nil
	}
	return unique.Sorted(ids)
}

// PersonIDs returns all person ids, sorted.
func (d *Dataset) PersonIDs() []PersonID { return sortedKeys(d.people) }

// MovieIDs returns all movie ids, sorted.
func (d *Dataset) MovieIDs() []MovieID { return sortedKeys(d.movies) }

func (d *Dataset) Stats() Stats { return d.stats }

func sortedKeys[K ~string, V any](m map[K]V) []K { return slices.Sorted(maps.Keys(m)) }
