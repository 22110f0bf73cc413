// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

// Package names maps human-readable names to person ids.
//
// Names are matched exactly, ignoring case. Names are not unique:
// a lookup that matches more than one person returns an [*AmbiguousError] listing the candidates,
// the caller decides how to choose between them.
package names

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sixdegrees/degrees/pkg/dataset"
)

// ErrNotFound is returned when no person matches.
var ErrNotFound = errors.New("person not found")

// AmbiguousError is returned when more than one person has the same name.
type AmbiguousError struct {
	Name       string
	Candidates []*dataset.Person
}

func (e *AmbiguousError) Error() string {
	ids := make([]string, len(e.Candidates))
	for i, p := range e.Candidates {
		ids[i] = string(p.ID)
	}
	return fmt.Sprintf("ambiguous name %q matches %v people: %v", e.Name, len(e.Candidates), strings.Join(ids, ", "))
}

// IsAmbiguous returns the AmbiguousError wrapped by err, or nil.
func IsAmbiguous(err error) *AmbiguousError {
	var ae *AmbiguousError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// Resolver looks up people by name.
type Resolver struct{ data *dataset.Dataset }

func New(d *dataset.Dataset) *Resolver { return &Resolver{data: d} }

// Resolve returns the sorted ids of all people named name, ignoring case.
func (r *Resolver) Resolve(name string) []dataset.PersonID { return r.data.Named(name) }

// People returns the people named name, ordered by id.
func (r *Resolver) People(name string) []*dataset.Person {
	ids := r.Resolve(name)
	people := make([]*dataset.Person, len(ids))
	for i, id := range ids {
		people[i] = r.data.Person(id)
	}
	return people
}

// Lookup returns the id of the only person named name.
// Returns an error wrapping ErrNotFound if there is no such person,
// or an *AmbiguousError if there is more than one.
func (r *Resolver) Lookup(name string) (dataset.PersonID, error) {
	switch ids := r.Resolve(name); len(ids) {
	case 0:
		return "", fmt.Errorf("%w: %q", ErrNotFound, name)
	case 1:
		return ids[0], nil
	default:
		return "", &AmbiguousError{Name: name, Candidates: r.People(name)}
	}
}

// LookupOrID treats s as a person id if there is a person with that id, otherwise calls Lookup(s).
func (r *Resolver) LookupOrID(s string) (dataset.PersonID, error) {
	if p := r.data.Person(dataset.PersonID(s)); p != nil {
		return p.ID, nil
	}
	return r.Lookup(s)
}
