// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

// package fixture builds small datasets for tests.
package fixture

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/sixdegrees/degrees/pkg/dataset"
)

// Casts maps a movie title to the names of its stars.
type Casts map[string][]string

// New builds a dataset from casts.
// Movie ids are the titles, person ids and names are the same string.
// Extra people are added with no movies.
func New(casts Casts, extra ...string) *dataset.Dataset {
	b := dataset.NewBuilder()
	titles := make([]string, 0, len(casts))
	for title := range casts {
		titles = append(titles, title)
	}
	slices.Sort(titles)
	for _, title := range titles {
		_ = b.AddMovie(dataset.MovieID(title), title, 0)
		for _, name := range casts[title] {
			_ = b.AddPerson(dataset.PersonID(name), name, 0) // Ignore duplicates
			b.AddStar(dataset.PersonID(name), dataset.MovieID(title))
		}
	}
	for _, name := range extra {
		_ = b.AddPerson(dataset.PersonID(name), name, 0)
	}
	return b.Dataset()
}

// Small is the classic small movie dataset, with one duplicated name.
func Small() *dataset.Dataset {
	b := dataset.NewBuilder()
	for _, p := range []struct {
		id, name string
		birth    int
	}{
		{"102", "Kevin Bacon", 1958},
		{"129", "Tom Cruise", 1962},
		{"144", "Cary Elwes", 1962},
		{"158", "Tom Hanks", 1956},
		{"1597", "Mandy Patinkin", 1952},
		{"163", "Dustin Hoffman", 1937},
		{"1697", "Chris Sarandon", 1942},
		{"193", "Demi Moore", 1962},
		{"197", "Jack Nicholson", 1937},
		{"200", "Bill Paxton", 1955},
		{"398", "Sally Field", 1946},
		{"420", "Valeria Golino", 1965},
		{"596520", "Gerald R. Molen", 1935},
		{"641", "Gary Sinise", 1955},
		{"705", "Robin Wright", 1966},
		{"914612", "Emma Watson", 1990},
		{"9999", "Kevin Bacon", 0},
	} {
		_ = b.AddPerson(dataset.PersonID(p.id), p.name, p.birth)
	}
	for _, m := range []struct {
		id, title string
		year      int
	}{
		{"112384", "Apollo 13", 1995},
		{"104257", "A Few Good Men", 1992},
		{"109830", "Forrest Gump", 1994},
		{"93779", "The Princess Bride", 1987},
		{"95953", "Rain Man", 1988},
	} {
		_ = b.AddMovie(dataset.MovieID(m.id), m.title, m.year)
	}
	for _, s := range [][2]string{
		{"102", "104257"}, {"102", "112384"},
		{"129", "104257"}, {"129", "95953"},
		{"144", "93779"},
		{"158", "109830"}, {"158", "112384"},
		{"1597", "93779"},
		{"163", "95953"},
		{"1697", "93779"},
		{"193", "104257"},
		{"197", "104257"},
		{"200", "112384"},
		{"398", "109830"},
		{"420", "95953"},
		{"596520", "95953"},
		{"641", "109830"}, {"641", "112384"},
		{"705", "109830"}, {"705", "93779"},
	} {
		b.AddStar(dataset.PersonID(s[0]), dataset.MovieID(s[1]))
	}
	return b.Dataset()
}

// Random builds a dataset with people "p0".."pN" and movies "m0".."mM".
// Each movie gets between 1 and maxCast stars chosen with a seeded generator.
func Random(seed uint64, people, movies, maxCast int) *dataset.Dataset {
	r := rand.New(rand.NewPCG(seed, seed))
	b := dataset.NewBuilder()
	for i := range people {
		id := fmt.Sprintf("p%d", i)
		_ = b.AddPerson(dataset.PersonID(id), id, 0)
	}
	for i := range movies {
		id := dataset.MovieID(fmt.Sprintf("m%d", i))
		_ = b.AddMovie(id, string(id), 0)
		for range 1 + r.IntN(maxCast) {
			b.AddStar(dataset.PersonID(fmt.Sprintf("p%d", r.IntN(people))), id)
		}
	}
	return b.Dataset()
}
