// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

package text

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sixdegrees/degrees/internal/pkg/test/fixture"
	"github.com/sixdegrees/degrees/pkg/dataset"
	"github.com/sixdegrees/degrees/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter_Path(t *testing.T) {
	d := fixture.Small()
	r, err := search.New(d).Search(t.Context(), "144", "102")
	require.NoError(t, err)
	got := writeString(func(w io.Writer) { NewPrinter(d, w).Path(r) })
	assert.Equal(t, `3 degrees of separation.
1: Cary Elwes and Robin Wright starred in The Princess Bride
2: Robin Wright and Tom Hanks starred in Forrest Gump
3: Tom Hanks and Kevin Bacon starred in Apollo 13
`, got)
}

func TestPrinter_PathNotConnected(t *testing.T) {
	d := fixture.Small()
	r, err := search.New(d).Search(t.Context(), "102", "914612")
	require.NoError(t, err)
	assert.Equal(t, "Not connected.\n", writeString(func(w io.Writer) { NewPrinter(d, w).Path(r) }))
	r, err = search.New(d).Search(t.Context(), "102", "102")
	require.NoError(t, err)
	assert.Equal(t, "0 degrees of separation.\n", writeString(func(w io.Writer) { NewPrinter(d, w).Path(r) }))
}

func TestPrinter_People(t *testing.T) {
	d := fixture.Small()
	got := writeString(func(w io.Writer) {
		NewPrinter(d, w).People([]*dataset.Person{d.Person("102"), d.Person("9999")})
	})
	assert.Equal(t, "ID: 102, Name: Kevin Bacon, Birth: 1958\nID: 9999, Name: Kevin Bacon, Birth: \n", got)
}

func TestPrinter_Movies(t *testing.T) {
	d := fixture.Small()
	got := writeString(func(w io.Writer) { NewPrinter(d, w).Movies([]*dataset.Movie{d.Movie("112384")}) })
	assert.Equal(t, "ID: 112384, Title: Apollo 13, Year: 1995\n", got)
}

func TestPrinter_Stats(t *testing.T) {
	got := writeString(func(w io.Writer) {
		NewPrinter(nil, w).Stats(dataset.Stats{People: 17, Movies: 5, Stars: 20, Dropped: 2},
			[][]dataset.PersonID{{"a", "b"}, {"c"}})
	})
	assert.Equal(t, `people:     17
movies:     5
stars:      20
dropped:    2
components: 2
largest:    2
`, got)
}

func TestPrinter_Template(t *testing.T) {
	d := fixture.Small()
	r, err := search.New(d).Search(t.Context(), "102", "158")
	require.NoError(t, err)
	got := writeString(func(w io.Writer) {
		require.NoError(t, NewPrinter(d, w).Template(`{{.Degrees | toString | upper}} {{range .Path}}{{.Movie}}/{{.Person}}{{end}}`, r))
	})
	assert.Equal(t, "1 112384/158", got)
	assert.Error(t, NewPrinter(d, io.Discard).Template("{{", r))
}

func TestPrinter_Error(t *testing.T) {
	assert.Equal(t, "Error: oops\n", writeString(func(w io.Writer) { NewPrinter(nil, w).Error(errors.New("oops")) }))
}

// writeString returns the text written by print.
func writeString(print func(io.Writer)) string {
	w := &strings.Builder{}
	print(w)
	return w.String()
}
