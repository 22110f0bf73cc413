// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

// package text prints results as text for the command line.
package text

import (
	"fmt"
	"io"
	"text/tabwriter"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/charmbracelet/lipgloss"
	"github.com/sixdegrees/degrees/pkg/dataset"
	"github.com/sixdegrees/degrees/pkg/search"
)

// Printer writes text to w, names and titles are highlighted if w is a terminal.
type Printer struct {
	Data   *dataset.Dataset
	w      io.Writer
	strong lipgloss.Style
}

func NewPrinter(d *dataset.Dataset, w io.Writer) *Printer {
	return &Printer{Data: d, w: w, strong: lipgloss.NewRenderer(w).NewStyle().Bold(true)}
}

// Path prints the result of a search, one line per degree of separation.
func (p *Printer) Path(r *search.Result) {
	if !r.Connected {
		fmt.Fprintln(p.w, "Not connected.")
		return
	}
	fmt.Fprintf(p.w, "%v degrees of separation.\n", r.Degrees())
	prev := r.Source
	for i, s := range r.Path {
		fmt.Fprintf(p.w, "%v: %v and %v starred in %v\n", i+1,
			p.strong.Render(p.Data.Person(prev).Name),
			p.strong.Render(p.Data.Person(s.Person).Name),
			p.strong.Render(p.Data.Movie(s.Movie).Title))
		prev = s.Person
	}
}

// People prints one line per person.
func (p *Printer) People(people []*dataset.Person) {
	for _, person := range people {
		fmt.Fprintf(p.w, "ID: %v, Name: %v, Birth: %v\n", person.ID, p.strong.Render(person.Name), year(person.Birth))
	}
}

// Movies prints one line per movie.
func (p *Printer) Movies(movies []*dataset.Movie) {
	for _, m := range movies {
		fmt.Fprintf(p.w, "ID: %v, Title: %v, Year: %v\n", m.ID, p.strong.Render(m.Title), year(m.Year))
	}
}

// Stats prints dataset counts and the sizes of the largest connected groups of people.
func (p *Printer) Stats(s dataset.Stats, components [][]dataset.PersonID) {
	tw := tabwriter.NewWriter(p.w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "people:\t%v\n", s.People)
	fmt.Fprintf(tw, "movies:\t%v\n", s.Movies)
	fmt.Fprintf(tw, "stars:\t%v\n", s.Stars)
	fmt.Fprintf(tw, "dropped:\t%v\n", s.Dropped)
	if components != nil {
		fmt.Fprintf(tw, "components:\t%v\n", len(components))
		if len(components) > 0 {
			fmt.Fprintf(tw, "largest:\t%v\n", len(components[0]))
		}
	}
	_ = tw.Flush()
}

func (p *Printer) Error(err error) {
	fmt.Fprintln(p.w, "Error:", err)
}

// Template executes a Go template with the sprig functions on v.
func (p *Printer) Template(tmpl string, v any) error {
	t, err := template.New("output").Funcs(sprig.TxtFuncMap()).Parse(tmpl)
	if err != nil {
		return err
	}
	return t.Execute(p.w, v)
}

func year(y int) string {
	if y == 0 {
		return ""
	}
	return fmt.Sprint(y)
}
