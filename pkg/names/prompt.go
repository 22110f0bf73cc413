// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

package names

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/sixdegrees/degrees/pkg/dataset"
)

// Prompter asks the user to choose between people with the same name.
type Prompter struct {
	*Resolver
	In  *bufio.Reader
	Out io.Writer
	// Quiet suppresses input prompts, for example when input is not a terminal.
	// The list of candidates is always written.
	Quiet bool
}

func NewPrompter(r *Resolver, in io.Reader, out io.Writer) *Prompter {
	return &Prompter{Resolver: r, In: bufio.NewReader(in), Out: out}
}

// ReadName prompts for a name and reads a line of input.
func (p *Prompter) ReadName() (string, error) {
	p.prompt("Name: ")
	return p.readLine()
}

// Choose returns the id of the person named name.
// If several people have that name, the candidates are listed and the user enters an id.
// Returns an error wrapping ErrNotFound if there is no such person or the entered id is not a candidate.
func (p *Prompter) Choose(name string) (dataset.PersonID, error) {
	id, err := p.Lookup(name)
	ae := IsAmbiguous(err)
	if ae == nil {
		return id, err
	}
	fmt.Fprintf(p.Out, "Which '%v'?\n", name)
	for _, c := range ae.Candidates {
		birth := ""
		if c.Birth != 0 {
			birth = fmt.Sprint(c.Birth)
		}
		fmt.Fprintf(p.Out, "ID: %v, Name: %v, Birth: %v\n", c.ID, c.Name, birth)
	}
	p.prompt("Intended Person ID: ")
	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	chosen := dataset.PersonID(line)
	if !slices.ContainsFunc(ae.Candidates, func(c *dataset.Person) bool { return c.ID == chosen }) {
		return "", fmt.Errorf("%w: %q is not one of the people named %q", ErrNotFound, line, name)
	}
	return chosen, nil
}

func (p *Prompter) prompt(s string) {
	if !p.Quiet {
		fmt.Fprint(p.Out, s)
	}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.In.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil // Last line without a newline.
	}
	return strings.TrimSpace(line), err
}
