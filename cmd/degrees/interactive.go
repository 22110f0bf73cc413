// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sixdegrees/degrees/internal/pkg/must"
	"github.com/sixdegrees/degrees/internal/pkg/text"
	"github.com/sixdegrees/degrees/pkg/dataset"
	"github.com/sixdegrees/degrees/pkg/names"
	"github.com/sixdegrees/degrees/pkg/search"
	"github.com/spf13/cobra"
)

var quietFlag *bool

func init() {
	quietFlag = rootCmd.Flags().BoolP("quiet", "q", !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()),
		"Do not print input prompts, default if stdin is not a terminal")
}

// interactive prompts for two names and prints the path between them.
func interactive(cmd *cobra.Command, args []string) {
	var dir string
	if len(args) > 0 {
		dir = args[0]
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Loading data...")
	d := loadData(dir)
	fmt.Fprintln(out, "Data loaded.")

	p := names.NewPrompter(names.New(d), cmd.InOrStdin(), out)
	p.Quiet = *quietFlag
	source := choose(p)
	target := choose(p)
	r := must.Must1(search.New(d, search.WithOptions(searchOptions())).Search(ctx, source, target))
	text.NewPrinter(d, out).Path(r)
}

// choose reads a name and resolves it to a single person, exits if there is no such person.
func choose(p *names.Prompter) dataset.PersonID {
	name := must.Must1(p.ReadName())
	id, err := p.Choose(name)
	if errors.Is(err, names.ErrNotFound) {
		log.V(1).Info("not found", "name", name, "error", err.Error())
		panic(exitMessage("Person not found."))
	}
	must.Must(err)
	return id
}
