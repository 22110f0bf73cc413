// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

package main

import (
	"github.com/sixdegrees/degrees/internal/pkg/must"
	"github.com/sixdegrees/degrees/internal/pkg/text"
	"github.com/sixdegrees/degrees/pkg/dataset"
	"github.com/sixdegrees/degrees/pkg/names"
	"github.com/sixdegrees/degrees/pkg/rest"
	"github.com/sixdegrees/degrees/pkg/unique"
	"github.com/spf13/cobra"
)

var peopleCmd = &cobra.Command{
	Use:   "people NAME",
	Short: "List the people with a name, ignoring case.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d := loadData("")
		people := names.New(d).People(args[0])
		if len(people) == 0 {
			must.Must(names.ErrNotFound)
		}
		if outputFlag.Value == "text" {
			text.NewPrinter(d, cmd.OutOrStdout()).People(people)
		} else {
			newPrinter(cmd.OutOrStdout()).Print(rest.NewPeopleRefs(people))
		}
	},
}

var moviesCmd = &cobra.Command{
	Use:   "movies PERSON",
	Short: "List the movies a person starred in, PERSON is an id or a name.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d := loadData("")
		p := d.Person(person(names.New(d), args[0]))
		var movies []*dataset.Movie
		for _, id := range unique.Sorted(p.Movies) {
			movies = append(movies, d.Movie(id))
		}
		if outputFlag.Value == "text" {
			text.NewPrinter(d, cmd.OutOrStdout()).Movies(movies)
		} else {
			newPrinter(cmd.OutOrStdout()).Print(rest.NewPerson(d, p))
		}
	},
}

func init() {
	rootCmd.AddCommand(peopleCmd, moviesCmd)
}
