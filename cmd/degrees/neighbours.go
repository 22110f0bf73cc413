// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

package main

import (
	"strconv"

	"github.com/sixdegrees/degrees/internal/pkg/must"
	"github.com/sixdegrees/degrees/pkg/graph"
	"github.com/sixdegrees/degrees/pkg/names"
	"github.com/sixdegrees/degrees/pkg/rest"
	"github.com/spf13/cobra"
)

var neighboursCmd = &cobra.Command{
	Use:   "neighbours PERSON [DEGREES]",
	Short: "Print the people within DEGREES (default 1) of PERSON, and the movies joining them.",
	Long: `Print the people within DEGREES (default 1) of PERSON, and the movies joining them.

PERSON is an id or a name. Text or dot output is a Graphviz graph.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		degrees := 1
		if len(args) > 1 {
			degrees = must.Must1(strconv.Atoi(args[1]))
		}
		d := loadData("")
		id := person(names.New(d), args[0])
		g := graph.Full(d).Neighbourhood(id, degrees)
		log.V(1).Info("neighbourhood", "person", id, "degrees", degrees, "people", len(g.People()), "movies", len(g.Movies()))
		out := cmd.OutOrStdout()
		switch outputFlag.Value {
		case "text", "dot":
			if p := g.PersonNode(id); p != nil {
				p.Attrs = graph.Attrs{"style": "bold"}
			}
			b := must.Must1(g.DOT("neighbours"))
			_ = must.Must1(out.Write(append(b, '\n')))
		default:
			n := neighbourhood{People: rest.Array[rest.PersonRef]{}, Movies: rest.Array[rest.MovieRef]{}}
			for _, p := range g.People() {
				n.People = append(n.People, rest.NewPersonRef(p))
			}
			for _, m := range g.Movies() {
				n.Movies = append(n.Movies, rest.NewMovieRef(m))
			}
			newPrinter(out).Print(n)
		}
	},
}

type neighbourhood struct {
	People rest.Array[rest.PersonRef] `json:"people"`
	Movies rest.Array[rest.MovieRef]  `json:"movies"`
}

func init() {
	rootCmd.AddCommand(neighboursCmd)
}
