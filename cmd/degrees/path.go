// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

package main

import (
	"os"

	"github.com/sixdegrees/degrees/internal/pkg/enumflag"
	"github.com/sixdegrees/degrees/internal/pkg/must"
	"github.com/sixdegrees/degrees/internal/pkg/text"
	"github.com/sixdegrees/degrees/pkg/dataset"
	"github.com/sixdegrees/degrees/pkg/frontier"
	"github.com/sixdegrees/degrees/pkg/graph"
	"github.com/sixdegrees/degrees/pkg/names"
	"github.com/sixdegrees/degrees/pkg/rest"
	"github.com/sixdegrees/degrees/pkg/search"
	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path SOURCE TARGET",
	Short: "Print the path between two people, identified by id or name.",
	Long: `Print the path between two people, identified by id or name.

Names are matched ignoring case. If more than one person has a name, the command
fails and lists them, use an id instead.
Output format "dot" writes a Graphviz graph of the path.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		d := loadData("")
		r := names.New(d)
		source, target := person(r, args[0]), person(r, args[1])
		opts := searchOptions()
		if cmd.Flags().Changed("strategy") {
			opts.Strategy = strategyFlag.Value
		}
		if cmd.Flags().Changed("max-depth") {
			opts.MaxDepth = *maxDepthFlag
		}
		result := must.Must1(search.New(d, search.WithOptions(opts)).Search(ctx, source, target))
		out := cmd.OutOrStdout()
		switch {
		case *templateFlag != "":
			must.Must(text.NewPrinter(d, out).Template(*templateFlag, rest.NewPathResult(d, result)))
		case outputFlag.Value == "dot":
			b := must.Must1(graph.Path(d, source, result.Path).DOT("path"))
			_, _ = out.Write(append(b, '\n'))
		case outputFlag.Value == "text":
			text.NewPrinter(d, out).Path(result)
		default:
			newPrinter(out).Print(rest.NewPathResult(d, result))
		}
	},
}

var (
	strategyFlag = enumflag.New(frontier.BreadthFirst, frontier.BreadthFirst, frontier.DepthFirst)
	maxDepthFlag *int
	templateFlag *string
)

func init() {
	rootCmd.AddCommand(pathCmd)
	pathCmd.Flags().Var(strategyFlag, "strategy", strategyFlag.Usage("Search strategy, only bfs finds the shortest path"))
	maxDepthFlag = pathCmd.Flags().Int("max-depth", 0, "Maximum degrees of separation to explore, 0 for no limit")
	templateFlag = pathCmd.Flags().StringP("template", "t", "", "Go template applied to the result, with sprig functions")
}

// person resolves an id or name, panics with an error listing candidates if the name is ambiguous.
func person(r *names.Resolver, idOrName string) dataset.PersonID {
	id, err := r.LookupOrID(idOrName)
	if ae := names.IsAmbiguous(err); ae != nil {
		text.NewPrinter(nil, os.Stderr).People(ae.Candidates)
	}
	return must.Must1(id, err)
}
