// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

package main

import (
	"github.com/sixdegrees/degrees/internal/pkg/text"
	"github.com/sixdegrees/degrees/pkg/dataset"
	"github.com/sixdegrees/degrees/pkg/graph"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print dataset counts and the number of connected groups of people.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		d := loadData("")
		components := graph.Full(d).Components()
		if outputFlag.Value == "text" {
			text.NewPrinter(d, cmd.OutOrStdout()).Stats(d.Stats(), components)
			return
		}
		s := stats{Stats: d.Stats(), Components: len(components)}
		if len(components) > 0 {
			s.Largest = len(components[0])
		}
		newPrinter(cmd.OutOrStdout()).Print(s)
	},
}

type stats struct {
	dataset.Stats
	Components int `json:"components"`
	Largest    int `json:"largest"`
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
