// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

// Command degrees finds the degrees of separation between two actors, through the movies they starred in.
package main

import (
	"fmt"
	"os"

	"github.com/sixdegrees/degrees/internal/pkg/enumflag"
	"github.com/sixdegrees/degrees/internal/pkg/logging"
	"github.com/sixdegrees/degrees/internal/pkg/must"
	"github.com/sixdegrees/degrees/internal/pkg/text"
	"github.com/sixdegrees/degrees/pkg/build"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "degrees [DIRECTORY]",
		Short: "Find the degrees of separation between two actors.",
		Long: `Find the degrees of separation between two actors.

With no sub-command, loads the CSV files from DIRECTORY and prompts for two names.
Prints the shortest chain of movies and co-stars connecting them.
Input prompts are not printed when stdin is not a terminal, use --quiet=false to print them.`,
		Version: build.Version,
		Args:    cobra.MaximumNArgs(1),
		Run:     interactive,
	}
	log = logging.Log()

	// Global Flags
	configFlag  *string
	dataFlag    *string
	verboseFlag *int
	panicOnErr  *bool
	outputFlag  = enumflag.New("text", "text", "json", "json-pretty", "yaml", "dot")
)

func init() {
	panicOnErr = rootCmd.PersistentFlags().Bool("panic", false, "panic on error instead of exit code 1")
	rootCmd.PersistentFlags().VarP(outputFlag, "output", "o", outputFlag.Usage("Output format"))
	verboseFlag = rootCmd.PersistentFlags().IntP("verbose", "v", 0, "Verbosity for logging")
	configFlag = rootCmd.PersistentFlags().StringP("config", "c", os.Getenv("DEGREES_CONFIG"), "Configuration file or URL")
	dataFlag = rootCmd.PersistentFlags().StringP("data", "d", "", "Directory containing people.csv, movies.csv and stars.csv")

	cobra.OnInitialize(func() { logging.Init(*verboseFlag) }) // After flags are parsed
	var stop interface{ Stop() }
	rootCmd.PersistentPreRun = func(*cobra.Command, []string) { stop = StartProfile() }
	rootCmd.PersistentPostRun = func(*cobra.Command, []string) { stop.Stop() }
}

// exitMessage is printed as-is on exit, without an "Error" prefix.
type exitMessage string

func main() {
	// Code in this package panics with an error to exit.
	defer func() {
		if r := recover(); r != nil {
			if m, ok := r.(exitMessage); ok {
				fmt.Fprintln(os.Stderr, m)
				os.Exit(1)
			}
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("%v", r)
			}
			text.NewPrinter(nil, os.Stderr).Error(err)
			if *panicOnErr {
				panic(r)
			}
			os.Exit(1)
		}
		os.Exit(0)
	}()
	must.Must(rootCmd.Execute())
}
