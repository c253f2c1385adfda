// Package main implements schedulectl, a command-line front end for the
// scheduling core: point it at a request JSON file (or pipe one via
// stdin) and it prints either the raw JSON result or a colored table.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "schedulectl",
		Short: "Generate monthly employee schedules from a request file",
	}

	root.AddCommand(newSolveCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
