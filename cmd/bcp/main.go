// Command bcp solves bandwidth coloring instances with the memetic solver.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "Bandwidth Coloring Problem solver",
		HelpName: "bcp",
		Usage:    "color weighted graphs so that constrained nodes keep their distance",
		Commands: []*cli.Command{
			&solveCommand,
			&batchCommand,
			&timetableCommand,
			&generateCommand,
		},
	}
}
