package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/IsacLucian/Bandwidth-Coloring-Problem/instance"
	"github.com/IsacLucian/Bandwidth-Coloring-Problem/logger"
	"github.com/IsacLucian/Bandwidth-Coloring-Problem/memetic"
	"github.com/IsacLucian/Bandwidth-Coloring-Problem/render"
)

var solveCommand = cli.Command{
	Name:      "solve",
	Usage:     "solve one instance file",
	ArgsUsage: "<instance>",
	Flags:     append(solverFlags(), &colorsFlag, &dotFlag),
	Action:    solveAction,
}

func solveAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("expected exactly one instance file", 1)
	}
	log := logger.NewLogger(c.String(logger.LogLevelFlag.Name), "bcp")

	inst, err := instance.LoadFile(c.Args().First())
	if err != nil {
		return err
	}
	if c.IsSet(colorsFlag.Name) {
		inst.Colors = c.Int(colorsFlag.Name)
	}
	if inst.Colors < 1 {
		return cli.Exit("the instance has no color budget, set --colors", 1)
	}

	opts, err := solverOptions(c, logger.NewLogger(c.String(logger.LogLevelFlag.Name), "memetic"))
	if err != nil {
		return err
	}
	if err = serveMetrics(c, log); err != nil {
		return err
	}

	ctx, stop := commandContext(c)
	defer stop()

	log.Infof("solving %s: %d nodes, %d edges, %d colors", inst.Name, inst.Graph.NumNodes(), inst.Graph.NumEdges(), inst.Colors)
	res, err := memetic.Solve(ctx, inst.Graph, inst.Colors, opts)
	if err != nil {
		return err
	}

	h, m, s := logger.ParseTime(res.Elapsed)
	log.Infof("%d generations, %d children, %s moves, %d penalty rescales in %vh %vm %vs",
		res.Generations, res.Children, humanize.Comma(res.Moves), res.Rescales, h, m, s)

	switch {
	case res.Feasible:
		fmt.Println(formatColoring(res.Coloring))
	case res.Canceled:
		log.Warningf("stopped early, best coloring has %d violations", res.Violations)
	default:
		log.Warningf("no feasible coloring found, best has %d violations", res.Violations)
	}

	if path := c.Path(dotFlag.Name); path != "" {
		if err := writeDOT(path, inst.Graph, res.Best, inst.Colors, nil); err != nil {
			return err
		}
	}
	if !res.Feasible {
		return cli.Exit("", 2)
	}
	return nil
}

func formatColoring(c memetic.Coloring) string {
	return strings.Trim(fmt.Sprint([]int(c)), "[]")
}

func writeDOT(path string, g *instance.Graph, c memetic.Coloring, colors int, names []string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating drawing")
	}
	defer f.Close()

	if err = render.WriteDOT(f, g, c, colors, names); err != nil {
		return err
	}
	return errors.Wrap(f.Close(), "closing drawing")
}
