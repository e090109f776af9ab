package main

import (
	"math/rand"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/IsacLucian/Bandwidth-Coloring-Problem/instance"
	"github.com/IsacLucian/Bandwidth-Coloring-Problem/logger"
)

// Generator kinds.
const (
	kindCycle    = "cycle"
	kindComplete = "complete"
	kindRandom   = "random"
)

var generateCommand = cli.Command{
	Name:      "generate",
	Usage:     "write a synthetic instance file",
	ArgsUsage: "<output>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "kind",
			Usage: "graph family: cycle, complete or random",
			Value: kindRandom,
		},
		&cli.IntFlag{
			Name:    "nodes",
			Aliases: []string{"n"},
			Usage:   "number of nodes",
			Value:   50,
		},
		&cli.IntFlag{
			Name:  "min-weight",
			Usage: "smallest required distance",
			Value: 1,
		},
		&cli.IntFlag{
			Name:  "max-weight",
			Usage: "largest required distance (cycle and complete use min-weight)",
			Value: 3,
		},
		&cli.Float64Flag{
			Name:  "density",
			Usage: "edge probability of random graphs",
			Value: 0.1,
		},
		&colorsFlag,
		&seedFlag,
		&logger.LogLevelFlag,
	},
	Action: generateAction,
}

func generateAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("expected exactly one output path", 1)
	}
	log := logger.NewLogger(c.String(logger.LogLevelFlag.Name), "bcp")

	var (
		g   *instance.Graph
		err error
		n   = c.Int("nodes")
		lo  = c.Int("min-weight")
	)
	switch kind := c.String("kind"); kind {
	case kindCycle:
		g, err = instance.Cycle(n, lo)
	case kindComplete:
		g, err = instance.Complete(n, lo)
	case kindRandom:
		rng := rand.New(rand.NewSource(c.Int64(seedFlag.Name)))
		g, err = instance.RandomSparse(n, c.Float64("density"), lo, c.Int("max-weight"), rng)
	default:
		return errors.Errorf("unknown graph kind %q", kind)
	}
	if err != nil {
		return err
	}

	path := c.Args().First()
	inst := &instance.Instance{Name: instance.NameOf(path), Graph: g, Colors: c.Int(colorsFlag.Name)}
	if err = instance.SaveFile(path, inst); err != nil {
		return err
	}
	log.Infof("wrote %s: %d nodes, %d edges", path, g.NumNodes(), g.NumEdges())
	return nil
}
