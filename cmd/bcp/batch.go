package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/IsacLucian/Bandwidth-Coloring-Problem/batch"
	"github.com/IsacLucian/Bandwidth-Coloring-Problem/logger"
)

var (
	runsFlag = cli.IntFlag{
		Name:  "runs",
		Usage: "independent sessions per instance",
		Value: batch.DefaultRuns,
	}
	workersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "sessions running at once (default: number of CPUs)",
	}
	outputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "directory for stats.csv and the run logs (default: <dir>/" + batch.OutputDirName + ")",
	}
	renderFlag = cli.BoolFlag{
		Name:  "render",
		Usage: "write a DOT drawing of a feasible coloring per instance",
	}
)

var batchCommand = cli.Command{
	Name:      "batch",
	Usage:     "solve every instance file of a directory repeatedly and report statistics",
	ArgsUsage: "<dir>",
	Flags:     append(solverFlags(), &colorsFlag, &runsFlag, &workersFlag, &outputFlag, &renderFlag),
	Action:    batchAction,
}

func batchAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("expected exactly one instance directory", 1)
	}
	log := logger.NewLogger(c.String(logger.LogLevelFlag.Name), "bcp")

	cfg, err := batchConfig(c)
	if err != nil {
		return err
	}
	if err = serveMetrics(c, log); err != nil {
		return err
	}

	ctx, stop := commandContext(c)
	defer stop()

	sum, err := batch.Run(ctx, cfg)
	if err != nil {
		return err
	}
	fmt.Println(sum.Table())
	log.Infof("reports written to %s", sum.Output)
	return nil
}

// batchConfig builds the batch configuration from the command line; every
// session logs through the "memetic" module at the --log level.
func batchConfig(c *cli.Context) (batch.Config, error) {
	level := c.String(logger.LogLevelFlag.Name)

	cfg := batch.DefaultConfig(c.Args().First())
	cfg.Output = c.Path(outputFlag.Name)
	cfg.Runs = c.Int(runsFlag.Name)
	cfg.Colors = c.Int(colorsFlag.Name)
	cfg.Seed = c.Int64(seedFlag.Name)
	cfg.Render = c.Bool(renderFlag.Name)
	if c.IsSet(workersFlag.Name) {
		cfg.Workers = c.Int(workersFlag.Name)
	}
	cfg.Log = logger.NewLogger(level, "batch")

	opts, err := solverOptions(c, logger.NewLogger(level, "memetic"))
	if err != nil {
		return batch.Config{}, err
	}
	cfg.Options = opts
	return cfg, nil
}
