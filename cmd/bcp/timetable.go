package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/IsacLucian/Bandwidth-Coloring-Problem/instance"
	"github.com/IsacLucian/Bandwidth-Coloring-Problem/logger"
	"github.com/IsacLucian/Bandwidth-Coloring-Problem/timetable"
)

var (
	slotsFlag = cli.IntFlag{
		Name:  "slots",
		Usage: "number of exam slots, six per day",
		Value: timetable.DefaultSlots,
	}
	jsonFlag = cli.PathFlag{
		Name:  "json",
		Usage: "write the schedule as JSON to this path",
	}
)

var timetableCommand = cli.Command{
	Name:      "timetable",
	Usage:     "schedule the exams of a JSON session description",
	ArgsUsage: "<exams.json>",
	Flags:     append(solverFlags(), &slotsFlag, &jsonFlag, &dotFlag),
	Action:    timetableAction,
}

func timetableAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("expected exactly one exam file", 1)
	}
	level := c.String(logger.LogLevelFlag.Name)
	log := logger.NewLogger(level, "bcp")

	path := c.Args().First()
	data, err := timetable.Load(path)
	if err != nil {
		return err
	}
	p, err := timetable.Build(data)
	if err != nil {
		return errors.WithMessage(err, path)
	}
	slots := c.Int(slotsFlag.Name)
	log.Infof("%s: %d exams, %d conflicts, %d slots", instance.NameOf(path), len(p.Exams), p.Graph.NumEdges(), slots)

	opts, err := solverOptions(c, logger.NewLogger(level, "memetic"))
	if err != nil {
		return err
	}
	if err = serveMetrics(c, log); err != nil {
		return err
	}

	ctx, stop := commandContext(c)
	defer stop()

	s, res, err := timetable.Solve(ctx, p, slots, opts)
	if err != nil {
		return err
	}
	if out := c.Path(dotFlag.Name); out != "" {
		if err = writeDOT(out, p.Graph, res.Best, slots, p.Exams); err != nil {
			return err
		}
	}
	if s == nil {
		log.Warningf("no conflict-free schedule in %d slots, best has %d violations", slots, res.Violations)
		return cli.Exit("", 2)
	}

	fmt.Println(s.Table())
	if out := c.Path(jsonFlag.Name); out != "" {
		f, err := os.Create(out)
		if err != nil {
			return errors.Wrap(err, "creating schedule file")
		}
		defer f.Close()
		if err = s.WriteJSON(f); err != nil {
			return err
		}
		return errors.Wrap(f.Close(), "closing schedule file")
	}
	return nil
}
