package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/op/go-logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"

	"github.com/IsacLucian/Bandwidth-Coloring-Problem/logger"
	"github.com/IsacLucian/Bandwidth-Coloring-Problem/memetic"
	"github.com/IsacLucian/Bandwidth-Coloring-Problem/metrics"
)

var (
	colorsFlag = cli.IntFlag{
		Name:    "colors",
		Aliases: []string{"k"},
		Usage:   "color budget; overrides the one stored in the instance file",
	}
	seedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "seed of the solver random stream (0 selects a fixed default)",
	}
	populationFlag = cli.IntFlag{
		Name:  "population",
		Usage: "population size",
		Value: memetic.DefaultPopulationSize,
	}
	configFlag = cli.PathFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "YAML solver profile; flags given explicitly take precedence",
	}
	timeoutFlag = cli.DurationFlag{
		Name:  "timeout",
		Usage: "wall-clock budget of one solve session (0 means unlimited)",
	}
	dotFlag = cli.PathFlag{
		Name:  "dot",
		Usage: "write the colored graph as Graphviz DOT to this path",
	}
	metricsAddrFlag = cli.StringFlag{
		Name:  "metrics-addr",
		Usage: "serve Prometheus metrics on this address, e.g. :9090",
	}
)

// solverFlags are shared by every command that runs the solver.
func solverFlags() []cli.Flag {
	return []cli.Flag{
		&seedFlag,
		&populationFlag,
		&configFlag,
		&timeoutFlag,
		&metricsAddrFlag,
		&logger.LogLevelFlag,
	}
}

// solverOptions builds memetic.Options from --config and the explicit flags.
func solverOptions(c *cli.Context, log *logging.Logger) (memetic.Options, error) {
	opts := memetic.DefaultOptions()
	if path := c.Path(configFlag.Name); path != "" {
		var err error
		if opts, err = memetic.LoadOptions(path); err != nil {
			return memetic.Options{}, err
		}
	}
	if c.IsSet(seedFlag.Name) {
		opts.Seed = c.Int64(seedFlag.Name)
	}
	if c.IsSet(populationFlag.Name) {
		opts.PopulationSize = c.Int(populationFlag.Name)
	}
	if c.IsSet(timeoutFlag.Name) {
		opts.TimeLimit = c.Duration(timeoutFlag.Name)
	}
	opts.Log = log
	return opts, opts.Validate()
}

// commandContext is cancelled on SIGINT or SIGTERM.
func commandContext(c *cli.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
}

// serveMetrics exposes the solver collectors when --metrics-addr is set.
func serveMetrics(c *cli.Context, log *logging.Logger) error {
	addr := c.String(metricsAddrFlag.Name)
	if addr == "" {
		return nil
	}
	reg := prometheus.NewRegistry()
	if err := metrics.Register(reg); err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Errorf("metrics server: %v", err)
		}
	}()
	log.Noticef("serving metrics on %s/metrics", addr)
	return nil
}
