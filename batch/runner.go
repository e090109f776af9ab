package batch

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/IsacLucian/Bandwidth-Coloring-Problem/instance"
	"github.com/IsacLucian/Bandwidth-Coloring-Problem/logger"
	"github.com/IsacLucian/Bandwidth-Coloring-Problem/memetic"
)

// RunResult is the outcome of one session.
type RunResult struct {
	Run        int
	Seed       int64
	Feasible   bool
	Canceled   bool
	Violations int
	Coloring   memetic.Coloring
	Moves      int64
	Elapsed    time.Duration
}

// Summary is the outcome of Run.
type Summary struct {
	Reports []*Report
	Elapsed time.Duration
	Output  string
}

// Run loads every instance in cfg.Dir, solves each cfg.Runs times and writes
// the reports to the output directory.
//
// Sessions of all instances share a pool of cfg.Workers goroutines. Session j
// (instances in file name order, runs in order) is seeded with
// memetic.DeriveSeed(cfg.Seed, j), so a batch is reproducible whatever the
// worker count. Cancelling ctx stops running sessions early; their results
// are kept and marked canceled.
func Run(ctx context.Context, cfg Config) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := cfg.Log
	if log == nil {
		log = logger.NewNopLogger("batch")
	}

	insts, err := loadDir(cfg.Dir, cfg.Colors)
	if err != nil {
		return nil, err
	}
	log.Infof("loaded %d instances from %s", len(insts), cfg.Dir)

	start := time.Now()
	reports := make([]*Report, len(insts))
	for i, inst := range insts {
		reports[i] = newReport(inst, cfg.Runs)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := range insts {
		for r := 0; r < cfg.Runs; r++ {
			var (
				rep  = reports[i]
				inst = insts[i]
				run  = r
				seed = memetic.DeriveSeed(cfg.Seed, uint64(i*cfg.Runs+r))
			)
			g.Go(func() error {
				opts := cfg.Options
				opts.Seed = seed
				opts.Rand = nil

				res, err := memetic.Solve(gctx, inst.Graph, inst.Colors, opts)
				if err != nil {
					return errors.WithMessagef(err, "%s run %d", inst.Name, run)
				}
				rep.Runs[run] = RunResult{
					Run:        run,
					Seed:       seed,
					Feasible:   res.Feasible,
					Canceled:   res.Canceled,
					Violations: res.Violations,
					Coloring:   res.Best,
					Moves:      res.Moves,
					Elapsed:    res.Elapsed,
				}
				log.Debugf("%s run %d: feasible=%v violations=%d in %s", inst.Name, run, res.Feasible, res.Violations, res.Elapsed)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sum := &Summary{Reports: reports, Elapsed: time.Since(start), Output: cfg.outputDir()}
	for _, rep := range reports {
		rep.summarize()
		log.Infof("%s: SR %s", rep.Name, rep.SuccessRate())
	}

	if err := sum.write(cfg.Render); err != nil {
		return nil, err
	}
	return sum, nil
}

// loadDir reads every regular file of dir, in name order.
func loadDir(dir string, colors int) ([]*instance.Instance, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "listing instances")
	}

	var insts []*instance.Instance
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		inst, err := instance.LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		if colors > 0 {
			inst.Colors = colors
		}
		if inst.Colors < 1 {
			return nil, errors.Errorf("%s: no color budget in file and none configured", inst.Name)
		}
		insts = append(insts, inst)
	}
	if len(insts) == 0 {
		return nil, errors.Errorf("no instance files in %s", dir)
	}
	sort.SliceStable(insts, func(a, b int) bool { return insts[a].Name < insts[b].Name })
	return insts, nil
}
