package batch

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/IsacLucian/Bandwidth-Coloring-Problem/instance"
	"github.com/IsacLucian/Bandwidth-Coloring-Problem/memetic"
)

// Report aggregates the sessions of one instance.
type Report struct {
	Name   string
	Nodes  int
	Edges  int
	Colors int
	Runs   []RunResult

	inst *instance.Instance

	// Filled in once every run finished.
	Successes      int
	Canceled       int
	AvgSuccess     time.Duration // mean duration of feasible runs
	AvgExecution   time.Duration // mean duration of all runs
	TotalExecution time.Duration // sum of all run durations
	MeanViolations float64
	StdViolations  float64
	Moves          int64
	// Best is the coloring of the last feasible run, or of the run with the
	// fewest violations when none succeeded.
	Best memetic.Coloring
}

func newReport(inst *instance.Instance, runs int) *Report {
	return &Report{
		Name:   inst.Name,
		Nodes:  inst.Graph.NumNodes(),
		Edges:  inst.Graph.NumEdges(),
		Colors: inst.Colors,
		Runs:   make([]RunResult, runs),
		inst:   inst,
	}
}

// SuccessRate formats the success count as "s/runs".
func (r *Report) SuccessRate() string {
	return fmt.Sprintf("%d/%d", r.Successes, len(r.Runs))
}

func (r *Report) summarize() {
	var (
		success   []float64
		all       = make([]float64, 0, len(r.Runs))
		viol      = make([]float64, 0, len(r.Runs))
		bestViol  = -1
		bestFound bool
	)
	r.Successes, r.Canceled, r.Moves, r.TotalExecution = 0, 0, 0, 0
	for _, run := range r.Runs {
		secs := run.Elapsed.Seconds()
		all = append(all, secs)
		viol = append(viol, float64(run.Violations))
		r.TotalExecution += run.Elapsed
		r.Moves += run.Moves
		if run.Canceled {
			r.Canceled++
		}

		if run.Feasible {
			r.Successes++
			success = append(success, secs)
			r.Best = run.Coloring
			bestFound = true
			continue
		}
		if !bestFound && run.Coloring != nil && (bestViol < 0 || run.Violations < bestViol) {
			bestViol = run.Violations
			r.Best = run.Coloring
		}
	}

	r.AvgExecution = seconds(stat.Mean(all, nil))
	r.MeanViolations, r.StdViolations = stat.Mean(viol, nil), 0
	if len(viol) > 1 {
		r.StdViolations = stat.StdDev(viol, nil)
	}
	r.AvgSuccess = 0
	if len(success) > 0 {
		r.AvgSuccess = seconds(stat.Mean(success, nil))
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
