// Package metrics declares the Prometheus collectors exported by the solver.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Outcome label values of SolvesTotal.
const (
	Feasible   = "feasible"
	Infeasible = "infeasible"
	Canceled   = "canceled"
)

// Mode label values of LocalSearchMovesTotal.
const (
	ModeRaw       = "raw"
	ModeAugmented = "augmented"
)

// Collectors for memetic.Solver activity.
var (
	SolvesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bcp_solves_total",
		Help: "Cumulative number of completed solve sessions, by outcome.",
	}, []string{"outcome"})
	SolveDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "bcp_solve_duration_seconds",
		Help:    "Wall-clock duration of solve sessions.",
		Buckets: prometheus.ExponentialBuckets(0.01, 4, 10),
	})
	LocalSearchMovesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bcp_local_search_moves_total",
		Help: "Cumulative number of tabu search moves applied, by objective mode.",
	}, []string{"mode"})
	ChildrenTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bcp_children_total",
		Help: "Cumulative number of path relinking children improved and evaluated.",
	})
	PenaltyRescalesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bcp_penalty_rescales_total",
		Help: "Cumulative number of penalty matrix rescales.",
	})
)

// Collectors returns every collector of this package.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		SolvesTotal,
		SolveDurationSeconds,
		LocalSearchMovesTotal,
		ChildrenTotal,
		PenaltyRescalesTotal,
	}
}

// Register registers every collector with reg.
func Register(reg prometheus.Registerer) error {
	for _, c := range Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
