package batch

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"

	"github.com/IsacLucian/Bandwidth-Coloring-Problem/render"
)

// StatsHeader is the header row of stats.csv.
var StatsHeader = []string{"Filename", "SR", "Average Success Time", "Average Execution Time"}

// noValue stands for a statistic that does not exist, such as the average
// success time of an instance never solved.
const noValue = "-"

func (s *Summary) write(drawings bool) error {
	if err := os.MkdirAll(s.Output, 0o755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}
	if err := s.writeStats(filepath.Join(s.Output, StatsFileName)); err != nil {
		return err
	}
	for _, rep := range s.Reports {
		if err := rep.writeLog(filepath.Join(s.Output, rep.Name+".log")); err != nil {
			return err
		}
		if drawings && rep.Successes > 0 {
			if err := rep.writeDOT(filepath.Join(s.Output, rep.Name+".dot")); err != nil {
				return err
			}
		}
	}
	return nil
}

// StatsRecords returns the rows of stats.csv, header first. Times are in
// seconds with two decimals.
func (s *Summary) StatsRecords() [][]string {
	rows := [][]string{StatsHeader}
	for _, rep := range s.Reports {
		row := []string{rep.Name, rep.SuccessRate(), noValue, noValue}
		if rep.Successes > 0 {
			row[2] = fmt.Sprintf("%.2f", rep.AvgSuccess.Seconds())
			row[3] = fmt.Sprintf("%.2f", rep.AvgExecution.Seconds())
		}
		rows = append(rows, row)
	}
	return rows
}

func (s *Summary) writeStats(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating stats file")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(s.StatsRecords()); err != nil {
		return errors.Wrap(err, "writing stats file")
	}
	return errors.Wrap(f.Close(), "closing stats file")
}

func (r *Report) writeLog(path string) error {
	var b strings.Builder
	for _, run := range r.Runs {
		outcome := "fail"
		switch {
		case run.Feasible:
			outcome = "success"
		case run.Canceled:
			outcome = "canceled"
		}
		fmt.Fprintf(&b, "run %d (seed %d): %s, %d violations, %s moves, %.3f seconds\n",
			run.Run, run.Seed, outcome, run.Violations, humanize.Comma(run.Moves), run.Elapsed.Seconds())
		if run.Feasible {
			b.WriteString(strings.Trim(fmt.Sprint([]int(run.Coloring)), "[]"))
			b.WriteByte('\n')
		}
	}
	fmt.Fprintf(&b, "total execution time: %.3f seconds\n", r.TotalExecution.Seconds())

	return errors.Wrap(os.WriteFile(path, []byte(b.String()), 0o644), "writing run log")
}

func (r *Report) writeDOT(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating drawing")
	}
	defer f.Close()

	if err := render.WriteDOT(f, r.inst.Graph, r.Best, r.Colors, nil); err != nil {
		return err
	}
	return errors.Wrap(f.Close(), "closing drawing")
}

// Table renders the summary as a text table.
func (s *Summary) Table() string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Instance", "Nodes", "Edges", "Colors", "SR", "Avg success (s)", "Avg run (s)", "Violations μ±σ", "Moves"})
	for _, rep := range s.Reports {
		avgSuccess := noValue
		if rep.Successes > 0 {
			avgSuccess = fmt.Sprintf("%.2f", rep.AvgSuccess.Seconds())
		}
		t.AppendRow(table.Row{
			rep.Name,
			rep.Nodes,
			humanize.Comma(int64(rep.Edges)),
			rep.Colors,
			rep.SuccessRate(),
			avgSuccess,
			fmt.Sprintf("%.2f", rep.AvgExecution.Seconds()),
			fmt.Sprintf("%.2f±%.2f", rep.MeanViolations, rep.StdViolations),
			humanize.Comma(rep.Moves),
		})
	}
	t.AppendFooter(table.Row{"Total", "", "", "", "", "", "", "", fmt.Sprintf("%.2fs", s.Elapsed.Seconds())})
	return t.Render()
}
