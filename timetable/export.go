package timetable

import (
	"encoding/json"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
)

// Table renders s as a text table, one row per exam.
func (s *Schedule) Table() string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle("Exam schedule, %d slots", s.Slots)
	t.AppendHeader(table.Row{"Day", "Start", "End", "Slot", "Exam", "Difficulty", "Students"})
	for _, e := range s.Entries {
		t.AppendRow(table.Row{e.Day, e.Start, e.End, e.Slot, e.Exam, e.Difficulty, e.Students})
	}
	return t.Render()
}

// WriteJSON writes s as indented JSON.
func (s *Schedule) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(s), "encoding schedule")
}
