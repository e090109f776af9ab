package timetable

import (
	"context"
	"fmt"
	"sort"

	"github.com/IsacLucian/Bandwidth-Coloring-Problem/memetic"
)

const (
	// DefaultSlots is the slot budget of an exam session.
	DefaultSlots = 15
	// SlotsPerDay is the number of two-hour slots in one day.
	SlotsPerDay = 6
	// firstHour is the start of the first slot of a day.
	firstHour = 8
	slotHours = 2
)

// Entry places one exam.
type Entry struct {
	Exam       string     `json:"exam"`
	Difficulty Difficulty `json:"difficulty"`
	Slot       int        `json:"slot"`
	Day        int        `json:"day"`
	Start      string     `json:"start"`
	End        string     `json:"end"`
	Students   int        `json:"students"`
}

// Schedule lists every exam of a session ordered by slot, then name.
type Schedule struct {
	Slots   int     `json:"slots"`
	Entries []Entry `json:"entries"`
}

// SlotTime returns the day (from 1) and the "HH:MM" bounds of slot s ≥ 1.
func SlotTime(s int) (day int, start, end string) {
	day = (s + SlotsPerDay - 1) / SlotsPerDay
	h := firstHour + ((s-1)%SlotsPerDay)*slotHours
	return day, fmt.Sprintf("%02d:00", h), fmt.Sprintf("%02d:00", h+slotHours)
}

// NewSchedule reads coloring c of p's conflict graph as slot numbers.
//
// Errors: ErrColoringSize when len(c) differs from the exam count.
func NewSchedule(p *Problem, slots int, c memetic.Coloring) (*Schedule, error) {
	if len(c) != len(p.Exams) {
		return nil, fmt.Errorf("%d colors for %d exams: %w", len(c), len(p.Exams), ErrColoringSize)
	}

	s := &Schedule{Slots: slots, Entries: make([]Entry, len(c))}
	for i, slot := range c {
		day, start, end := SlotTime(slot)
		s.Entries[i] = Entry{
			Exam:       p.Exams[i],
			Difficulty: p.Difficulties[i],
			Slot:       slot,
			Day:        day,
			Start:      start,
			End:        end,
			Students:   p.Students[i],
		}
	}
	sort.SliceStable(s.Entries, func(a, b int) bool {
		return s.Entries[a].Slot < s.Entries[b].Slot
	})
	return s, nil
}

// Solve colors p with slots colors. A nil schedule with a nil error means no
// conflict-free schedule was found; res reports the search either way.
func Solve(ctx context.Context, p *Problem, slots int, opts memetic.Options) (*Schedule, memetic.Result, error) {
	if slots < 1 {
		return nil, memetic.Result{}, ErrInvalidSlots
	}
	res, err := memetic.Solve(ctx, p.Graph, slots, opts)
	if err != nil {
		return nil, res, err
	}
	if !res.Feasible {
		return nil, res, nil
	}
	s, err := NewSchedule(p, slots, res.Coloring)
	return s, res, err
}
