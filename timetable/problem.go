package timetable

import (
	"fmt"
	"sort"

	"github.com/IsacLucian/Bandwidth-Coloring-Problem/instance"
)

// Problem is the conflict graph of an exam session. Node i is Exams[i];
// exams are ordered by name.
type Problem struct {
	Exams        []string
	Difficulties []Difficulty
	Graph        *instance.Graph
	// Students counts the enrolled students per exam, by node.
	Students []int
}

// Build derives the conflict graph of d. Two exams conflict when some student
// takes both; the pair then needs min(cost(a), cost(b)) slots between them.
//
// Errors: ErrNoExams, ErrUnknownExam, ErrDuplicateExam.
//
// Complexity: O(E + Σ_s |exams(s)|²) for E exams.
func Build(d *Data) (*Problem, error) {
	diffs, err := d.Difficulties()
	if err != nil {
		return nil, err
	}
	if len(diffs) == 0 {
		return nil, ErrNoExams
	}

	p := &Problem{Exams: make([]string, 0, len(diffs))}
	for name := range diffs {
		p.Exams = append(p.Exams, name)
	}
	sort.Strings(p.Exams)

	var (
		n     = len(p.Exams)
		index = make(map[string]int, n)
		cost  = make([]int, n)
		w     = make([][]int, n)
		i     int
	)
	p.Difficulties = make([]Difficulty, n)
	p.Students = make([]int, n)
	for i = 0; i < n; i++ {
		index[p.Exams[i]] = i
		p.Difficulties[i] = diffs[p.Exams[i]]
		cost[i], _ = p.Difficulties[i].Cost()
		w[i] = make([]int, n)
	}

	// Students are visited in key order so errors are reproducible.
	students := make([]string, 0, len(d.Students))
	for s := range d.Students {
		students = append(students, s)
	}
	sort.Strings(students)

	var nodes []int
	for _, s := range students {
		nodes = nodes[:0]
		for _, name := range d.Students[s] {
			j, ok := index[name]
			if !ok {
				return nil, fmt.Errorf("student %s takes %q: %w", s, name, ErrUnknownExam)
			}
			nodes = append(nodes, j)
		}
		nodes = uniqueNodes(nodes)
		for a := 0; a < len(nodes); a++ {
			p.Students[nodes[a]]++
			for b := a + 1; b < len(nodes); b++ {
				u, v := nodes[a], nodes[b]
				w[u][v] = min(cost[u], cost[v])
				w[v][u] = w[u][v]
			}
		}
	}

	if p.Graph, err = instance.NewGraph(w); err != nil {
		return nil, err
	}
	return p, nil
}

// uniqueNodes sorts nodes and drops repeats in place.
func uniqueNodes(nodes []int) []int {
	sort.Ints(nodes)
	out := nodes[:0]
	for i, v := range nodes {
		if i == 0 || v != nodes[i-1] {
			out = append(out, v)
		}
	}
	return out
}

// Instance wraps the conflict graph for the solver with a slot budget.
func (p *Problem) Instance(name string, slots int) *instance.Instance {
	return &instance.Instance{Name: name, Graph: p.Graph, Colors: slots}
}
