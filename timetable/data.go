package timetable

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
)

// Exam is one mandatory exam, encoded as ["name", "difficulty"].
type Exam struct {
	Name       string
	Difficulty Difficulty
}

// UnmarshalJSON decodes the two-element array form.
func (e *Exam) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil || len(raw) != 2 {
		return fmt.Errorf("exam %s: %w", b, ErrMalformedEntry)
	}
	if err := json.Unmarshal(raw[0], &e.Name); err != nil {
		return fmt.Errorf("exam name %s: %w", raw[0], ErrMalformedEntry)
	}
	return unmarshalDifficulty(raw[1], &e.Difficulty)
}

// MarshalJSON encodes the two-element array form.
func (e Exam) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{e.Name, e.Difficulty})
}

// Pack is a group of optional exams sharing a difficulty, encoded as
// [["e1", "e2", …], "difficulty"]. Each student picks exams out of it.
type Pack struct {
	Exams      []string
	Difficulty Difficulty
}

// UnmarshalJSON decodes the two-element array form.
func (p *Pack) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil || len(raw) != 2 {
		return fmt.Errorf("pack %s: %w", b, ErrMalformedEntry)
	}
	if err := json.Unmarshal(raw[0], &p.Exams); err != nil {
		return fmt.Errorf("pack exams %s: %w", raw[0], ErrMalformedEntry)
	}
	return unmarshalDifficulty(raw[1], &p.Difficulty)
}

// MarshalJSON encodes the two-element array form.
func (p Pack) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{p.Exams, p.Difficulty})
}

func unmarshalDifficulty(b []byte, d *Difficulty) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("difficulty %s: %w", b, ErrMalformedEntry)
	}
	*d = Difficulty(s)
	if _, err := d.Cost(); err != nil {
		return fmt.Errorf("difficulty %q: %w", s, err)
	}
	return nil
}

// Data is the exam description of one session.
type Data struct {
	Mandatory map[string]Exam     `json:"mandatory_exams"`
	Packs     map[string]Pack     `json:"optional_packs"`
	Students  map[string][]string `json:"students"`
}

// Read decodes exam data from r.
func Read(r io.Reader) (*Data, error) {
	var d Data
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, errors.Wrap(err, "decoding exam data")
	}
	return &d, nil
}

// Load reads exam data from the JSON file at path.
func Load(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening exam data")
	}
	defer f.Close()

	d, err := Read(f)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return d, nil
}

// Difficulties maps every declared exam to its difficulty.
//
// Errors: ErrDuplicateExam when one name carries two difficulties.
func (d *Data) Difficulties() (map[string]Difficulty, error) {
	out := make(map[string]Difficulty)
	add := func(name string, diff Difficulty) error {
		if prev, ok := out[name]; ok && prev != diff {
			return fmt.Errorf("%q is %s and %s: %w", name, prev, diff, ErrDuplicateExam)
		}
		out[name] = diff
		return nil
	}

	// Entries are visited in key order so errors are reproducible.
	for _, id := range sortedKeys(d.Mandatory) {
		e := d.Mandatory[id]
		if err := add(e.Name, e.Difficulty); err != nil {
			return nil, err
		}
	}
	for _, id := range sortedKeys(d.Packs) {
		p := d.Packs[id]
		for _, name := range p.Exams {
			if err := add(name, p.Difficulty); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
